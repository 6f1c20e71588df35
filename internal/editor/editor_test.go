package editor_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Makepad-fr/liser/internal/client"
	"github.com/Makepad-fr/liser/internal/editor"
	"github.com/Makepad-fr/liser/internal/model"
	"github.com/Makepad-fr/liser/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op                       client.Op
	sectionID, itemID, value string
}

type fakeAPI struct {
	calls    []call
	result   client.Result
	err      error
	fragment string
}

func (f *fakeAPI) record(op client.Op, s, i, v string) (client.Result, error) {
	f.calls = append(f.calls, call{op, s, i, v})
	return f.result, f.err
}

func (f *fakeAPI) UpdateSectionTitle(_ context.Context, s, v string) (client.Result, error) {
	return f.record(client.OpUpdateSectionTitle, s, "", v)
}
func (f *fakeAPI) UpdateSectionDescription(_ context.Context, s, v string) (client.Result, error) {
	return f.record(client.OpUpdateSectionDescription, s, "", v)
}
func (f *fakeAPI) UpdateSectionPosition(_ context.Context, s, v string) (client.Result, error) {
	return f.record(client.OpUpdateSectionPosition, s, "", v)
}
func (f *fakeAPI) RemoveItemFromSection(_ context.Context, s, i string) (client.Result, error) {
	return f.record(client.OpRemoveItemFromSection, s, i, "")
}
func (f *fakeAPI) DeleteSection(_ context.Context, s string) (client.Result, error) {
	return f.record(client.OpDeleteSection, s, "", "")
}
func (f *fakeAPI) AssociateItem(_ context.Context, s, i string) (client.Result, error) {
	return f.record(client.OpAssociateItem, s, i, "")
}
func (f *fakeAPI) SearchItems(_ context.Context, q, s string) (string, error) {
	f.calls = append(f.calls, call{client.OpSearchItems, s, "", q})
	return f.fragment, f.err
}
func (f *fakeAPI) LoadSections(_ context.Context, id string) (string, error) {
	f.calls = append(f.calls, call{client.OpLoadSections, id, "", ""})
	return f.fragment, f.err
}

func newEditor(api *fakeAPI) *editor.Editor {
	return editor.New(api, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUpdateTitle_SendsTrimmedTitleOnce(t *testing.T) {
	api := &fakeAPI{result: client.Result{Success: true}}
	out := newEditor(api).Do(context.Background(), editor.UpdateTitle("42", "  Ropa  "))

	require.NoError(t, out.Err)
	require.Len(t, api.calls, 1)
	assert.Equal(t, call{client.OpUpdateSectionTitle, "42", "", "Ropa"}, api.calls[0])
}

func TestValidation_ShortCircuitsWithoutRequests(t *testing.T) {
	cases := []editor.Request{
		editor.UpdateTitle("42", "   "),
		editor.UpdateTitle("", "Ropa"),
		editor.UpdateDescription("42", ""),
		editor.UpdatePosition("42", "first"),
		editor.UpdatePosition("42", "-1"),
		editor.RemoveItem("42", ""),
		editor.Associate("", "7"),
		editor.DeleteSection(" "),
		{Op: "rename_everything", SectionID: "42"},
	}
	for _, req := range cases {
		api := &fakeAPI{result: client.Result{Success: true}}
		out := newEditor(api).Do(context.Background(), req)
		assert.ErrorIs(t, out.Err, editor.ErrInvalid, "%+v", req)
		assert.Empty(t, api.calls, "%+v", req)
	}
}

func TestRun_RemoveItem(t *testing.T) {
	sections := []model.Section{{ID: "s", Items: []model.Item{{ID: "i"}}}}

	api := &fakeAPI{result: client.Result{Success: true}}
	v := view.New(sections)
	_, eff := newEditor(api).Run(context.Background(), editor.RemoveItem("s", "i"), v)
	assert.Equal(t, view.EffectNone, eff)
	assert.False(t, v.HasItem("s", "i"))

	api = &fakeAPI{result: client.Result{Success: false, Error: "X"}, err: &client.ServerError{Op: client.OpRemoveItemFromSection, Message: "X"}}
	v = view.New(sections)
	out, _ := newEditor(api).Run(context.Background(), editor.RemoveItem("s", "i"), v)
	var serr *client.ServerError
	require.True(t, errors.As(out.Err, &serr))
	assert.Equal(t, "X", serr.Message)
	assert.True(t, v.HasItem("s", "i"))
}

func TestRun_AssociateReloadsOnlyOnSuccess(t *testing.T) {
	v := view.New(nil)
	v.OpenPicker("s")

	api := &fakeAPI{err: errors.New("connection refused")}
	_, eff := newEditor(api).Run(context.Background(), editor.Associate("s", "7"), v)
	assert.Equal(t, view.EffectNone, eff)
	assert.True(t, v.Picker().Open)

	api = &fakeAPI{result: client.Result{Success: true}}
	_, eff = newEditor(api).Run(context.Background(), editor.Associate("s", "7"), v)
	assert.Equal(t, view.EffectReload, eff)
	assert.False(t, v.Picker().Open)
}

func TestDo_UnsuccessfulResultWithoutErrorIsAnError(t *testing.T) {
	api := &fakeAPI{result: client.Result{Success: false}}
	out := newEditor(api).Do(context.Background(), editor.DeleteSection("s"))
	assert.Error(t, out.Err)
	assert.False(t, out.OK())
}

func TestConfirmMessage(t *testing.T) {
	assert.NotEmpty(t, editor.RemoveItem("s", "i").ConfirmMessage())
	assert.Contains(t, editor.DeleteSection("s").ConfirmMessage(), "not deleted")
	assert.NotEmpty(t, editor.Associate("s", "i").ConfirmMessage())
	assert.Empty(t, editor.UpdateTitle("s", "t").ConfirmMessage())
}

func TestSearchAndLoad(t *testing.T) {
	api := &fakeAPI{fragment: `<div data-section-id="s1"><input name="title" value="Ropa"></div>`}
	e := newEditor(api)

	_, err := e.Search(context.Background(), "rope", "")
	assert.ErrorIs(t, err, editor.ErrInvalid)
	assert.Empty(t, api.calls)

	got, err := e.Search(context.Background(), " rope ", "42")
	require.NoError(t, err)
	assert.Equal(t, api.fragment, got)
	assert.Equal(t, call{client.OpSearchItems, "42", "", "rope"}, api.calls[0])

	secs, err := e.Load(context.Background(), "bl")
	require.NoError(t, err)
	require.Len(t, secs, 1)
	assert.Equal(t, "Ropa", secs[0].Title)
}
