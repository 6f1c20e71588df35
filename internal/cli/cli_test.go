package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/liser/internal/auth"
)

type seenRequest struct {
	path    string
	query   url.Values
	form    url.Values
	csrf    string
	session string
}

type fakeServer struct {
	mu   sync.Mutex
	reqs []seenRequest
	fail string
}

func (s *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	sr := seenRequest{path: r.URL.Path, query: r.URL.Query(), form: r.PostForm, csrf: r.Header.Get("X-CSRFToken")}
	if c, err := r.Cookie("sessionid"); err == nil {
		sr.session = c.Value
	}
	s.mu.Lock()
	s.reqs = append(s.reqs, sr)
	fail := s.fail
	s.mu.Unlock()

	switch r.URL.Path {
	case "/htmx/baglist-sections/":
		_, _ = w.Write([]byte(`
<div data-section-id="4"><input name="title" value="Ropa"><input name="position" value="1">
  <ul><li data-item-id="31">Chaqueta</li></ul></div>
<div data-section-id="5"><input name="title" value="Higiene"></div>`))
	case "/htmx/editor/":
		_, _ = w.Write([]byte(`<select><option data-baglist-id="12">Camino de Santiago</option></select>`))
	case "/htmx/item-picker-search/":
		_, _ = w.Write([]byte(`<li data-item-id="77">Rope 10m</li>`))
	default:
		w.Header().Set("Content-Type", "application/json")
		if fail != "" {
			_, _ = w.Write([]byte(`{"success": false, "error": "` + fail + `"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success": true}`))
	}
}

func (s *fakeServer) requests() []seenRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]seenRequest(nil), s.reqs...)
}

func setup(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	srv := httptest.NewServer(fs)
	t.Cleanup(srv.Close)

	t.Setenv("LISER_HOME", t.TempDir())
	t.Setenv("LISER_CONFIG", "")
	t.Setenv("LISER_URL", srv.URL)
	t.Setenv("LISER_BAGLIST", "")
	t.Setenv("LISER_SESSION", "sess-1")
	t.Setenv("LISER_CSRFTOKEN", "tok-1")
	return fs
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestSectionTitle_SendsFormWithSessionAndToken(t *testing.T) {
	fs := setup(t)

	out, err := run(t, "", "section", "title", "4", "Ropa", "de", "abrigo")
	require.NoError(t, err)
	assert.Contains(t, out, "section title updated")

	reqs := fs.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/htmx/update-section-title/", reqs[0].path)
	assert.Equal(t, "4", reqs[0].form.Get("section_id"))
	assert.Equal(t, "Ropa de abrigo", reqs[0].form.Get("title"))
	assert.Equal(t, "tok-1", reqs[0].csrf)
	assert.Equal(t, "sess-1", reqs[0].session)
}

func TestItemRemove_DeclineSendsNothing(t *testing.T) {
	fs := setup(t)

	out, err := run(t, "n\n", "item", "remove", "4", "31")
	require.NoError(t, err)
	assert.Contains(t, out, "Remove this item from the section? [y/N]")
	assert.Contains(t, out, "cancelled")
	assert.Empty(t, fs.requests())
}

func TestItemRemove_AcceptSends(t *testing.T) {
	fs := setup(t)

	out, err := run(t, "y\n", "item", "remove", "4", "31")
	require.NoError(t, err)
	assert.Contains(t, out, "item removed from section")

	reqs := fs.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/htmx/remove-item-from-section/", reqs[0].path)
	assert.Equal(t, "31", reqs[0].form.Get("item_id"))
}

func TestSectionDelete_YesSkipsPrompt(t *testing.T) {
	fs := setup(t)

	out, err := run(t, "", "section", "delete", "4", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, out, "section deleted")
	require.Len(t, fs.requests(), 1)
}

func TestItemAssociate_EmptyStdinDeclines(t *testing.T) {
	fs := setup(t)

	_, err := run(t, "", "item", "associate", "4", "77")
	require.NoError(t, err)
	assert.Empty(t, fs.requests())
}

func TestInvalidInput_IsUsageErrorWithoutRequest(t *testing.T) {
	fs := setup(t)

	_, err := run(t, "", "section", "position", "4", "abc")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, "", "section", "title", "4", "  ")
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, "", "item", "remove", "4")
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, "", "--bogus")
	assert.Equal(t, 2, ExitCode(err))

	assert.Empty(t, fs.requests())
}

func TestServerFailure_ReturnsMessage(t *testing.T) {
	fs := setup(t)
	fs.fail = "Section not found"

	_, err := run(t, "", "section", "description", "4", "Para el frío")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Section not found")
	assert.Equal(t, 1, ExitCode(err))
}

func TestNotLoggedIn(t *testing.T) {
	setup(t)
	t.Setenv("LISER_SESSION", "")
	t.Setenv("LISER_CSRFTOKEN", "")

	_, err := run(t, "", "section", "title", "4", "Ropa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrNotLoggedIn))
}

func TestSections_PrintsAndRemembersBagList(t *testing.T) {
	fs := setup(t)

	out, err := run(t, "", "sections", "--baglist", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Bag list 12")
	assert.Contains(t, out, "Ropa")
	assert.Contains(t, out, "Chaqueta")
	assert.Contains(t, out, "Higiene")
	assert.Contains(t, out, "(no items)")
	assert.Equal(t, "12", fs.requests()[0].query.Get("baglist_id"))

	// the last bag list is used when none is given
	_, err = run(t, "", "sections")
	require.NoError(t, err)
	reqs := fs.requests()
	assert.Equal(t, "12", reqs[len(reqs)-1].query.Get("baglist_id"))
}

func TestSections_NoBagList(t *testing.T) {
	setup(t)
	_, err := run(t, "", "sections")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestBagLists_FetchThenCached(t *testing.T) {
	fs := setup(t)

	out, err := run(t, "", "baglists")
	require.NoError(t, err)
	assert.Contains(t, out, "Camino de Santiago")
	require.Len(t, fs.requests(), 1)

	out, err = run(t, "", "baglists", "--cached")
	require.NoError(t, err)
	assert.Contains(t, out, "Camino de Santiago")
	assert.Len(t, fs.requests(), 1)
}

func TestItemSearch(t *testing.T) {
	fs := setup(t)

	out, err := run(t, "", "item", "search", "4", "rope")
	require.NoError(t, err)
	assert.Contains(t, out, "Rope 10m")
	assert.Contains(t, out, "#77")

	q := fs.requests()[0].query
	assert.Equal(t, "rope", q.Get("q"))
	assert.Equal(t, "4", q.Get("section_id"))
}

func TestLoginLogout(t *testing.T) {
	setup(t)
	t.Setenv("LISER_SESSION", "")
	t.Setenv("LISER_CSRFTOKEN", "")
	path := filepath.Join(os.Getenv("LISER_HOME"), "credentials.json")

	_, err := run(t, "", "login", "--session", "abc")
	assert.Equal(t, 2, ExitCode(err))

	out, err := run(t, "", "login", "--session", "abc", "--csrftoken", "xyz")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in")

	creds, err := auth.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "abc", creds.SessionID)
	assert.Equal(t, "xyz", creds.CSRFToken)

	_, err = run(t, "", "logout")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCopy(t *testing.T) {
	setup(t)
	var got []string
	copyWriter = func(s string) error { got = append(got, s); return nil }
	t.Cleanup(func() { copyWriter = nil })

	out, err := run(t, "", "copy", "  Chaqueta  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chaqueta"}, got)
	assert.Contains(t, out, "Copied")

	out, err = run(t, "", "copy", "   ")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 2, ExitCode(usageErrorf("bad")))
}
