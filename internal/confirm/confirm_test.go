package confirm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Makepad-fr/liser/internal/confirm"
	"github.com/stretchr/testify/assert"
)

func TestModal_AcceptRunsCallbackOnceAndHides(t *testing.T) {
	var m confirm.Modal[int]
	assert.True(t, m.Hidden())

	calls := 0
	m.Confirm("Remove this item from the section?", func() int { calls++; return 7 })
	assert.True(t, m.Pending())
	assert.False(t, m.Hidden())
	assert.Equal(t, "Remove this item from the section?", m.Message())

	v, ok := m.Accept()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
	assert.True(t, m.Hidden())
	assert.Equal(t, confirm.Confirmed, m.Last())

	// stale accept after resolution is a no-op
	_, ok = m.Accept()
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestModal_DeclineRunsNothing(t *testing.T) {
	var m confirm.Modal[struct{}]
	calls := 0
	m.Confirm("Delete section?", func() struct{} { calls++; return struct{}{} })

	assert.True(t, m.Decline())
	assert.Equal(t, 0, calls)
	assert.True(t, m.Hidden())
	assert.Equal(t, confirm.Cancelled, m.Last())

	_, ok := m.Accept()
	assert.False(t, ok)
	assert.False(t, m.Decline())
	assert.Equal(t, 0, calls)
}

func TestModal_FreshConfirmBindsFreshCallback(t *testing.T) {
	var m confirm.Modal[string]
	var got []string
	m.Confirm("first", func() string { got = append(got, "first"); return "" })
	m.Decline()
	m.Confirm("second", func() string { got = append(got, "second"); return "" })
	m.Accept()
	m.Confirm("third", func() string { got = append(got, "third"); return "" })
	m.Accept()

	assert.Equal(t, []string{"second", "third"}, got)
}

func TestModal_NilCallbackAccepts(t *testing.T) {
	var m confirm.Modal[error]
	m.Confirm("ok?", nil)
	v, ok := m.Accept()
	assert.True(t, ok)
	assert.NoError(t, v)
}

func TestAsk(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tc := range cases {
		var m confirm.Modal[int]
		var out bytes.Buffer
		calls := 0
		_, ok := confirm.Ask(&m, strings.NewReader(tc.in), &out, "Delete section?", func() int { calls++; return 0 })
		assert.Equal(t, tc.want, ok, "input %q", tc.in)
		assert.Equal(t, map[bool]int{true: 1, false: 0}[tc.want], calls)
		assert.Equal(t, "Delete section? [y/N] ", out.String())
		assert.True(t, m.Hidden())
	}
}
