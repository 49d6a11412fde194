package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatTable, ParseFormat("table"))
	assert.Equal(t, FormatTable, ParseFormat(""))
	assert.Equal(t, FormatTable, ParseFormat("bogus"))
}

func TestSuccessJSONCompact(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success(map[string]any{"account_id": "a1"}, FormatJSON, true)

	got := strings.TrimRight(buf.String(), "\n")
	assert.Equal(t, `{"account_id":"a1"}`, got)
	assert.NotContains(t, got, "\n")
}

func TestSuccessJSONIndented(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success(map[string]any{"account_id": "a1", "role": "admin"}, FormatJSON, false)

	out := buf.String()
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, `"account_id": "a1"`)
	assert.Contains(t, out, `"role": "admin"`)
}

func TestSuccessTableObject(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success(map[string]any{"account_id": "a1", "user_id": "u1"}, FormatTable, false)

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "account_id")
	assert.Contains(t, out, "a1")
	assert.Contains(t, out, "user_id")
	assert.Contains(t, out, "u1")
}

func TestSuccessTableObjectList(t *testing.T) {
	var buf bytes.Buffer
	items := []any{
		map[string]any{"account_id": "a1", "name": "Acme"},
		map[string]any{"account_id": "a2"},
	}
	New(&buf).Success(items, FormatTable, false)

	out := buf.String()
	assert.Contains(t, out, "account_id")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "a2")
}

func TestSuccessTableScalarList(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success([]any{"one", "two"}, FormatTable, false)

	out := buf.String()
	assert.Contains(t, out, "1. one")
	assert.Contains(t, out, "2. two")
}

func TestSuccessTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Success([]any{}, FormatTable, false)
	assert.Contains(t, buf.String(), "(no items)")

	buf.Reset()
	p.Success(nil, FormatTable, false)
	assert.Contains(t, buf.String(), "(no data)")
}

func TestSuccessTableNestedValue(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success(map[string]any{
		"account_id": "a1",
		"quota":      map[string]any{"requests": float64(100)},
	}, FormatTable, false)

	out := buf.String()
	require.Contains(t, out, "quota")
	assert.Contains(t, out, `{"requests":100}`)
}
