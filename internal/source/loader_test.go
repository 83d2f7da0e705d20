package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynamic-record/record"
)

func TestParse(t *testing.T) {
	yaml := `
name: John
age: 30
address:
  city: New York
  zip: "10001"
`
	doc, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "John", doc["name"])
	assert.Equal(t, 30, doc["age"])

	address, ok := doc["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "New York", address["city"])
	assert.Equal(t, "10001", address["zip"])
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("- just\n- a\n- sequence\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key 1: value 1\nnested:\n  a: 1\n"), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)

	r, err := record.New(doc)
	require.NoError(t, err)

	v, err := r.Get("key_1")
	require.NoError(t, err)
	assert.Equal(t, "value 1", v)

	nested, err := r.Get("nested")
	require.NoError(t, err)
	assert.IsType(t, &record.Record{}, nested)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
