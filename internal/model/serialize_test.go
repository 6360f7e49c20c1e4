package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeList(t *testing.T) {
	t.Run("nil list encodes as empty array", func(t *testing.T) {
		data, err := EncodeList(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("fields use lowercase names", func(t *testing.T) {
		data, err := EncodeList(List{{ID: 7, Text: "Buy milk", Done: true}})
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":7,"text":"Buy milk","done":true}]`, string(data))
	})
}

func TestDecodeList(t *testing.T) {
	t.Run("valid list round-trips", func(t *testing.T) {
		want := List{
			{ID: 1760000000000, Text: "Buy milk", Done: false},
			{ID: 1760000000001, Text: "Walk dog", Done: true},
		}
		data, err := EncodeList(want)
		require.NoError(t, err)

		got, err := DecodeList(data)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty array decodes to empty list", func(t *testing.T) {
		got, err := DecodeList([]byte("[]"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	corrupt := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"empty input", ""},
		{"object instead of array", `{"id":1,"text":"a","done":false}`},
		{"null", "null"},
		{"string id", `[{"id":"1","text":"a","done":false}]`},
		{"fractional id", `[{"id":1.5,"text":"a","done":false}]`},
		{"missing done", `[{"id":1,"text":"a"}]`},
		{"extra field", `[{"id":1,"text":"a","done":false,"due":"x"}]`},
		{"blank text", `[{"id":1,"text":"   ","done":false}]`},
		{"empty text", `[{"id":1,"text":"","done":false}]`},
		{"non-boolean done", `[{"id":1,"text":"a","done":"yes"}]`},
		{"duplicate ids", `[{"id":1,"text":"a","done":false},{"id":1,"text":"b","done":true}]`},
	}

	for _, tt := range corrupt {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeList([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, got)

			var ce *CorruptError
			assert.True(t, errors.As(err, &ce), "expected *CorruptError, got %T", err)
			assert.Contains(t, err.Error(), "corrupt todo list")
		})
	}

	t.Run("schema problems name the offending location", func(t *testing.T) {
		_, err := DecodeList([]byte(`[{"id":1,"text":"a","done":false},{"id":2,"text":"b","done":"no"}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "[1].done")
	})
}

func TestPointerToPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "(root)"},
		{"/", "(root)"},
		{"/0", "[0]"},
		{"/3/text", "[3].text"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, pointerToPath(tt.in))
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"json", "JSON", " yaml ", "yml", "toml"} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestExport(t *testing.T) {
	l := List{
		{ID: 1, Text: "true", Done: false},
		{ID: 2, Text: "Walk dog", Done: true},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, l, FormatJSON))

		got, err := DecodeList(buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	})

	t.Run("yaml keeps string text that looks like a bool", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, l, FormatYAML))

		var got List
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, l, got)
		assert.True(t, strings.HasPrefix(buf.String(), "- id: 1\n"))
	})

	t.Run("yaml empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, nil, FormatYAML))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, l, FormatTOML))

		var doc tomlDocument
		_, err := toml.Decode(buf.String(), &doc)
		require.NoError(t, err)
		assert.Equal(t, l, doc.Tasks)
		assert.Contains(t, buf.String(), "[[tasks]]")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := Export(&buf, l, Format("xml"))
		require.Error(t, err)
	})
}
