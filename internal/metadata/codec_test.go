package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zerrors "github.com/Yobazuk/zipper/internal/errors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []any{
		map[string]any{"type": "text"},
		map[string]any{"nested": map[string]any{"a": []any{float64(1), float64(2)}}},
		map[string]any{"n": float64(3.5), "b": true, "z": nil},
		[]any{"a", float64(1), false},
		"just a string",
		float64(42),
		true,
		nil,
	}

	for _, v := range values {
		encoded, err := Encode(v)
		require.NoError(t, err)
		assert.Equal(t, v, Decode(encoded))
	}
}

func TestEncodeEscapesNonASCII(t *testing.T) {
	encoded, err := Encode(map[string]any{"name": "héllo"})
	require.NoError(t, err)

	for _, c := range encoded {
		assert.Less(t, c, byte(0x80), "output must be pure ASCII")
	}
	assert.Contains(t, string(encoded), `\u00e9`)
	assert.Equal(t, map[string]any{"name": "héllo"}, Decode(encoded))
}

func TestEncodeEscapesAstralRunes(t *testing.T) {
	encoded, err := Encode(map[string]any{"emoji": "🎉"})
	require.NoError(t, err)

	// Astral runes become UTF-16 surrogate pairs.
	assert.Contains(t, string(encoded), `\ud83c\udf89`)
	assert.Equal(t, map[string]any{"emoji": "🎉"}, Decode(encoded))
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	encoded, err := Encode(map[string]any{"tag": "<b>&</b>"})
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "<b>&</b>")
}

func TestEncodeNotSerializable(t *testing.T) {
	_, err := Encode(map[string]any{"key": make(chan int)})
	require.Error(t, err)
	assert.ErrorIs(t, err, zerrors.ErrNotSerializable)
}

func TestDecodeEmpty(t *testing.T) {
	assert.Equal(t, map[string]any{}, Decode(nil))
	assert.Equal(t, map[string]any{}, Decode([]byte{}))
}

// An absent comment and metadata explicitly set to {} both decode to an
// empty mapping. This ambiguity is inherent to the comment-field scheme.
func TestDecodeEmptyVersusAbsentAmbiguity(t *testing.T) {
	encoded, err := Encode(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, Decode(nil), Decode(encoded))
}

func TestDecodeLegacyComment(t *testing.T) {
	got := Decode([]byte("not json"))
	assert.Equal(t, map[string]any{"comment": "not json"}, got)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	got := Decode([]byte{0xff, 0xfe, 'h', 'i'})

	m, ok := got.(map[string]any)
	require.True(t, ok)
	text, ok := m["comment"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(text, "hi"))
	assert.Contains(t, text, "�")
}

func TestDecodeNeverPanics(t *testing.T) {
	inputs := [][]byte{
		[]byte("   "),
		[]byte("{truncated"),
		[]byte(`{"a":}`),
		{0x00, 0x01, 0x02},
		[]byte("\xff\xff\xff"),
	}

	for _, b := range inputs {
		got := Decode(b)
		_, ok := got.(map[string]any)
		assert.True(t, ok, "fallback must produce a mapping for %q", b)
	}
}
