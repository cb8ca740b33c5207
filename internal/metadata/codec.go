package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	zerrors "github.com/Yobazuk/zipper/internal/errors"
)

// Encode serializes v to ASCII-only JSON bytes suitable for a ZIP comment
// field. Every rune outside the ASCII range is escaped as \uXXXX (astral
// runes as a UTF-16 surrogate pair), so the stored bytes round-trip through
// tools that treat comments as single-byte text.
//
// Values with no JSON representation (channels, functions, cyclic data)
// fail with ErrNotSerializable.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", zerrors.ErrNotSerializable, err)
	}
	// Encoder appends a trailing newline; the comment must not carry it.
	return escapeNonASCII(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Decode interprets comment bytes as metadata. It is total: no input causes
// an error.
//
//   - Empty input decodes to an empty mapping. An absent comment is therefore
//     indistinguishable from metadata that was explicitly set to {}.
//   - Valid JSON decodes to the corresponding dynamic value.
//   - Anything else (invalid UTF-8 or invalid JSON) is treated as a legacy
//     plain-text comment from another tool and wrapped as
//     {"comment": <text>}, with undecodable bytes replaced by U+FFFD.
func Decode(b []byte) any {
	if len(b) == 0 {
		return map[string]any{}
	}
	if utf8.Valid(b) {
		var v any
		if err := json.Unmarshal(b, &v); err == nil {
			return v
		}
	}
	return map[string]any{
		"comment": strings.ToValidUTF8(string(b), string(utf8.RuneError)),
	}
}

// escapeNonASCII rewrites every non-ASCII rune in valid JSON text as a
// \uXXXX escape. JSON syntax characters are all ASCII, so non-ASCII runes
// can only occur inside string literals where the escape form is legal.
func escapeNonASCII(b []byte) []byte {
	ascii := true
	for _, c := range b {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return b
	}

	var out bytes.Buffer
	out.Grow(len(b))
	for _, r := range string(b) {
		switch {
		case r < utf8.RuneSelf:
			out.WriteByte(byte(r))
		case r <= 0xFFFF:
			fmt.Fprintf(&out, `\u%04x`, r)
		default:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
		}
	}
	return out.Bytes()
}
