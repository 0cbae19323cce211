// Package transport carries raw MessagePack bytes as displayable text,
// using either hexadecimal or standard base64.
package transport

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/mcncl/jsonpack/internal/errors"
)

// Encoding identifies the textual alphabet used to carry binary data.
type Encoding int

const (
	Hex Encoding = iota
	Base64
)

func (e Encoding) String() string {
	switch e {
	case Hex:
		return "Hex"
	case Base64:
		return "Base64"
	default:
		return "unknown"
	}
}

// EncodeBase64 encodes bytes with the standard base64 alphabet, padded.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeHex encodes bytes as lowercase hexadecimal.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// Detect classifies text as Hex only if every character is a valid hex
// digit (case-insensitive); anything else is treated as Base64. This is a
// heuristic over the character set, not a self-describing tag: a base64
// string that happens to contain only hex digits is classified as Hex.
// That ambiguity is accepted behaviour, and callers of the auto-detecting
// Decode must be aware short or digit-only payloads can be ambiguous.
func Detect(text string) Encoding {
	for i := 0; i < len(text); i++ {
		if !isHexDigit(text[i]) {
			return Base64
		}
	}
	return Hex
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// Decode turns encoded text back into raw bytes, dispatching on Detect.
// It reports which alphabet was attempted alongside any failure, so odd
// hex lengths and bad base64 padding produce distinguishable errors.
func Decode(text string) ([]byte, Encoding, error) {
	encoding := Detect(text)
	switch encoding {
	case Hex:
		data, err := hex.DecodeString(text)
		if err != nil {
			return nil, encoding, errors.NewTransportError(encoding.String(), err)
		}
		return data, encoding, nil
	default:
		data, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, encoding, errors.NewTransportError(encoding.String(), err)
		}
		return data, encoding, nil
	}
}
