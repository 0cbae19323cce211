// Package converter composes the parser, codec and transport packages into
// the two public conversion operations. Both are pure functions of their
// input: no shared state, no retries, no partial output, safe to call from
// any number of goroutines.
package converter

import (
	"github.com/mcncl/jsonpack/internal/codec"
	"github.com/mcncl/jsonpack/internal/parser"
	"github.com/mcncl/jsonpack/internal/printer"
	"github.com/mcncl/jsonpack/internal/transport"
)

// JSONToMessagePack converts a JSON document into base64-encoded
// MessagePack. The pipeline stops at the first failing stage; render the
// returned error with errors.UserFriendlyError for a stage-labelled
// message.
func JSONToMessagePack(jsonText string) (string, error) {
	return JSONToMessagePackEncoded(jsonText, transport.Base64)
}

// JSONToMessagePackEncoded is JSONToMessagePack with a caller-chosen
// output alphabet (base64 or hex).
func JSONToMessagePackEncoded(jsonText string, encoding transport.Encoding) (string, error) {
	value, err := parser.ParseString(jsonText)
	if err != nil {
		return "", err
	}
	packed, err := codec.Encode(value)
	if err != nil {
		return "", err
	}
	if encoding == transport.Hex {
		return transport.EncodeHex(packed), nil
	}
	return transport.EncodeBase64(packed), nil
}

// MessagePackToJSON converts hex- or base64-encoded MessagePack (the
// alphabet is auto-detected, see transport.Detect) into pretty-printed
// JSON with 2-space indentation.
func MessagePackToJSON(encodedText string) (string, error) {
	return MessagePackToJSONIndent(encodedText, printer.DefaultIndent)
}

// MessagePackToJSONIndent is MessagePackToJSON with a caller-chosen indent
// width.
func MessagePackToJSONIndent(encodedText string, indent int) (string, error) {
	packed, _, err := transport.Decode(encodedText)
	if err != nil {
		return "", err
	}
	value, err := codec.Decode(packed)
	if err != nil {
		return "", err
	}
	return printer.PrettyIndent(value, indent)
}
