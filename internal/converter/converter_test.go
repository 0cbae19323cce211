package converter

import (
	"encoding/base64"
	"encoding/hex"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/mcncl/jsonpack/internal/errors"
	"github.com/mcncl/jsonpack/internal/parser"
	"github.com/mcncl/jsonpack/internal/transport"
)

const (
	aliceJSON   = `{"name":"Alice","age":30,"city":"Wonderland"}`
	aliceHex    = "83a36167651ea463697479aa576f6e6465726c616e64a46e616d65a5416c696365"
	aliceBase64 = "g6NhZ2UepGNpdHmqV29uZGVybGFuZKRuYW1lpUFsaWNl"
)

// structurallyEqual compares two JSON documents by parsed value, ignoring
// key order and formatting.
func structurallyEqual(t *testing.T, a, b string) bool {
	t.Helper()
	av, err := parser.ParseString(a)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", a, err)
	}
	bv, err := parser.ParseString(b)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", b, err)
	}
	return reflect.DeepEqual(av, bv)
}

func TestJSONToMessagePack_GoldenBytes(t *testing.T) {
	encoded, err := JSONToMessagePack(aliceJSON)
	if err != nil {
		t.Fatalf("JSONToMessagePack() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	if got := hex.EncodeToString(raw); got != aliceHex {
		t.Errorf("JSONToMessagePack() bytes = %s, want %s", got, aliceHex)
	}
	if encoded != aliceBase64 {
		t.Errorf("JSONToMessagePack() = %s, want %s", encoded, aliceBase64)
	}
}

func TestJSONToMessagePackEncoded_Hex(t *testing.T) {
	encoded, err := JSONToMessagePackEncoded(aliceJSON, transport.Hex)
	if err != nil {
		t.Fatalf("JSONToMessagePackEncoded() error = %v", err)
	}
	if encoded != aliceHex {
		t.Errorf("JSONToMessagePackEncoded(hex) = %s, want %s", encoded, aliceHex)
	}
}

func TestMessagePackToJSON_Base64Input(t *testing.T) {
	jsonText, err := MessagePackToJSON(aliceBase64)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}

	expected := "{\n  \"age\": 30,\n  \"city\": \"Wonderland\",\n  \"name\": \"Alice\"\n}"
	if jsonText != expected {
		t.Errorf("MessagePackToJSON() =\n%s\nwant\n%s", jsonText, expected)
	}
}

func TestMessagePackToJSON_HexInput(t *testing.T) {
	jsonText, err := MessagePackToJSON(aliceHex)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}
	if !structurallyEqual(t, jsonText, aliceJSON) {
		t.Errorf("MessagePackToJSON(hex) = %s, not structurally equal to %s", jsonText, aliceJSON)
	}
}

func TestJSONToMessagePackAndBack(t *testing.T) {
	encoded, err := JSONToMessagePack(aliceJSON)
	if err != nil {
		t.Fatalf("JSONToMessagePack() error = %v", err)
	}
	jsonText, err := MessagePackToJSON(encoded)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}
	if !structurallyEqual(t, jsonText, aliceJSON) {
		t.Errorf("round trip lost structure: %s", jsonText)
	}
}

func TestMessagePackToJSONAndBack(t *testing.T) {
	jsonText, err := MessagePackToJSON(aliceHex)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}
	encoded, err := JSONToMessagePack(jsonText)
	if err != nil {
		t.Fatalf("JSONToMessagePack() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(raw); got != aliceHex {
		t.Errorf("round trip changed bytes: %s, want %s", got, aliceHex)
	}
}

func TestComplexJSONRoundTrip(t *testing.T) {
	original := `{
		"person": {
			"name": "Bob",
			"age": 25,
			"address": {
				"street": "123 Elm Street",
				"city": "Somewhere",
				"zip": "12345"
			}
		},
		"hobbies": ["reading", "gaming", "hiking"],
		"is_student": false
	}`

	encoded, err := JSONToMessagePack(original)
	if err != nil {
		t.Fatalf("JSONToMessagePack() error = %v", err)
	}
	jsonText, err := MessagePackToJSON(encoded)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}
	if !structurallyEqual(t, jsonText, original) {
		t.Errorf("round trip lost structure:\n%s", jsonText)
	}
}

func TestEmptyObjectRoundTrip(t *testing.T) {
	encoded, err := JSONToMessagePack(`{}`)
	if err != nil {
		t.Fatalf("JSONToMessagePack({}) error = %v", err)
	}
	jsonText, err := MessagePackToJSON(encoded)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}
	if jsonText != "{}" {
		t.Errorf("empty object round trip = %q, want %q", jsonText, "{}")
	}
}

func TestUnicodeRoundTrip(t *testing.T) {
	original := `{"grüße": "こんにちは", "emoji": "🎉", "mixed": ["ü", "ß", "日本語"]}`

	encoded, err := JSONToMessagePack(original)
	if err != nil {
		t.Fatalf("JSONToMessagePack() error = %v", err)
	}
	jsonText, err := MessagePackToJSON(encoded)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}
	if !structurallyEqual(t, jsonText, original) {
		t.Errorf("unicode round trip lost structure:\n%s", jsonText)
	}
	if !strings.Contains(jsonText, "こんにちは") {
		t.Errorf("non-ASCII text was escaped: %s", jsonText)
	}
}

func TestLargeStringRoundTrip(t *testing.T) {
	large := `{"data": ["` + strings.Repeat("a", 1000) + `", 1000]}`

	encoded, err := JSONToMessagePack(large)
	if err != nil {
		t.Fatalf("JSONToMessagePack() error = %v", err)
	}
	jsonText, err := MessagePackToJSON(encoded)
	if err != nil {
		t.Fatalf("MessagePackToJSON() error = %v", err)
	}
	if !structurallyEqual(t, jsonText, large) {
		t.Error("large string round trip lost structure")
	}
	if !strings.Contains(jsonText, strings.Repeat("a", 1000)) {
		t.Error("1000-character string was truncated or corrupted")
	}
}

func TestInvalidJSON(t *testing.T) {
	// Wonderland is unquoted
	_, err := JSONToMessagePack(`{"name":"Alice","age":30,"city":Wonderland}`)
	if err == nil {
		t.Fatal("JSONToMessagePack() expected error for invalid JSON, got nil")
	}
	msg := errors.UserFriendlyError(err)
	if !strings.HasPrefix(msg, "Failed to parse JSON") {
		t.Errorf("error message %q does not carry the JSON parse stage label", msg)
	}
}

func TestInvalidEncodedInput(t *testing.T) {
	_, err := MessagePackToJSON("invalid_base64_string")
	if err == nil {
		t.Fatal("MessagePackToJSON() expected error for invalid input, got nil")
	}
	msg := errors.UserFriendlyError(err)
	if !strings.HasPrefix(msg, "Failed to decode Base64") {
		t.Errorf("error message %q does not carry the transport stage label", msg)
	}
}

func TestTruncatedMessagePack(t *testing.T) {
	// Valid hex, but the map body is cut short
	_, err := MessagePackToJSON("83a3616765")
	if err == nil {
		t.Fatal("MessagePackToJSON() expected error for truncated input, got nil")
	}
	msg := errors.UserFriendlyError(err)
	if !strings.HasPrefix(msg, "Failed to deserialize MessagePack") {
		t.Errorf("error message %q does not carry the MessagePack decode stage label", msg)
	}
}

func TestEmptyEncodedInput(t *testing.T) {
	if _, err := MessagePackToJSON(""); err == nil {
		t.Fatal("MessagePackToJSON(\"\") expected error, got nil")
	}
}

func TestConcurrentConversions(t *testing.T) {
	// Every call is pure and independent; hammer both directions from
	// many goroutines and verify results stay correct.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				encoded, err := JSONToMessagePack(aliceJSON)
				if err != nil || encoded != aliceBase64 {
					t.Errorf("concurrent JSONToMessagePack = %q, err = %v", encoded, err)
					return
				}
				jsonText, err := MessagePackToJSON(aliceHex)
				if err != nil || !strings.Contains(jsonText, "Wonderland") {
					t.Errorf("concurrent MessagePackToJSON = %q, err = %v", jsonText, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkJSONToMessagePack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := JSONToMessagePack(aliceJSON); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMessagePackToJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := MessagePackToJSON(aliceBase64); err != nil {
			b.Fatal(err)
		}
	}
}
