package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsonpack/internal/errors"
	"github.com/mcncl/jsonpack/internal/models"
)

// Parse decodes one JSON document from an io.Reader into a models.JSONValue.
// Any syntactically valid document is accepted at the top level: object,
// array or scalar. Trailing data after the first document is rejected.
func Parse(reader io.Reader) (models.JSONValue, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	var rootValue models.JSONValue
	if err := decoder.Decode(&rootValue); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewJSONParseError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewJSONParseError(
				fmt.Sprintf("JSON syntax error at offset %d: %v", syntaxError.Offset, syntaxError),
				errors.ErrInvalidJSON,
			)
		}
		return nil, errors.NewJSONParseError("failed to decode JSON", err)
	}

	// Check for trailing data after the first JSON value. Whitespace up to
	// EOF is fine; anything else makes the document ambiguous.
	if decoder.More() {
		var trailingValue interface{}
		if err := decoder.Decode(&trailingValue); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return nil, errors.NewJSONParseError("invalid trailing data after first JSON value", err)
			}
		} else {
			return nil, errors.NewJSONParseError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	return normalizeJSONValue(rootValue)
}

// normalizeJSONValue converts raw decoder types into our model types.
// json.Number is resolved here so the rest of the pipeline only ever sees
// int64, uint64 or float64 numbers.
func normalizeJSONValue(val models.JSONValue) (models.JSONValue, error) {
	switch v := val.(type) {
	case map[string]interface{}:
		obj := make(models.JSONObject, len(v))
		for key, value := range v {
			normalized, err := normalizeJSONValue(value)
			if err != nil {
				return nil, err
			}
			obj[key] = normalized
		}
		return obj, nil
	case []interface{}:
		arr := make(models.JSONArray, len(v))
		for i, value := range v {
			normalized, err := normalizeJSONValue(value)
			if err != nil {
				return nil, err
			}
			arr[i] = normalized
		}
		return arr, nil
	case json.Number:
		return normalizeNumber(v)
	default:
		return v, nil // string, bool, nil are returned as is
	}
}

// normalizeNumber preserves the integer/float distinction the source text
// provides: integral numbers become int64 (uint64 when above int64 range),
// everything else becomes float64.
func normalizeNumber(num json.Number) (models.JSONValue, error) {
	if i, err := num.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(num.String(), 10, 64); err == nil {
		return u, nil
	}
	f, err := num.Float64()
	if err != nil {
		return nil, errors.NewJSONParseError(
			fmt.Sprintf("number %q cannot be represented", num.String()),
			err,
		)
	}
	return f, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.JSONValue, error) {
	// An empty reader gives io.EOF to Decode, but report whitespace-only
	// input with the same specific error up front.
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewJSONParseError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.JSONValue, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
