// Package codec maps the JSON value model to and from MessagePack bytes.
package codec

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mcncl/jsonpack/internal/errors"
	"github.com/mcncl/jsonpack/internal/models"
)

// Encode serializes a value into its canonical MessagePack representation:
// nil/bool markers, the smallest integer encoding that fits, float64 for
// non-integral numbers, str-format strings, and array/map headers. Map keys
// are emitted in sorted order so output is deterministic. No extension
// types are produced.
func Encode(value models.JSONValue) ([]byte, error) {
	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	if err := encodeValue(encoder, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeValue walks the value model with the encoder's typed methods.
// EncodeInt and EncodeUint pick the smallest width that fits, which keeps
// the byte output canonical regardless of how the number arrived.
func encodeValue(encoder *msgpack.Encoder, value models.JSONValue) error {
	var err error
	switch v := value.(type) {
	case nil:
		err = encoder.EncodeNil()
	case bool:
		err = encoder.EncodeBool(v)
	case int64:
		err = encoder.EncodeInt(v)
	case uint64:
		err = encoder.EncodeUint(v)
	case float64:
		err = encoder.EncodeFloat64(v)
	case string:
		err = encoder.EncodeString(v)
	case models.JSONArray:
		if err = encoder.EncodeArrayLen(len(v)); err != nil {
			return errors.NewMsgpackEncodeError("failed to encode array header", err)
		}
		for _, elem := range v {
			if err = encodeValue(encoder, elem); err != nil {
				return err
			}
		}
		return nil
	case models.JSONObject:
		if err = encoder.EncodeMapLen(len(v)); err != nil {
			return errors.NewMsgpackEncodeError("failed to encode map header", err)
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err = encoder.EncodeString(key); err != nil {
				return errors.NewMsgpackEncodeError("failed to encode map key", err)
			}
			if err = encodeValue(encoder, v[key]); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.NewMsgpackEncodeError(
			fmt.Sprintf("value of type %T is not part of the JSON value model", value),
			nil,
		)
	}
	if err != nil {
		return errors.NewMsgpackEncodeError("failed to encode value as MessagePack", err)
	}
	return nil
}

// Decode parses one complete MessagePack value from the start of the buffer
// and normalizes it into the JSON value model. Trailing bytes after the
// first value are ignored.
//
// Inputs outside the JSON-derived type set are handled explicitly rather
// than silently lost: bin payloads are coerced to String (bin and str carry
// the same bytes), while maps with non-string keys and extension types are
// rejected with the decoder's error.
func Decode(data []byte) (models.JSONValue, error) {
	if len(data) == 0 {
		return nil, errors.NewMsgpackDecodeError("input is empty", nil)
	}
	decoder := msgpack.NewDecoder(bytes.NewReader(data))
	raw, err := decoder.DecodeInterfaceLoose()
	if err != nil {
		return nil, errors.NewMsgpackDecodeError("failed to decode MessagePack value", err)
	}
	return normalize(raw)
}

// normalize converts the decoder's output into model types: every integer
// width collapses to int64 (uint64 only above int64 range), float32 widens
// to float64, and bin payloads become strings.
func normalize(raw interface{}) (models.JSONValue, error) {
	switch v := raw.(type) {
	case nil, bool, string, int64, float64:
		return v, nil
	case []byte:
		return string(v), nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return normalizeUint(uint64(v)), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return normalizeUint(v), nil
	case float32:
		return float64(v), nil
	case []interface{}:
		arr := make(models.JSONArray, len(v))
		for i, elem := range v {
			normalized, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			arr[i] = normalized
		}
		return arr, nil
	case map[string]interface{}:
		obj := make(models.JSONObject, len(v))
		for key, elem := range v {
			normalized, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			obj[key] = normalized
		}
		return obj, nil
	default:
		return nil, errors.NewMsgpackDecodeError(
			fmt.Sprintf("value of type %T has no JSON representation", raw),
			nil,
		)
	}
}

func normalizeUint(u uint64) models.JSONValue {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}
