package models

// JSONValue is a generic type to represent any JSON value.
// After normalization it holds exactly one of: nil, bool, int64, uint64
// (only for magnitudes above math.MaxInt64), float64, string, JSONArray
// or JSONObject.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
// Duplicate keys in source input resolve last-write-wins.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue
