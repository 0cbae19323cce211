package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes errors by the conversion stage that produced them
type ErrorType string

const (
	ErrorTypeInput         ErrorType = "input"
	ErrorTypeJSONParse     ErrorType = "json_parse"
	ErrorTypeMsgpackEncode ErrorType = "msgpack_encode"
	ErrorTypeMsgpackDecode ErrorType = "msgpack_decode"
	ErrorTypeTransport     ErrorType = "transport"
	ErrorTypeJSONPrint     ErrorType = "json_print"
	ErrorTypeOutput        ErrorType = "output"
	ErrorTypeUnknown       ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewJSONParseError creates a new error related to JSON parsing
func NewJSONParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeJSONParse,
		Message: message,
		Err:     err,
	}
}

// NewMsgpackEncodeError creates a new error related to MessagePack serialization
func NewMsgpackEncodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeMsgpackEncode,
		Message: message,
		Err:     err,
	}
}

// NewMsgpackDecodeError creates a new error related to MessagePack deserialization
func NewMsgpackDecodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeMsgpackDecode,
		Message: message,
		Err:     err,
	}
}

// NewTransportError creates a new error related to hex/base64 decoding
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     err,
	}
}

// NewJSONPrintError creates a new error related to JSON serialization
func NewJSONPrintError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeJSONPrint,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing output
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// cause returns the most useful underlying message for display
func (e *AppError) cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// UserFriendlyError returns a user-friendly, stage-labelled error message.
// The labels match the converter's public contract: a caller can tell a
// malformed JSON document apart from a malformed binary payload.
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeJSONParse:
			return fmt.Sprintf("Failed to parse JSON: %s", appErr.cause())
		case ErrorTypeMsgpackEncode:
			return fmt.Sprintf("Failed to serialize to MessagePack: %s", appErr.cause())
		case ErrorTypeMsgpackDecode:
			return fmt.Sprintf("Failed to deserialize MessagePack: %s", appErr.cause())
		case ErrorTypeTransport:
			// Message names the alphabet that was attempted ("Hex" or "Base64")
			if appErr.Err != nil {
				return fmt.Sprintf("Failed to decode %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Failed to decode %s", appErr.Message)
		case ErrorTypeJSONPrint:
			return fmt.Sprintf("Failed to serialize to JSON: %s", appErr.cause())
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide data to convert."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON document."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with content to convert."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
