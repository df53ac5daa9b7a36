package template

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("invalid template configuration")

// Configuration error codes.
const (
	CodeBadSize        = "BAD_SIZE"
	CodeNotSquare      = "NOT_SQUARE"
	CodeBadBlockSize   = "BAD_BLOCK_SIZE"
	CodeMismatchedSize = "MISMATCHED_SIZE"
	CodeOutOfRange     = "OUT_OF_RANGE"
	CodeBadDirection   = "BAD_DIRECTION"
	CodeDuplicateCell  = "DUPLICATE_CELL"
	CodeBadLength      = "BAD_LENGTH"
)

// ConfigError describes an invalid template configuration.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrInvalidConfig) match any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configErrorf(code, format string, args ...any) *ConfigError {
	return &ConfigError{Code: code, Message: fmt.Sprintf(format, args...)}
}
