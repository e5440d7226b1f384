// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the expression parser, the
//              engine facade and the command line tooling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Logic codes replace the TCOL and service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Expression processing
	CodeEmptyInput    Code = "EMPTY_INPUT"
	CodeSyntax        Code = "LOGIC_SYNTAX"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Validation
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeEmptyInput, CodeSyntax, CodeInputTooLarge,
		CodeConfigError, CodeInvalidConfig,
		CodeDatabaseError,
		CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeEmptyInput, CodeSyntax, CodeInputTooLarge:
		return "logic"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError:
		return "database"
	case CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// IsUserError reports whether the code describes a problem with what the
// user supplied rather than with the program or its environment.
func (c Code) IsUserError() bool {
	switch c {
	case CodeInvalidInput, CodeEmptyInput, CodeSyntax, CodeInputTooLarge,
		CodeInvalidConfig, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}
