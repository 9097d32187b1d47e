// Package errors provides standardized error types for sslauto.
//
// Every failure a provisioning operation can hit maps to one of the
// error codes below, so callers (and the CLI exit-status mapping) can
// branch on category instead of matching message strings.
//
// Creating errors:
//
//	return errors.InvalidDomain("bad..com")
//	return errors.Issuance("example.com", err)
//	return errors.Wrap(errors.CodeReload, "nginx reload failed", err)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrPortUnreachable) { ... }
//
//	var opErr *errors.OpError
//	if errors.As(err, &opErr) {
//	    fmt.Println(opErr.Code, opErr.Domain)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes operation errors for programmatic handling.
type Code string

const (
	CodeValidation  Code = "VALIDATION"       // Domain or port validation failed
	CodeToolMissing Code = "TOOL_MISSING"     // Required external tool not installed
	CodeUnreachable Code = "PORT_UNREACHABLE" // Upstream port did not accept a connection
	CodeIssuance    Code = "ISSUANCE"         // Certificate issuance client reported failure
	CodeConfigWrite Code = "CONFIG_WRITE"     // Writing or activating site configuration failed
	CodeReload      Code = "RELOAD"           // Proxy server reload failed
	CodeParse       Code = "PARSE"            // External tool output was not in the expected format
	CodeInternal    Code = "INTERNAL"         // Unexpected internal error
)

// OpError is a structured error carrying the failure category and the
// domain the operation was acting on.
type OpError struct {
	Code    Code   // Failure category
	Message string // Human-readable message
	Domain  string // Domain name the operation targeted, if any
	Err     error  // Underlying error, if any
}

func (e *OpError) Error() string {
	switch {
	case e.Domain != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Domain, e.Message, e.Err)
	case e.Domain != "":
		return fmt.Sprintf("%s: %s", e.Domain, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying error for error chain traversal.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Is matches on error code, so wrapped instances compare equal to the
// package sentinels.
func (e *OpError) Is(target error) bool {
	t, ok := target.(*OpError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for errors.Is checks.
var (
	ErrInvalidDomain   = &OpError{Code: CodeValidation, Message: "invalid domain name"}
	ErrInvalidPort     = &OpError{Code: CodeValidation, Message: "invalid port"}
	ErrToolMissing     = &OpError{Code: CodeToolMissing, Message: "required tool not installed"}
	ErrPortUnreachable = &OpError{Code: CodeUnreachable, Message: "port not reachable"}
	ErrIssuanceFailed  = &OpError{Code: CodeIssuance, Message: "certificate issuance failed"}
	ErrConfigWrite     = &OpError{Code: CodeConfigWrite, Message: "site configuration write failed"}
	ErrReloadFailed    = &OpError{Code: CodeReload, Message: "proxy reload failed"}
	ErrParse           = &OpError{Code: CodeParse, Message: "unrecognized tool output"}
)

// InvalidDomain creates a validation error for a malformed domain name.
func InvalidDomain(domain string) error {
	return &OpError{
		Code:    CodeValidation,
		Message: "invalid domain name, expected format like 'example.com'",
		Domain:  domain,
	}
}

// InvalidPort creates a validation error for an out-of-range port.
func InvalidPort(port int) error {
	return &OpError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("invalid port %d, must be in range 1-65535", port),
	}
}

// ToolMissing creates an error for an external tool that is absent
// after an install attempt.
func ToolMissing(tool string) error {
	return &OpError{
		Code:    CodeToolMissing,
		Message: fmt.Sprintf("%s is not installed and could not be installed automatically", tool),
	}
}

// Unreachable creates an error for an upstream port that refused or
// timed out.
func Unreachable(port int) error {
	return &OpError{
		Code:    CodeUnreachable,
		Message: fmt.Sprintf("port %d is not accessible or timed out", port),
	}
}

// Issuance creates an error for a failed certificate issuance, wrapping
// the issuance client's output.
func Issuance(domain string, err error) error {
	return &OpError{
		Code:    CodeIssuance,
		Message: "failed to obtain certificate",
		Domain:  domain,
		Err:     err,
	}
}

// Parse creates an error for unparseable external tool output.
func Parse(msg string, err error) error {
	return &OpError{
		Code:    CodeParse,
		Message: msg,
		Err:     err,
	}
}

// Wrap creates an error with the given code and message around an
// underlying error.
func Wrap(code Code, msg string, err error) error {
	return &OpError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapDomain is Wrap with domain context attached.
func WrapDomain(code Code, domain, msg string, err error) error {
	return &OpError{
		Code:    code,
		Message: msg,
		Domain:  domain,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// Re-export of the stdlib errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain matching target.
// Re-export of the stdlib errors.As for convenience.
var As = errors.As
