package coderef

import "fmt"

// ConfigError reports a malformed reference string at construction time.
type ConfigError struct {
	Input  string
	Reason string
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid code reference %q: %s", e.Input, e.Reason)
}

// ImportError reports a failed resolution: an unknown namespace, a missing
// attribute, a failed entry point load, or a capability mismatch. The
// distinct failure modes share this one kind and differ only in message.
type ImportError struct {
	Ref    string
	Reason string
	Err    error
}

// Error implements the error interface for ImportError.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot resolve %q: %s: %v", e.Ref, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot resolve %q: %s", e.Ref, e.Reason)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ImportError) Unwrap() error { return e.Err }
