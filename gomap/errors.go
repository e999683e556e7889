package gomap

import "fmt"

// UnmarshalError reports a failure converting a tree into a Go value.
type UnmarshalError struct {
	Field   string
	Message string
	Err     error
}

func (e *UnmarshalError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("gomap: %s", e.message())
	}
	return fmt.Sprintf("gomap: field %s: %s", e.Field, e.message())
}

func (e *UnmarshalError) message() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// MarshalError reports a failure converting a Go value into a tree.
type MarshalError struct {
	Field   string
	Message string
}

func (e *MarshalError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("gomap: %s", e.Message)
	}
	return fmt.Sprintf("gomap: field %s: %s", e.Field, e.Message)
}
