package bm

import "fmt"

// UnknownNameTypeError reports a name-type token that is not one of
// "ash", "gen" or "sep", or a ConfigFiles bundle that does not cover the
// requested name type.
type UnknownNameTypeError struct {
	Name string
}

func (e *UnknownNameTypeError) Error() string {
	return fmt.Sprintf("unknown name type %q", e.Name)
}
