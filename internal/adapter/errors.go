package adapter

import "fmt"

// ArgumentError is returned when the argument map does not decode into the
// tool's parameters.
type ArgumentError struct {
	Tool  string
	Cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Cause)
}
func (e *ArgumentError) Unwrap() error      { return e.Cause }
func (e *ArgumentError) InvalidInput() bool { return true }

// UnknownToolError is returned by Registry.Execute for an unregistered name.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}
func (e *UnknownToolError) InvalidInput() bool { return true }
