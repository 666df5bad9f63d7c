package layers

import "fmt"

// InvalidArgumentError reports a graph-position argument that is neither
// absent, a sequential container, nor a tensor.
type InvalidArgumentError struct {
	Value any // the offending argument
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid graph position %v (%T): must be nil, a framework.Sequential, or a framework.Tensor", e.Value, e.Value)
}

// ConfigError reports a layer configuration rejected at construction time.
type ConfigError struct {
	Layer  string // layer kind, e.g. "dense"
	Field  string // offending config field
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Layer, e.Field, e.Reason)
}
