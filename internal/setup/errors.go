package setup

import "fmt"

// ComponentError reports which component failed to start.
type ComponentError struct {
	Component string
	Err       error
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("setting up %s: %v", e.Component, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

func NewComponentError(component string, err error) *ComponentError {
	return &ComponentError{
		Component: component,
		Err:       err,
	}
}
