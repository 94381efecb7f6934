package errors

import (
	"fmt"
)

// ValidationError represents an error when validation fails
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// BackendAPIError represents a non-success answer from the platform backend
type BackendAPIError struct {
	Operation string
	Status    int
	Message   string
}

// Error returns the error message
func (e *BackendAPIError) Error() string {
	return fmt.Sprintf("backend API error during %s (status %d): %s", e.Operation, e.Status, e.Message)
}

// StateError represents an error related to user state
type StateError struct {
	UserID  int64
	State   string
	Message string
}

// Error returns the error message
func (e *StateError) Error() string {
	return fmt.Sprintf("state error for user %d in state %s: %s", e.UserID, e.State, e.Message)
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Section string
	Message string
}

// Error returns the error message
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Section, e.Message)
}

// MenuConfigError represents a broken entry in the support menu table
type MenuConfigError struct {
	Category string
	Option   string
	Message  string
}

// Error returns the error message
func (e *MenuConfigError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("menu configuration error in %s/%s: %s", e.Category, e.Option, e.Message)
	}
	return fmt.Sprintf("menu configuration error in %s: %s", e.Category, e.Message)
}
