// Package errors provides the failure taxonomy shared by all features.
// Each failure kind the service can surface is represented by a sentinel
// error, a typed error, or both, so callers can branch on the kind with
// errors.Is / errors.As without string matching.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors. Typed errors below report themselves as one of these
// through their Is methods.
var (
	// ErrNotFound indicates that a requested record is absent. This is a
	// normal negative result, not a failure of the operation itself.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates a uniqueness violation. Callers should treat
	// it as retryable by re-resolving from the top.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConfiguration indicates missing or invalid server configuration.
	// Not retryable; the deployment has to be fixed.
	ErrConfiguration = errors.New("configuration error")

	// ErrTimeout indicates the metadata provider did not answer in time.
	ErrTimeout = errors.New("provider timeout")

	// ErrUpstream indicates the metadata provider answered with an error.
	ErrUpstream = errors.New("upstream error")

	// ErrParse indicates the metadata provider answered with a body that
	// could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrInvalidInput indicates a field failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigError reports a missing provider credential or similar server
// misconfiguration. It is raised before any network I/O is attempted.
type ConfigError struct {
	Component string
	Message   string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string) *ConfigError {
	return &ConfigError{Component: component, Message: message}
}

// TimeoutError reports that an outbound call exceeded its bounded timeout.
type TimeoutError struct {
	Provider string
	Err      error
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout calling %s: %v", e.Provider, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(provider string, err error) *TimeoutError {
	return &TimeoutError{Provider: provider, Err: err}
}

// UpstreamError reports an error response from the metadata provider. It
// carries the provider's status code and raw body verbatim for debugging.
// A zero StatusCode means the request never completed (network failure).
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s responded with status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("request to %s failed: %v", e.Provider, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(provider string, statusCode int, body string) *UpstreamError {
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Body: body}
}

// ParseError reports a malformed provider response body.
type ParseError struct {
	Provider string
	Err      error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse response from %s: %v", e.Provider, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(provider string, err error) *ParseError {
	return &ParseError{Provider: provider, Err: err}
}

// GameNotFoundError reports that a referenced internal game id does not
// exist in the catalog. This is a caller input error, distinct from the
// not-found negative result on library entries.
type GameNotFoundError struct {
	GameID uint
}

// Error implements the error interface
func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("game %d does not exist", e.GameID)
}

// Is implements errors.Is support
func (e *GameNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewGameNotFoundError creates a new GameNotFoundError
func NewGameNotFoundError(gameID uint) *GameNotFoundError {
	return &GameNotFoundError{GameID: gameID}
}

// DuplicateKeyError reports a uniqueness constraint violation. Under a
// first-resolution race two callers can both miss the cache and fetch; the
// loser of the insert gets this error and should retry from the lookup.
type DuplicateKeyError struct {
	Resource string
	Key      string
	Err      error
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Resource, e.Key)
}

// Unwrap implements errors.Unwrap
func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(resource, key string, err error) *DuplicateKeyError {
	return &DuplicateKeyError{Resource: resource, Key: key, Err: err}
}

// ValidationError represents a validation failure on a single field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not-found result
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey checks if an error is a retryable uniqueness violation
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsConfiguration checks if an error is a server misconfiguration
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsTimeout checks if an error is a provider timeout
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsUpstream checks if an error is a provider error response
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsParse checks if an error is a malformed provider response
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsValidation checks if an error is a field validation failure
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
