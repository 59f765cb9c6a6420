package errors

import (
	"errors"
	"fmt"
	"strings"
)

// CategoryFailure records one fact category whose facility could not be reached.
type CategoryFailure struct {
	Category string
	Cause    error
}

// Error implements the error interface.
func (f CategoryFailure) Error() string {
	if f.Cause == nil {
		return f.Category + ": unreachable"
	}
	return fmt.Sprintf("%s: %v", f.Category, f.Cause)
}

// Unwrap returns the facility error.
func (f CategoryFailure) Unwrap() error {
	return f.Cause
}

// CollectionError lists the categories that fell back to placeholders during
// a collection pass. The snapshot it accompanies is still usable.
type CollectionError struct {
	Failures []CategoryFailure
}

// Add records a failure for category. A category is recorded at most once.
func (e *CollectionError) Add(category string, cause error) {
	if e.Has(category) {
		return
	}
	e.Failures = append(e.Failures, CategoryFailure{Category: category, Cause: cause})
}

// Has reports whether category failed.
func (e *CollectionError) Has(category string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Failures {
		if f.Category == category {
			return true
		}
	}
	return false
}

// Categories returns the failed category names in the order they failed.
func (e *CollectionError) Categories() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.Category)
	}
	return names
}

// Empty reports whether no category failed.
func (e *CollectionError) Empty() bool {
	return e == nil || len(e.Failures) == 0
}

// Error implements the error interface.
func (e *CollectionError) Error() string {
	if e.Empty() {
		return "no collection failures"
	}
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Error())
	}
	return "unreachable categories: " + strings.Join(parts, "; ")
}

// Unwrap exposes each category failure to errors.Is/errors.As.
func (e *CollectionError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// AsCollection extracts a *CollectionError from err, if there is one.
func AsCollection(err error) (*CollectionError, bool) {
	var ce *CollectionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
