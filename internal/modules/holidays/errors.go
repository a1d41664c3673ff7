package holidays

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidDate               = errors.New("invalid date")
	ErrInvalidRule               = errors.New("invalid rule")
	ErrUnknownLocale             = errors.New("unknown locale")
	ErrDuplicateHolidayKey       = errors.New("duplicate holiday key")
	ErrSubstitutionBoundExceeded = errors.New("substitution bound exceeded")
	ErrMissingTranslation        = errors.New("missing translation")
	ErrUnknownJurisdiction       = errors.New("unknown jurisdiction")
	ErrCyclicJurisdiction        = errors.New("cyclic jurisdiction")
	ErrHolidayNotFound           = errors.New("holiday not found")
	ErrInvalidDateRange          = errors.New("start date must be before or equal to end date")
)

// RuleError records the jurisdiction, rule key and year a computation failed for.
// It unwraps to one of the domain errors above.
type RuleError struct {
	Jurisdiction string
	Key          string
	Year         int
	Err          error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: rule %q in %d: %v", e.Jurisdiction, e.Key, e.Year, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
