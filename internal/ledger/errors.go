package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every input rejection from the mutator.
var ErrValidation = errors.New("validation failed")

var (
	ErrEmptyDescription = fmt.Errorf("%w: empty description", ErrValidation)
	ErrEmptyCategory    = fmt.Errorf("%w: empty category", ErrValidation)
	ErrEmptySource      = fmt.Errorf("%w: empty source", ErrValidation)
	ErrEmptyName        = fmt.Errorf("%w: empty name", ErrValidation)
	ErrInvalidValue     = fmt.Errorf("%w: invalid value", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidType      = fmt.Errorf("%w: invalid income type", ErrValidation)
	ErrInvalidCurrency  = fmt.Errorf("%w: invalid currency", ErrValidation)
	ErrInvalidKind      = fmt.Errorf("%w: invalid transaction kind", ErrValidation)
	ErrInvalidDateRange = fmt.Errorf("%w: invalid date range", ErrValidation)
	ErrInvalidRate      = fmt.Errorf("%w: exchange rate must be greater than zero", ErrValidation)
)
