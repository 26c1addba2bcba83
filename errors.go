package universe

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/flavioheleno/universe/ordinal"
)

var (
	// ErrSideOutOfRange is wrapped by SideError.
	ErrSideOutOfRange = errors.New("universe: side out of range")
	// ErrOrdinalOutOfRange is wrapped by OrdinalError.
	ErrOrdinalOutOfRange = errors.New("universe: ordinal out of range")
)

// SideError reports a side outside [1, Limit].
type SideError struct {
	Side  int
	Limit int
}

// Error implements error.
func (e *SideError) Error() string {
	return fmt.Sprintf("universe: side %d must be between 1 and %d", e.Side, e.Limit)
}

// Unwrap returns ErrSideOutOfRange.
func (e *SideError) Unwrap() error {
	return ErrSideOutOfRange
}

// OrdinalError reports an ordinal outside [0, Max] for Side.
// Ordinal is nil when no ordinal was supplied.
type OrdinalError struct {
	Side    int
	Ordinal *big.Int
	Max     *big.Int
}

// Error implements error.
func (e *OrdinalError) Error() string {
	if e.Ordinal == nil {
		return fmt.Sprintf("universe: nil ordinal for side %d", e.Side)
	}
	return fmt.Sprintf("universe: ordinal %s out of range for side %d (max %s)",
		ordinal.Approx(e.Ordinal), e.Side, ordinal.Approx(e.Max))
}

// Unwrap returns ErrOrdinalOutOfRange.
func (e *OrdinalError) Unwrap() error {
	return ErrOrdinalOutOfRange
}
