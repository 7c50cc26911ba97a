package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyBatch is returned when no instructions remain after processing, so
// there is nothing to serialize
var ErrEmptyBatch = errors.New("empty remittance batch: no invoices survived instruction building")

// InvalidCreditorError reports a creditor identity that cannot head a payment
// block. The creditor scheme identifier is deliberately not part of this
// check; an empty one is caught by strict schema validation instead, so that
// lenient generation can still produce a reviewable file.
type InvalidCreditorError struct {
	MissingFields []string
}

func (e *InvalidCreditorError) Error() string {
	return fmt.Sprintf("creditor identity missing required fields: [%s]", strings.Join(e.MissingFields, ", "))
}

// AccountResolutionError is returned under the reject fallback policy when a
// customer has no usable bank account identifier
type AccountResolutionError struct {
	Reason string
}

func (e *AccountResolutionError) Error() string {
	return fmt.Sprintf("no usable debtor account: %s", e.Reason)
}

// InstructionBuildError wraps any failure while turning one invoice into a
// payment instruction
type InstructionBuildError struct {
	InvoiceID  int64
	CustomerID int64
	Err        error
}

func (e *InstructionBuildError) Error() string {
	return fmt.Sprintf("error building instruction for invoice [%d]: [%v]", e.InvoiceID, e.Err)
}

func (e *InstructionBuildError) Unwrap() error {
	return e.Err
}

// SchemaValidationError lists every structural violation found in the
// assembled document. Only returned when strict schema validation is on.
type SchemaValidationError struct {
	Violations []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("document failed schema validation: %s", strings.Join(e.Violations, "; "))
}
