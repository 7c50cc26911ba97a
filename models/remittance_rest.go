package models

import "time"

// IncomingRemittanceRequest is the data received in the body of the incoming request
type IncomingRemittanceRequest struct {
	Invoices []InvoiceResourceRest `json:"invoices" validate:"required,min=1,dive"`
	Creditor *CreditorIdentityRest `json:"creditor,omitempty"`
}

// InvoiceResourceRest is one already-validated invoice selected for collection
type InvoiceResourceRest struct {
	ID       int64                `json:"id"       validate:"required"`
	Amount   string               `json:"amount"   validate:"required"`
	Customer CustomerResourceRest `json:"customer" validate:"required"`
}

// CustomerResourceRest is the debtor the invoice collects from
type CustomerResourceRest struct {
	ID   int64  `json:"id"   validate:"required"`
	Name string `json:"name" validate:"required"`
	// IBAN may be absent or malformed; the resolver decides what to do with it
	IBAN string `json:"iban,omitempty"`
	// MandateDate is the mandate signature date (yyyy-mm-dd) if the CRM holds
	// one; generation date is used otherwise
	MandateDate string `json:"mandate_date,omitempty"`
}

// CreditorIdentityRest identifies the initiating party of a remittance.
// The creditor identifier carries no required tag: an incomplete one is only
// rejected under strict schema validation, so that lenient generation can
// still produce a file for manual review.
type CreditorIdentityRest struct {
	Name       string `json:"name" validate:"required"`
	IBAN       string `json:"iban" validate:"required"`
	BIC        string `json:"bic"  validate:"required"`
	CreditorID string `json:"creditor_id"`
	Currency   string `json:"currency,omitempty"`
}

// RemittanceRunRest is public facing remittance run details to be returned in the response
type RemittanceRunRest struct {
	ID              string               `json:"id"`
	MessageID       string               `json:"message_id"`
	Filename        string               `json:"filename"`
	CreatedAt       time.Time            `json:"created_at,omitempty"`
	RequestedCount  int                  `json:"requested_count"`
	IncludedCount   int                  `json:"included_count"`
	ControlSum      string               `json:"control_sum"`
	TotalMinorUnits int64                `json:"total_minor_units"`
	CollectionDate  string               `json:"collection_date"`
	Kind            string               `json:"kind"`
	Links           RemittanceLinksRest  `json:"links"`
	SkippedInvoices []SkippedInvoiceRest `json:"skipped_invoices"`
}

// SkippedInvoiceRest records one invoice dropped from the batch so the caller
// can reconcile requested against included
type SkippedInvoiceRest struct {
	InvoiceID  int64  `json:"invoice_id"`
	CustomerID int64  `json:"customer_id"`
	Reason     string `json:"reason"`
}

// RemittanceLinksRest is a set of URLs related to the resource, including self
type RemittanceLinksRest struct {
	Self string `json:"self" validate:"required"`
}
