package models

import "time"

// RemittanceRunDB contains all remittance run details to be stored in the DB
type RemittanceRunDB struct {
	ID   string              `bson:"_id"`
	Data RemittanceRunDataDB `bson:"data"`
}

// RemittanceRunDataDB is the audit record of one generation call
type RemittanceRunDataDB struct {
	MessageID       string             `bson:"message_id"`
	Filename        string             `bson:"filename"`
	CreatedAt       time.Time          `bson:"created_at,omitempty"`
	RequestedCount  int                `bson:"requested_count"`
	IncludedCount   int                `bson:"included_count"`
	ControlSum      string             `bson:"control_sum"`
	TotalMinorUnits int64              `bson:"total_minor_units"`
	CollectionDate  string             `bson:"collection_date"`
	Kind            string             `bson:"kind"`
	Links           RemittanceLinksDB  `bson:"links"`
	SkippedInvoices []SkippedInvoiceDB `bson:"skipped_invoices"`
}

// SkippedInvoiceDB records one invoice dropped from the batch
type SkippedInvoiceDB struct {
	InvoiceID  int64  `bson:"invoice_id"`
	CustomerID int64  `bson:"customer_id"`
	Reason     string `bson:"reason"`
}

// RemittanceLinksDB is a set of URLs related to the resource, including self
type RemittanceLinksDB struct {
	Self string `bson:"self"`
}
