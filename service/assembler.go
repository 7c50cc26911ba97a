package service

import (
	"github.com/companieshouse/chs.go/log"
	"github.com/loviluz/remittance.api.loviluz.es/config"
	"github.com/loviluz/remittance.api.loviluz.es/models"
	"github.com/shopspring/decimal"
)

// PaymentInstruction is one collection derived from one invoice. Constructed
// once at batch build time and immutable thereafter; it only lives for the
// duration of one generation call.
type PaymentInstruction struct {
	InvoiceID          int64
	CustomerID         int64
	DebtorName         string
	DebtorIBAN         string
	AmountMinorUnits   int64
	RemittanceInfo     string
	EndToEndID         string
	MandateID          string
	MandateDate        string
	Substituted        bool
	SubstitutionReason string
}

// RemittanceBatch owns one creditor identity and the ordered sequence of
// instructions built from the input invoices. Grouped is always true: all
// instructions submit as one accounting batch.
type RemittanceBatch struct {
	Creditor       models.CreditorIdentityRest
	CollectionDate string
	Grouped        bool
	Instructions   []PaymentInstruction
}

// TotalMinorUnits sums all instruction amounts
func (batch *RemittanceBatch) TotalMinorUnits() int64 {
	var total int64
	for _, instruction := range batch.Instructions {
		total += instruction.AmountMinorUnits
	}
	return total
}

// ControlSum renders the instruction total in currency units with two decimals
func (batch *RemittanceBatch) ControlSum() string {
	return decimal.New(batch.TotalMinorUnits(), -2).StringFixed(2)
}

// BuildBatch resolves and normalizes every invoice into a payment instruction
// and accumulates the survivors in input order. Under the skip policy a
// failed invoice is logged, recorded as a skipped diagnostic and dropped;
// under the abort policy the first failure propagates.
func BuildBatch(invoices []models.InvoiceResourceRest, creditor models.CreditorIdentityRest, clock Clock, opts Options) (*RemittanceBatch, []models.SkippedInvoiceRest, error) {
	batch := &RemittanceBatch{
		Creditor:       creditor,
		CollectionDate: CollectionDate(clock, opts.CollectionLeadDays),
		Grouped:        true,
	}

	var skipped []models.SkippedInvoiceRest

	for _, invoice := range invoices {
		instruction, err := buildInstruction(invoice, creditor.Name, clock, opts)
		if err != nil {
			buildErr := &InstructionBuildError{InvoiceID: invoice.ID, CustomerID: invoice.Customer.ID, Err: err}
			if opts.FailurePolicy == config.FailurePolicyAbort {
				return nil, nil, buildErr
			}
			log.Error(buildErr, log.Data{"invoice_id": invoice.ID, "customer_id": invoice.Customer.ID})
			skipped = append(skipped, models.SkippedInvoiceRest{
				InvoiceID:  invoice.ID,
				CustomerID: invoice.Customer.ID,
				Reason:     err.Error(),
			})
			continue
		}
		batch.Instructions = append(batch.Instructions, instruction)
	}

	if len(batch.Instructions) == 0 {
		return nil, skipped, ErrEmptyBatch
	}

	return batch, skipped, nil
}

func buildInstruction(invoice models.InvoiceResourceRest, creditorName string, clock Clock, opts Options) (PaymentInstruction, error) {
	amount, err := ParseAmount(invoice.Amount)
	if err != nil {
		return PaymentInstruction{}, err
	}

	resolution, err := ResolveDebtorAccount(invoice.Customer.IBAN, opts)
	if err != nil {
		return PaymentInstruction{}, err
	}
	if resolution.Substituted {
		log.Info("substituted fallback debtor account", log.Data{
			"invoice_id":  invoice.ID,
			"customer_id": invoice.Customer.ID,
			"reason":      resolution.Reason,
		})
	}

	return PaymentInstruction{
		InvoiceID:          invoice.ID,
		CustomerID:         invoice.Customer.ID,
		DebtorName:         invoice.Customer.Name,
		DebtorIBAN:         resolution.IBAN,
		AmountMinorUnits:   NormalizeAmount(amount),
		RemittanceInfo:     RemittanceInformation(invoice.ID, creditorName),
		EndToEndID:         EndToEndID(invoice.ID),
		MandateID:          MandateReference(invoice.Customer.ID),
		MandateDate:        MandateDate(clock, invoice.Customer.MandateDate),
		Substituted:        resolution.Substituted,
		SubstitutionReason: resolution.Reason,
	}, nil
}
