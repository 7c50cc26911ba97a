package service

import (
	"errors"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/loviluz/remittance.api.loviluz.es/config"
	"github.com/loviluz/remittance.api.loviluz.es/dao"
	"github.com/loviluz/remittance.api.loviluz.es/models"
	"github.com/loviluz/remittance.api.loviluz.es/transformers"
)

const remittanceRunKind = "remittance-run#remittance-run"

// Currency of the scheme; every amount in a remittance is collected in euro
const currencyEUR = "EUR"

// Options are the policy switches of one generation call
type Options struct {
	StrictSchemaValidation bool
	AccountFallbackPolicy  string
	FailurePolicy          string
	FallbackIBAN           string
	CollectionLeadDays     int
}

// OptionsFromConfig lifts the configured policy defaults into Options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		StrictSchemaValidation: cfg.StrictSchemaValidation,
		AccountFallbackPolicy:  cfg.AccountFallbackPolicy,
		FailurePolicy:          cfg.FailurePolicy,
		FallbackIBAN:           cfg.FallbackIBAN,
		CollectionLeadDays:     cfg.CollectionLeadDays,
	}
}

// RemittanceService contains the DAO for db access
type RemittanceService struct {
	DAO    dao.DAO
	Config config.Config
	Clock  Clock
}

func (service *RemittanceService) clock() Clock {
	if service.Clock != nil {
		return service.Clock
	}
	return systemClock{}
}

// GenerateRemittance turns a non-empty invoice selection plus a creditor
// identity into a pain.008.001.02 file and an audit record of the run. Each
// call builds, serializes and discards its own batch; no state is shared
// between calls.
func (service *RemittanceService) GenerateRemittance(invoices []models.InvoiceResourceRest, creditor models.CreditorIdentityRest, opts Options) (*models.RemittanceRunRest, []byte, ResponseType, error) {
	if err := validateCreditor(&creditor); err != nil {
		return nil, nil, InvalidData, err
	}

	clock := service.clock()

	batch, skipped, err := BuildBatch(invoices, creditor, clock, opts)
	if err != nil {
		return nil, nil, InvalidData, err
	}

	createdAt := clock.Now()
	messageID := generateID()

	output, err := SerializeBatch(batch, messageID, createdAt, opts)
	if err != nil {
		var schemaErr *SchemaValidationError
		if errors.As(err, &schemaErr) {
			return nil, nil, InvalidData, err
		}
		return nil, nil, Error, err
	}

	if skipped == nil {
		skipped = []models.SkippedInvoiceRest{}
	}
	run := &models.RemittanceRunRest{
		ID:              messageID,
		MessageID:       messageID,
		Filename:        fmt.Sprintf("Remesa_%s.xml", createdAt.Format(dateFormat)),
		CreatedAt:       createdAt,
		RequestedCount:  len(invoices),
		IncludedCount:   len(batch.Instructions),
		ControlSum:      batch.ControlSum(),
		TotalMinorUnits: batch.TotalMinorUnits(),
		CollectionDate:  batch.CollectionDate,
		Kind:            remittanceRunKind,
		Links:           models.RemittanceLinksRest{Self: fmt.Sprintf("remittances/%s", messageID)},
		SkippedInvoices: skipped,
	}

	// The file is the deliverable; a failure to write the audit record is
	// logged but does not void the generated bytes
	runResource := transformers.RemittanceTransformer{}.TransformToDB(*run)
	if err = service.DAO.CreateRemittanceRunResource(&runResource); err != nil {
		log.Error(fmt.Errorf("error writing remittance run to db: [%v]", err), log.Data{"remittance_id": run.ID})
	}

	log.Info("generated remittance", log.Data{
		"remittance_id":   run.ID,
		"requested_count": run.RequestedCount,
		"included_count":  run.IncludedCount,
		"control_sum":     run.ControlSum,
	})

	return run, output, Success, nil
}

// GetRemittanceRun retrieves a stored remittance run record
func (service *RemittanceService) GetRemittanceRun(id string) (*models.RemittanceRunRest, ResponseType, error) {
	runResource, err := service.DAO.GetRemittanceRunResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting remittance run from db: [%v]", err)
	}
	if runResource == nil {
		return nil, NotFound, nil
	}

	run := transformers.RemittanceTransformer{}.TransformToRest(*runResource)
	return &run, Success, nil
}

// validateCreditor checks the fields without which no payment block can be
// built. The currency is fixed to EUR when absent. The creditor scheme
// identifier is checked by strict schema validation only.
func validateCreditor(creditor *models.CreditorIdentityRest) error {
	if creditor.Currency == "" {
		creditor.Currency = currencyEUR
	}

	var missing []string
	if creditor.Name == "" {
		missing = append(missing, "name")
	}
	if creditor.IBAN == "" {
		missing = append(missing, "iban")
	}
	if creditor.BIC == "" {
		missing = append(missing, "bic")
	}
	if len(missing) > 0 {
		return &InvalidCreditorError{MissingFields: missing}
	}
	return nil
}
