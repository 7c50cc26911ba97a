package transformers

import (
	"github.com/loviluz/remittance.api.loviluz.es/models"
)

// Transformer is an interface for all transformer implementations to implement
type Transformer interface {
	TransformToDB(interface{}) interface{}
	TransformToRest(interface{}) interface{}
}

// RemittanceTransformer transforms remittance run data between rest and database models
type RemittanceTransformer struct{}

// TransformToDB transforms a remittance run rest model into a remittance run database model
func (rt RemittanceTransformer) TransformToDB(rest models.RemittanceRunRest) models.RemittanceRunDB {
	runData := models.RemittanceRunDataDB{
		MessageID:       rest.MessageID,
		Filename:        rest.Filename,
		CreatedAt:       rest.CreatedAt,
		RequestedCount:  rest.RequestedCount,
		IncludedCount:   rest.IncludedCount,
		ControlSum:      rest.ControlSum,
		TotalMinorUnits: rest.TotalMinorUnits,
		CollectionDate:  rest.CollectionDate,
		Kind:            rest.Kind,
		Links:           models.RemittanceLinksDB(rest.Links),
	}

	runData.SkippedInvoices = make([]models.SkippedInvoiceDB, 0, len(rest.SkippedInvoices))
	for _, skipped := range rest.SkippedInvoices {
		runData.SkippedInvoices = append(runData.SkippedInvoices, models.SkippedInvoiceDB(skipped))
	}

	return models.RemittanceRunDB{
		ID:   rest.ID,
		Data: runData,
	}
}

// TransformToRest transforms a remittance run database model into a remittance run rest model
func (rt RemittanceTransformer) TransformToRest(dbResource models.RemittanceRunDB) models.RemittanceRunRest {
	run := models.RemittanceRunRest{
		ID:              dbResource.ID,
		MessageID:       dbResource.Data.MessageID,
		Filename:        dbResource.Data.Filename,
		CreatedAt:       dbResource.Data.CreatedAt,
		RequestedCount:  dbResource.Data.RequestedCount,
		IncludedCount:   dbResource.Data.IncludedCount,
		ControlSum:      dbResource.Data.ControlSum,
		TotalMinorUnits: dbResource.Data.TotalMinorUnits,
		CollectionDate:  dbResource.Data.CollectionDate,
		Kind:            dbResource.Data.Kind,
		Links:           models.RemittanceLinksRest(dbResource.Data.Links),
	}

	run.SkippedInvoices = make([]models.SkippedInvoiceRest, 0, len(dbResource.Data.SkippedInvoices))
	for _, skipped := range dbResource.Data.SkippedInvoices {
		run.SkippedInvoices = append(run.SkippedInvoices, models.SkippedInvoiceRest(skipped))
	}

	return run
}
