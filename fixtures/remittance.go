package fixtures

import "github.com/loviluz/remittance.api.loviluz.es/models"

var AcmeIBAN = "ES6000491500051234567892"
var RemittanceRunKind = "remittance-run#remittance-run"

// GetCreditor returns the creditor identity used across the unit tests
func GetCreditor() models.CreditorIdentityRest {
	return models.CreditorIdentityRest{
		Name:       "Loviluz",
		IBAN:       "ES4521000418450200051332",
		BIC:        "CAIXESBBXXX",
		CreditorID: "ES02000G12345678",
	}
}

// GetChecksumValidCreditor returns a creditor identity whose IBAN and
// creditor identifier pass the mod-97 checks, for strict validation tests
func GetChecksumValidCreditor() models.CreditorIdentityRest {
	return models.CreditorIdentityRest{
		Name:       "Loviluz",
		IBAN:       "ES9121000418450200051332",
		BIC:        "CAIXESBBXXX",
		CreditorID: "ES26000G12345678",
	}
}

// GetInvoice returns one invoice for a customer with a stored IBAN
func GetInvoice() models.InvoiceResourceRest {
	return models.InvoiceResourceRest{
		ID:     1,
		Amount: "125.50",
		Customer: models.CustomerResourceRest{
			ID:   7,
			Name: "Acme",
			IBAN: AcmeIBAN,
		},
	}
}

// GetInvoiceWithoutIBAN returns one invoice for a customer with no stored
// bank account identifier
func GetInvoiceWithoutIBAN() models.InvoiceResourceRest {
	return models.InvoiceResourceRest{
		ID:     2,
		Amount: "10.00",
		Customer: models.CustomerResourceRest{
			ID:   8,
			Name: "Industrias Meridional",
		},
	}
}

// GetRemittanceRun returns a stored remittance run database resource
func GetRemittanceRun(id string) *models.RemittanceRunDB {
	return &models.RemittanceRunDB{
		ID: id,
		Data: models.RemittanceRunDataDB{
			MessageID:       id,
			Filename:        "Remesa_2026-08-31.xml",
			RequestedCount:  2,
			IncludedCount:   1,
			ControlSum:      "125.50",
			TotalMinorUnits: 12550,
			CollectionDate:  "2026-09-02",
			Kind:            RemittanceRunKind,
			Links:           models.RemittanceLinksDB{Self: "remittances/" + id},
			SkippedInvoices: []models.SkippedInvoiceDB{
				{InvoiceID: 2, CustomerID: 8, Reason: "amount [ten] format incorrect"},
			},
		},
	}
}
