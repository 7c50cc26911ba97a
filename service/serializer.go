package service

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/loviluz/remittance.api.loviluz.es/models"
	"github.com/shopspring/decimal"
)

const (
	paymentMethodDirectDebit = "DD"
	serviceLevelSEPA         = "SEPA"
	localInstrumentCore      = "CORE"
	sequenceTypeRecurring    = "RCUR"
	chargeBearerServiceLevel = "SLEV"

	// Emitted as the debtor agent when the debtor BIC is not known; the
	// receiving bank derives the agent from the IBAN.
	agentNotProvided = "NOTPROVIDED"
)

// BuildDocument assembles the in-memory pain.008.001.02 message model for a
// batch: one group header and one payment information block holding a
// transaction per instruction.
func BuildDocument(batch *RemittanceBatch, messageID string, createdAt time.Time) *models.Pain008Document {
	transactions := make([]models.DirectDebitTransaction, 0, len(batch.Instructions))
	for _, instruction := range batch.Instructions {
		transactions = append(transactions, models.DirectDebitTransaction{
			PaymentID: models.PaymentIdentification{EndToEndID: instruction.EndToEndID},
			InstructedAmount: models.InstructedAmount{
				Currency: batch.Creditor.Currency,
				Value:    decimal.New(instruction.AmountMinorUnits, -2).StringFixed(2),
			},
			DirectDebitOperation: models.DirectDebitOperation{
				MandateRelatedInfo: models.MandateRelatedInfo{
					MandateID:       instruction.MandateID,
					DateOfSignature: instruction.MandateDate,
				},
			},
			DebtorAgent: models.Agent{
				FinancialInstitutionID: models.FinancialInstitutionID{
					Other: &models.GenericIdentification{ID: agentNotProvided},
				},
			},
			Debtor:        models.Party{Name: instruction.DebtorName},
			DebtorAccount: models.Account{ID: models.AccountID{IBAN: instruction.DebtorIBAN}},
			RemittanceInformation: models.RemittanceInformationBlock{
				Unstructured: instruction.RemittanceInfo,
			},
		})
	}

	paymentInformation := models.PaymentInformation{
		PaymentInfoID:        messageID,
		PaymentMethod:        paymentMethodDirectDebit,
		BatchBooking:         batch.Grouped,
		NumberOfTransactions: len(batch.Instructions),
		ControlSum:           batch.ControlSum(),
		PaymentTypeInformation: models.PaymentTypeInformation{
			ServiceLevel:    models.CodeChoice{Code: serviceLevelSEPA},
			LocalInstrument: models.CodeChoice{Code: localInstrumentCore},
			SequenceType:    sequenceTypeRecurring,
		},
		RequestedCollectionDate: batch.CollectionDate,
		Creditor:                models.Party{Name: batch.Creditor.Name},
		CreditorAccount:         models.Account{ID: models.AccountID{IBAN: batch.Creditor.IBAN}},
		CreditorAgent: models.Agent{
			FinancialInstitutionID: models.FinancialInstitutionID{BIC: batch.Creditor.BIC},
		},
		ChargeBearer: chargeBearerServiceLevel,
		CreditorSchemeID: models.CreditorSchemeID{
			ID: models.PartyIdentification{
				PrivateID: models.PersonIdentification{
					Other: models.GenericIdentification{
						ID:         batch.Creditor.CreditorID,
						SchemeName: &models.SchemeName{Proprietary: serviceLevelSEPA},
					},
				},
			},
		},
		Transactions: transactions,
	}

	return &models.Pain008Document{
		Xmlns: models.Pain008Namespace,
		DirectDebitInitiation: models.CustomerDirectDebitInitiation{
			GroupHeader: models.GroupHeader{
				MessageID:            messageID,
				CreationDateTime:     createdAt.Format(dateTimeFormat),
				NumberOfTransactions: len(batch.Instructions),
				ControlSum:           batch.ControlSum(),
				InitiatingParty:      models.Party{Name: batch.Creditor.Name},
			},
			PaymentInformation: []models.PaymentInformation{paymentInformation},
		},
	}
}

// SerializeBatch renders a batch into a complete pain.008.001.02 document.
// The declared totals are asserted against the instruction list before any
// bytes are emitted; under strict schema validation a structurally invalid
// document is rejected with every violation listed.
func SerializeBatch(batch *RemittanceBatch, messageID string, createdAt time.Time, opts Options) ([]byte, error) {
	document := BuildDocument(batch, messageID, createdAt)

	if err := checkDeclaredTotals(document, batch); err != nil {
		return nil, err
	}

	if opts.StrictSchemaValidation {
		if violations := ValidateDocument(document); len(violations) > 0 {
			return nil, &SchemaValidationError{Violations: violations}
		}
	}

	output, err := xml.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling document: [%v]", err)
	}

	return append([]byte(xml.Header), output...), nil
}

// checkDeclaredTotals asserts that the control sum and transaction count
// declared in the group header match the instructions serialized. A
// conformant reader rejects the file on any mismatch.
func checkDeclaredTotals(document *models.Pain008Document, batch *RemittanceBatch) error {
	header := document.DirectDebitInitiation.GroupHeader
	if header.NumberOfTransactions != len(batch.Instructions) {
		return fmt.Errorf("declared transaction count [%d] does not match instruction count [%d]", header.NumberOfTransactions, len(batch.Instructions))
	}
	if header.ControlSum != batch.ControlSum() {
		return fmt.Errorf("declared control sum [%s] does not match instruction total [%s]", header.ControlSum, batch.ControlSum())
	}
	return nil
}

// ValidateDocument checks the assembled document against the structural rules
// of the message standard: required elements and length limits via the model
// tags, plus checksum validation of the banking identifiers.
func ValidateDocument(document *models.Pain008Document) []string {
	var violations []string

	validate := validator.New()
	if err := validate.Struct(document); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldError := range validationErrors {
				violations = append(violations, fmt.Sprintf("%s failed on the '%s' rule", fieldError.Namespace(), fieldError.Tag()))
			}
		} else {
			violations = append(violations, err.Error())
		}
	}

	for _, block := range document.DirectDebitInitiation.PaymentInformation {
		if iban := block.CreditorAccount.ID.IBAN; iban != "" && !ValidIBAN(iban) {
			violations = append(violations, fmt.Sprintf("creditor IBAN [%s] fails the mod-97 check", iban))
		}
		if creditorID := block.CreditorSchemeID.ID.PrivateID.Other.ID; creditorID != "" && !ValidCreditorID(creditorID) {
			violations = append(violations, fmt.Sprintf("creditor identifier [%s] fails the mod-97 check", creditorID))
		}
		for _, transaction := range block.Transactions {
			if iban := transaction.DebtorAccount.ID.IBAN; iban != "" && !ValidIBAN(iban) {
				violations = append(violations, fmt.Sprintf("debtor IBAN [%s] fails the mod-97 check", iban))
			}
		}
	}

	return violations
}
