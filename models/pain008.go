package models

import "encoding/xml"

// Pain008Namespace is the XML namespace of the pain.008.001.02 message standard
const Pain008Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.008.001.02"

// Pain008Document is the overall model for a customer direct debit initiation file
type Pain008Document struct {
	XMLName               xml.Name                      `xml:"Document"`
	Xmlns                 string                        `xml:"xmlns,attr"`
	DirectDebitInitiation CustomerDirectDebitInitiation `xml:"CstmrDrctDbtInitn" validate:"required"`
}

// CustomerDirectDebitInitiation holds one group header and the payment
// information blocks of the message
type CustomerDirectDebitInitiation struct {
	GroupHeader        GroupHeader          `xml:"GrpHdr" validate:"required"`
	PaymentInformation []PaymentInformation `xml:"PmtInf" validate:"required,min=1,dive"`
}

// GroupHeader declares the message identifier, creation time, transaction
// count and control sum checked by the receiving bank
type GroupHeader struct {
	MessageID            string `xml:"MsgId"    validate:"required,max=35"`
	CreationDateTime     string `xml:"CreDtTm"  validate:"required"`
	NumberOfTransactions int    `xml:"NbOfTxs"  validate:"required"`
	ControlSum           string `xml:"CtrlSum"  validate:"required"`
	InitiatingParty      Party  `xml:"InitgPty" validate:"required"`
}

// Party is a named party in the message
type Party struct {
	Name string `xml:"Nm" validate:"required,max=70"`
}

// PaymentInformation is one batch of direct debit transactions collected for a
// single creditor on a single date
type PaymentInformation struct {
	PaymentInfoID           string                   `xml:"PmtInfId"     validate:"required,max=35"`
	PaymentMethod           string                   `xml:"PmtMtd"       validate:"required,eq=DD"`
	BatchBooking            bool                     `xml:"BtchBookg"`
	NumberOfTransactions    int                      `xml:"NbOfTxs"      validate:"required"`
	ControlSum              string                   `xml:"CtrlSum"      validate:"required"`
	PaymentTypeInformation  PaymentTypeInformation   `xml:"PmtTpInf"     validate:"required"`
	RequestedCollectionDate string                   `xml:"ReqdColltnDt" validate:"required"`
	Creditor                Party                    `xml:"Cdtr"         validate:"required"`
	CreditorAccount         Account                  `xml:"CdtrAcct"     validate:"required"`
	CreditorAgent           Agent                    `xml:"CdtrAgt"      validate:"required"`
	ChargeBearer            string                   `xml:"ChrgBr"       validate:"required"`
	CreditorSchemeID        CreditorSchemeID         `xml:"CdtrSchmeId"  validate:"required"`
	Transactions            []DirectDebitTransaction `xml:"DrctDbtTxInf" validate:"required,min=1,dive"`
}

// PaymentTypeInformation carries the scheme, instrument and sequence type codes
type PaymentTypeInformation struct {
	ServiceLevel    CodeChoice `xml:"SvcLvl"`
	LocalInstrument CodeChoice `xml:"LclInstrm"`
	SequenceType    string     `xml:"SeqTp" validate:"required"`
}

// CodeChoice wraps an ISO code element
type CodeChoice struct {
	Code string `xml:"Cd" validate:"required"`
}

// Account addresses an account by IBAN
type Account struct {
	ID AccountID `xml:"Id" validate:"required"`
}

// AccountID is the identification choice of an account
type AccountID struct {
	IBAN string `xml:"IBAN" validate:"required"`
}

// Agent addresses a financial institution
type Agent struct {
	FinancialInstitutionID FinancialInstitutionID `xml:"FinInstnId" validate:"required"`
}

// FinancialInstitutionID identifies an institution by BIC, or by a generic
// identifier when the BIC is not known
type FinancialInstitutionID struct {
	BIC   string                 `xml:"BIC,omitempty"`
	Other *GenericIdentification `xml:"Othr,omitempty"`
}

// CreditorSchemeID carries the SEPA creditor identifier
type CreditorSchemeID struct {
	ID PartyIdentification `xml:"Id" validate:"required"`
}

// PartyIdentification is the private identification wrapper of the creditor scheme
type PartyIdentification struct {
	PrivateID PersonIdentification `xml:"PrvtId" validate:"required"`
}

// PersonIdentification wraps the generic identification of a person
type PersonIdentification struct {
	Other GenericIdentification `xml:"Othr" validate:"required"`
}

// GenericIdentification is an identifier plus its scheme name
type GenericIdentification struct {
	ID         string      `xml:"Id" validate:"required"`
	SchemeName *SchemeName `xml:"SchmeNm,omitempty"`
}

// SchemeName names the proprietary scheme of an identifier
type SchemeName struct {
	Proprietary string `xml:"Prtry"`
}

// DirectDebitTransaction is one collection from one debtor account
type DirectDebitTransaction struct {
	PaymentID             PaymentIdentification      `xml:"PmtId"    validate:"required"`
	InstructedAmount      InstructedAmount           `xml:"InstdAmt" validate:"required"`
	DirectDebitOperation  DirectDebitOperation       `xml:"DrctDbtTx" validate:"required"`
	DebtorAgent           Agent                      `xml:"DbtrAgt"  validate:"required"`
	Debtor                Party                      `xml:"Dbtr"     validate:"required"`
	DebtorAccount         Account                    `xml:"DbtrAcct" validate:"required"`
	RemittanceInformation RemittanceInformationBlock `xml:"RmtInf"`
}

// PaymentIdentification carries the end to end identifier of a transaction
type PaymentIdentification struct {
	EndToEndID string `xml:"EndToEndId" validate:"required,max=35"`
}

// InstructedAmount is a currency-qualified amount in major units
type InstructedAmount struct {
	Currency string `xml:"Ccy,attr"  validate:"required"`
	Value    string `xml:",chardata" validate:"required"`
}

// DirectDebitOperation holds the mandate the collection is authorized by
type DirectDebitOperation struct {
	MandateRelatedInfo MandateRelatedInfo `xml:"MndtRltdInf" validate:"required"`
}

// MandateRelatedInfo is the mandate reference and signature date
type MandateRelatedInfo struct {
	MandateID       string `xml:"MndtId"    validate:"required,max=35"`
	DateOfSignature string `xml:"DtOfSgntr" validate:"required"`
}

// RemittanceInformationBlock is the free text shown on the debtor statement
type RemittanceInformationBlock struct {
	Unstructured string `xml:"Ustrd" validate:"max=140"`
}
