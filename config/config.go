// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Fallback and failure policy values accepted by the remittance generator.
const (
	FallbackPolicySubstitute = "substitute"
	FallbackPolicyReject     = "reject"
	FailurePolicySkip        = "skip"
	FailurePolicyAbort       = "abort"
)

// Config defines the configuration options for this service.
type Config struct {
	BindAddr   string `env:"BIND_ADDR"          flag:"bind-addr"          flagDesc:"Bind address"`
	Collection string `env:"MONGODB_COLLECTION" flag:"mongodb-collection" flagDesc:"MongoDB collection for data"`
	Database   string `env:"MONGODB_DATABASE"   flag:"mongodb-database"   flagDesc:"MongoDB database for data"`
	MongoDBURL string `env:"MONGODB_URL"        flag:"mongodb-url"        flagDesc:"MongoDB server URL"`

	// Creditor identity stamped on every remittance unless the request
	// supplies its own.
	CreditorName string `env:"CREDITOR_NAME" flag:"creditor-name" flagDesc:"Creditor display name"`
	CreditorIBAN string `env:"CREDITOR_IBAN" flag:"creditor-iban" flagDesc:"Creditor IBAN"`
	CreditorBIC  string `env:"CREDITOR_BIC"  flag:"creditor-bic"  flagDesc:"Creditor BIC"`
	CreditorID   string `env:"CREDITOR_ID"   flag:"creditor-id"   flagDesc:"SEPA creditor identifier"`

	// FallbackIBAN is substituted for a missing or implausible customer IBAN
	// when AccountFallbackPolicy is "substitute".
	FallbackIBAN           string `env:"FALLBACK_IBAN"            flag:"fallback-iban"            flagDesc:"IBAN substituted when a customer account is missing"`
	AccountFallbackPolicy  string `env:"ACCOUNT_FALLBACK_POLICY"  flag:"account-fallback-policy"  flagDesc:"Missing account policy: substitute or reject"`
	FailurePolicy          string `env:"FAILURE_POLICY"           flag:"failure-policy"           flagDesc:"Instruction failure policy: skip or abort"`
	StrictSchemaValidation bool   `env:"STRICT_SCHEMA_VALIDATION" flag:"strict-schema-validation" flagDesc:"Validate the assembled document before emitting it"`
	CollectionLeadDays     int    `env:"COLLECTION_LEAD_DAYS"     flag:"collection-lead-days"     flagDesc:"Days between generation and requested collection date"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:              "remittances",
		Collection:            "remittance-runs",
		FallbackIBAN:          "ES6000491500051234567892",
		AccountFallbackPolicy: FallbackPolicySubstitute,
		FailurePolicy:         FailurePolicySkip,
		CollectionLeadDays:    2,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
