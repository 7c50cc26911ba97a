package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	mandatePrefix  = "MANDATO-"
	endToEndPrefix = "FACTURA-"
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02T15:04:05"
)

var amountFormat = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// Clock supplies the generation time. Injected so that mandate and collection
// dates are controlled by the caller instead of read from the wall clock
// inline.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// ParseAmount parses a decimal amount expressed in currency units with at
// most two decimal places
func ParseAmount(amount string) (decimal.Decimal, error) {
	if !amountFormat.MatchString(amount) {
		return decimal.Decimal{}, fmt.Errorf("amount [%s] format incorrect", amount)
	}
	return decimal.NewFromString(amount)
}

// NormalizeAmount converts an amount in currency units to integer minor
// units. The product is truncated rather than rounded; downstream
// reconciliation was built against the truncating behaviour. Exact for
// amounts with at most two decimal places.
func NormalizeAmount(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Truncate(0).IntPart()
}

// MandateReference derives the deterministic mandate identifier for a customer
func MandateReference(customerID int64) string {
	return fmt.Sprintf("%s%d", mandatePrefix, customerID)
}

// EndToEndID derives the end to end identifier for an invoice
func EndToEndID(invoiceID int64) string {
	return fmt.Sprintf("%s%d", endToEndPrefix, invoiceID)
}

// RemittanceInformation derives the statement text shown to the debtor
func RemittanceInformation(invoiceID int64, creditorName string) string {
	return fmt.Sprintf("Factura %d - %s", invoiceID, creditorName)
}

// CollectionDate returns the requested collection date, leadDays after the
// generation date
func CollectionDate(clock Clock, leadDays int) string {
	return clock.Now().AddDate(0, 0, leadDays).Format(dateFormat)
}

// MandateDate returns the stored mandate signature date when the CRM holds
// one, and the generation date otherwise
func MandateDate(clock Clock, stored string) string {
	if stored != "" {
		return stored
	}
	return clock.Now().Format(dateFormat)
}

// Generates a string of 20 numbers made up of 7 random numbers, followed by 13 numbers derived from the current time
func generateID() string {
	ranNumber := fmt.Sprintf("%07d", rand.Intn(9999999))
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return ranNumber + millis
}
