package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func TestUnitParseAmount(t *testing.T) {

	Convey("Accepts amounts with at most two decimal places", t, func() {
		for _, amount := range []string{"125.50", "10.00", "0.5", "3", "99999.99"} {
			parsed, err := ParseAmount(amount)
			So(err, ShouldBeNil)
			So(parsed.String(), ShouldNotBeEmpty)
		}
	})

	Convey("Rejects malformed amounts", t, func() {
		for _, amount := range []string{"", "ten", "-5.00", "1.234", "1,50", "12."} {
			_, err := ParseAmount(amount)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "format incorrect")
		}
	})
}

func TestUnitNormalizeAmount(t *testing.T) {

	Convey("Exact conversion for two-decimal amounts", t, func() {
		So(NormalizeAmount(decimal.RequireFromString("125.50")), ShouldEqual, 12550)
		So(NormalizeAmount(decimal.RequireFromString("10.00")), ShouldEqual, 1000)
		So(NormalizeAmount(decimal.RequireFromString("0.01")), ShouldEqual, 1)
		So(NormalizeAmount(decimal.RequireFromString("0")), ShouldEqual, 0)
	})

	Convey("Truncates, never rounds, when the product is inexact", t, func() {
		So(NormalizeAmount(decimal.RequireFromString("125.505")), ShouldEqual, 12550)
		So(NormalizeAmount(decimal.RequireFromString("0.999")), ShouldEqual, 99)
	})
}

func TestUnitDerivedIdentifiers(t *testing.T) {

	Convey("Mandate reference is deterministic per customer", t, func() {
		So(MandateReference(7), ShouldEqual, "MANDATO-7")
		So(MandateReference(7), ShouldEqual, MandateReference(7))
	})

	Convey("End to end identifier is derived from the invoice", t, func() {
		So(EndToEndID(1), ShouldEqual, "FACTURA-1")
	})

	Convey("Remittance information names the invoice and the creditor", t, func() {
		So(RemittanceInformation(1, "Loviluz"), ShouldEqual, "Factura 1 - Loviluz")
	})
}

func TestUnitScheduleDates(t *testing.T) {
	clock := fakeClock{now: time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)}

	Convey("Collection date is lead days after generation", t, func() {
		So(CollectionDate(clock, 2), ShouldEqual, "2026-09-02")
		So(CollectionDate(clock, 0), ShouldEqual, "2026-08-31")
	})

	Convey("Mandate date prefers the stored signature date", t, func() {
		So(MandateDate(clock, "2020-01-15"), ShouldEqual, "2020-01-15")
		So(MandateDate(clock, ""), ShouldEqual, "2026-08-31")
	})
}

func TestUnitGenerateID(t *testing.T) {

	Convey("Generated message id is 20 digits", t, func() {
		id := generateID()
		So(id, ShouldHaveLength, 20)
		for _, r := range id {
			So(r >= '0' && r <= '9', ShouldBeTrue)
		}
	})
}
