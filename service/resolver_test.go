package service

import (
	"testing"

	"github.com/loviluz/remittance.api.loviluz.es/config"
	. "github.com/smartystreets/goconvey/convey"
)

const testFallbackIBAN = "ES6000491500051234567892"

func substituteOptions() Options {
	return Options{
		AccountFallbackPolicy: config.FallbackPolicySubstitute,
		FallbackIBAN:          testFallbackIBAN,
	}
}

func TestUnitResolveDebtorAccount(t *testing.T) {

	Convey("Stored identifier of plausible length is used as-is", t, func() {
		// no checksum or country-format validation at this stage
		resolution, err := ResolveDebtorAccount("NOTANIBANBUTLONGENOUGH", substituteOptions())
		So(err, ShouldBeNil)
		So(resolution.IBAN, ShouldEqual, "NOTANIBANBUTLONGENOUGH")
		So(resolution.Substituted, ShouldBeFalse)
		So(resolution.Reason, ShouldBeEmpty)
	})

	Convey("Missing identifier is substituted with the fallback", t, func() {
		resolution, err := ResolveDebtorAccount("", substituteOptions())
		So(err, ShouldBeNil)
		So(resolution.IBAN, ShouldEqual, testFallbackIBAN)
		So(resolution.Substituted, ShouldBeTrue)
		So(resolution.Reason, ShouldContainSubstring, "no stored bank account identifier")
	})

	Convey("Implausibly short identifier is substituted with the fallback", t, func() {
		resolution, err := ResolveDebtorAccount("ES12", substituteOptions())
		So(err, ShouldBeNil)
		So(resolution.IBAN, ShouldEqual, testFallbackIBAN)
		So(resolution.Substituted, ShouldBeTrue)
		So(resolution.Reason, ShouldContainSubstring, "ES12")
	})

	Convey("Reject policy returns an account resolution error", t, func() {
		opts := substituteOptions()
		opts.AccountFallbackPolicy = config.FallbackPolicyReject

		resolution, err := ResolveDebtorAccount("", opts)
		So(resolution.IBAN, ShouldBeEmpty)

		var resolutionErr *AccountResolutionError
		So(err, ShouldNotBeNil)
		So(err, ShouldHaveSameTypeAs, resolutionErr)
	})

	Convey("Resolution is a pure function of its input", t, func() {
		first, err1 := ResolveDebtorAccount("ES12", substituteOptions())
		second, err2 := ResolveDebtorAccount("ES12", substituteOptions())
		So(err1, ShouldBeNil)
		So(err2, ShouldBeNil)
		So(first, ShouldResemble, second)
	})
}
