package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/loviluz/remittance.api.loviluz.es/config"
	"github.com/loviluz/remittance.api.loviluz.es/dao"
	"github.com/loviluz/remittance.api.loviluz.es/fixtures"
	"github.com/loviluz/remittance.api.loviluz.es/models"
	. "github.com/smartystreets/goconvey/convey"
)

func testService(mockDao dao.DAO) *RemittanceService {
	cfg, _ := config.Get()
	return &RemittanceService{
		DAO:    mockDao,
		Config: *cfg,
		Clock:  fakeClock{now: time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)},
	}
}

func TestUnitGenerateRemittance(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	service := testService(mockDao)

	Convey("Single invoice produces one transaction with the supplied IBAN", t, func() {
		mockDao.EXPECT().CreateRemittanceRunResource(gomock.Any()).Return(nil)

		// distinct fallback so the assertion below can tell the two apart
		opts := testOptions()
		opts.FallbackIBAN = "ES9121000418450200051332"

		run, output, responseType, err := service.GenerateRemittance(
			[]models.InvoiceResourceRest{fixtures.GetInvoice()}, fixtures.GetCreditor(), opts)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(run.RequestedCount, ShouldEqual, 1)
		So(run.IncludedCount, ShouldEqual, 1)
		So(run.ControlSum, ShouldEqual, "125.50")
		So(run.TotalMinorUnits, ShouldEqual, 12550)
		So(run.Filename, ShouldEqual, "Remesa_2026-08-31.xml")
		So(run.CollectionDate, ShouldEqual, "2026-09-02")
		So(run.SkippedInvoices, ShouldBeEmpty)
		So(run.Kind, ShouldEqual, fixtures.RemittanceRunKind)
		So(run.Links.Self, ShouldEqual, "remittances/"+run.ID)

		So(string(output), ShouldContainSubstring, "MANDATO-7")
		So(string(output), ShouldContainSubstring, fixtures.AcmeIBAN)
		So(string(output), ShouldNotContainSubstring, opts.FallbackIBAN)
	})

	Convey("Missing customer account uses the fallback under the default policy", t, func() {
		mockDao.EXPECT().CreateRemittanceRunResource(gomock.Any()).Return(nil)

		run, output, responseType, err := service.GenerateRemittance(
			[]models.InvoiceResourceRest{fixtures.GetInvoiceWithoutIBAN()}, fixtures.GetCreditor(), testOptions())

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(run.IncludedCount, ShouldEqual, 1)
		So(string(output), ShouldContainSubstring, testFallbackIBAN)
	})

	Convey("Empty invoice selection fails with the empty batch error and no bytes", t, func() {
		run, output, responseType, err := service.GenerateRemittance(
			[]models.InvoiceResourceRest{}, fixtures.GetCreditor(), testOptions())

		So(run, ShouldBeNil)
		So(output, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldEqual, ErrEmptyBatch)
	})

	Convey("Invalid creditor aborts before any instruction is processed", t, func() {
		creditor := fixtures.GetCreditor()
		creditor.Name = ""
		creditor.IBAN = ""

		run, output, responseType, err := service.GenerateRemittance(
			[]models.InvoiceResourceRest{fixtures.GetInvoice()}, creditor, testOptions())

		So(run, ShouldBeNil)
		So(output, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)

		var creditorErr *InvalidCreditorError
		So(err, ShouldHaveSameTypeAs, creditorErr)
		So(err.Error(), ShouldContainSubstring, "name")
		So(err.Error(), ShouldContainSubstring, "iban")
	})

	Convey("Strict validation failure emits no bytes", t, func() {
		creditor := fixtures.GetChecksumValidCreditor()
		creditor.CreditorID = ""

		opts := testOptions()
		opts.StrictSchemaValidation = true

		run, output, responseType, err := service.GenerateRemittance(
			[]models.InvoiceResourceRest{fixtures.GetInvoice()}, creditor, opts)

		So(run, ShouldBeNil)
		So(output, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)

		var schemaErr *SchemaValidationError
		So(err, ShouldHaveSameTypeAs, schemaErr)
	})

	Convey("Skipped invoices are reported on the run resource", t, func() {
		mockDao.EXPECT().CreateRemittanceRunResource(gomock.Any()).Return(nil)

		badInvoice := fixtures.GetInvoice()
		badInvoice.ID = 3
		badInvoice.Amount = "ten"

		run, _, responseType, err := service.GenerateRemittance(
			[]models.InvoiceResourceRest{fixtures.GetInvoice(), badInvoice}, fixtures.GetCreditor(), testOptions())

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(run.RequestedCount, ShouldEqual, 2)
		So(run.IncludedCount, ShouldEqual, 1)
		So(run.SkippedInvoices, ShouldHaveLength, 1)
		So(run.SkippedInvoices[0].InvoiceID, ShouldEqual, 3)
	})

	Convey("A failing audit write does not void the generated file", t, func() {
		mockDao.EXPECT().CreateRemittanceRunResource(gomock.Any()).Return(fmt.Errorf("error writing to db"))

		run, output, responseType, err := service.GenerateRemittance(
			[]models.InvoiceResourceRest{fixtures.GetInvoice()}, fixtures.GetCreditor(), testOptions())

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(run, ShouldNotBeNil)
		So(output, ShouldNotBeEmpty)
	})
}

func TestUnitGetRemittanceRun(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	service := testService(mockDao)

	Convey("Stored run is returned as a rest resource", t, func() {
		mockDao.EXPECT().GetRemittanceRunResource("123").Return(fixtures.GetRemittanceRun("123"), nil)

		run, responseType, err := service.GetRemittanceRun("123")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(run.ID, ShouldEqual, "123")
		So(run.IncludedCount, ShouldEqual, 1)
		So(run.SkippedInvoices, ShouldHaveLength, 1)
	})

	Convey("Unknown run is not found", t, func() {
		mockDao.EXPECT().GetRemittanceRunResource("999").Return(nil, nil)

		run, responseType, err := service.GetRemittanceRun("999")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, NotFound)
		So(run, ShouldBeNil)
	})

	Convey("DB error surfaces as an error response", t, func() {
		mockDao.EXPECT().GetRemittanceRunResource("123").Return(nil, fmt.Errorf("error reading from db"))

		run, responseType, err := service.GetRemittanceRun("123")

		So(run, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error getting remittance run from db")
	})
}
