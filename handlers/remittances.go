package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/loviluz/remittance.api.loviluz.es/models"
	"github.com/loviluz/remittance.api.loviluz.es/service"
	"github.com/loviluz/remittance.api.loviluz.es/utils"
)

// HandleCreateRemittance generates a SEPA direct debit file for the supplied
// invoices and returns it as an attachment
func HandleCreateRemittance(w http.ResponseWriter, req *http.Request) {

	log.InfoR(req, "start POST request for new remittance")

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		m := utils.NewMessageResponse("request body empty")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingRemittanceRequest models.IncomingRemittanceRequest
	err := requestDecoder.Decode(&incomingRemittanceRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		m := utils.NewMessageResponse("request body invalid")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	// An empty invoice selection is rejected here, before the generator runs
	v := validator.New()
	err = v.Struct(incomingRemittanceRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create remittance: [%v]", err))
		m := utils.NewMessageResponse("no invoices selected for remittance")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	creditor := creditorFromRequest(incomingRemittanceRequest)
	options := service.OptionsFromConfig(&remittanceService.Config)

	run, output, responseType, err := remittanceService.GenerateRemittance(incomingRemittanceRequest.Invoices, creditor, options)
	if err != nil {
		log.ErrorR(req, err)

		var schemaErr *service.SchemaValidationError
		switch {
		case errors.As(err, &schemaErr):
			m := utils.NewMessageResponse(err.Error())
			utils.WriteJSONWithStatus(w, req, m, http.StatusUnprocessableEntity)
		case responseType == service.InvalidData:
			m := utils.NewMessageResponse(err.Error())
			utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		default:
			m := utils.NewMessageResponse("error generating remittance")
			utils.WriteJSONWithStatus(w, req, m, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", run.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(output)))
	w.Header().Set("X-Remittance-Id", run.ID)
	w.WriteHeader(http.StatusCreated)

	if _, err = w.Write(output); err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request for new remittance", log.Data{
		"remittance_id":   run.ID,
		"requested_count": run.RequestedCount,
		"included_count":  run.IncludedCount,
		"status":          http.StatusCreated,
	})
}

// HandleGetRemittanceRun retrieves the audit record of one remittance run
func HandleGetRemittanceRun(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["remittance_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("remittance id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	run, responseType, err := remittanceService.GetRemittanceRun(id)
	if err != nil {
		log.ErrorR(req, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if responseType == service.NotFound {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(run)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful GET request for remittance run", log.Data{"remittance_id": id, "status": http.StatusOK})
}

// creditorFromRequest returns the creditor identity carried by the request,
// or the configured one when the request carries none
func creditorFromRequest(incomingRequest models.IncomingRemittanceRequest) models.CreditorIdentityRest {
	if incomingRequest.Creditor != nil {
		return *incomingRequest.Creditor
	}

	cfg := remittanceService.Config
	return models.CreditorIdentityRest{
		Name:       cfg.CreditorName,
		IBAN:       cfg.CreditorIBAN,
		BIC:        cfg.CreditorBIC,
		CreditorID: cfg.CreditorID,
	}
}
