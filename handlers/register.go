package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/loviluz/remittance.api.loviluz.es/config"
	"github.com/loviluz/remittance.api.loviluz.es/dao"
	"github.com/loviluz/remittance.api.loviluz.es/service"
)

var remittanceService *service.RemittanceService

// Register defines the route mappings for the main router
func Register(mainRouter *mux.Router, cfg config.Config, daoService dao.DAO) {

	remittanceService = &service.RemittanceService{
		DAO:    daoService,
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	remittanceRouter := mainRouter.PathPrefix("/remittances").Subrouter()
	remittanceRouter.HandleFunc("", HandleCreateRemittance).Methods("POST").Name("create-remittance")
	remittanceRouter.HandleFunc("/{remittance_id}", HandleGetRemittanceRun).Methods("GET").Name("get-remittance")

	remittanceRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
