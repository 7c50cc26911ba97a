package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/loviluz/remittance.api.loviluz.es/config"
	"github.com/loviluz/remittance.api.loviluz.es/dao"
	"github.com/loviluz/remittance.api.loviluz.es/handlers"
)

func main() {
	log.Namespace = "remittance.api.loviluz.es"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	daoService := dao.NewDAOService(cfg)

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg, daoService)

	log.Info("Starting remittance.api.loviluz.es service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting remittance.api.loviluz.es service")
}
