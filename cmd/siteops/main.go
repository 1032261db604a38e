package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/sitetools/ops-core/conf"
	"github.com/sitetools/ops-core/handlers"
	"github.com/sitetools/ops-core/reports"
	"github.com/sitetools/ops-core/routing"
)

func main() {
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	appRoot, err := os.Getwd()
	if err != nil {
		log.Fatalf("[ERROR] resolving app root: %v", err)
	}

	core := &conf.Core{}
	if err = core.BaseInit(appRoot, rootCtx, rootCancel); err != nil {
		log.Fatalf("[ERROR] core init: %v", err)
	}
	core.PrepareJobScheduler()
	if err = core.PrepareKVDatabase(); err != nil {
		log.Fatalf("[ERROR] kv database: %v", err)
	}
	if err = core.PrepareSQLDatabase(); err != nil {
		log.Fatalf("[ERROR] sql database: %v", err)
	}
	if err = core.PrepareObjectStorage(); err != nil {
		log.Fatalf("[ERROR] object storage: %v", err)
	}
	if err = core.PrepareWebSessions(); err != nil {
		log.Fatalf("[ERROR] web sessions: %v", err)
	}
	if err = core.PrepareAuthServiceClient(); err != nil {
		log.Fatalf("[ERROR] auth service client: %v", err)
	}

	store, err := reports.NewStore(core.BackendSQLClient)
	if err != nil {
		log.Fatalf("[ERROR] reports store: %v", err)
	}

	handlerSet := handlers.NewSet(
		store,
		core.ObjectStorage,
		core.JobScheduler,
		core.WebSessionManager,
		core.AuthServiceClient,
	)
	router := &routing.BaseRouter{ServeMux: http.NewServeMux()}
	handlerSet.RegisterRoutes(router)
	core.PrepareWebService(core.Listen, router)

	if err = core.StartServices(); err != nil {
		log.Fatalf("[ERROR] starting services: %v", err)
	}
	if err = core.WaitServicesDone(); err != nil {
		log.Printf("[ERROR] service stopped with error: %v", err)
	}
	core.ResourceCleanUp()
	log.Printf("[INFO] %q shutdown complete", core.AppName)
}
