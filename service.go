// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"net/http"
	"time"

	"github.com/Netcracker/qubership-mcp-validator-client/client"
	"github.com/Netcracker/qubership-mcp-validator-client/controller"
	"github.com/Netcracker/qubership-mcp-validator-client/security"
	"github.com/Netcracker/qubership-mcp-validator-client/service"
	"github.com/Netcracker/qubership-mcp-validator-client/ui"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func main() {
	readyChan := make(chan bool)
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		panic(err)
	}
	setupLogging(systemInfoService.GetLogLevel())

	presenter, err := ui.NewHTMLPresenter()
	if err != nil {
		panic(err)
	}

	validatorClient := client.NewValidatorClient(systemInfoService.GetValidatorUrl(), systemInfoService.GetValidatorTimeout())
	sessionStore := service.NewSessionStore(systemInfoService.GetSessionCacheSize(), systemInfoService.GetSessionTTL())
	fileAcquirer := service.NewFileAcquirer()
	uploadService := service.NewUploadService(service.NewFileValidator(), validatorClient)

	uploadController := controller.NewUploadController(fileAcquirer, uploadService, presenter)
	validationController := controller.NewValidationController(fileAcquirer, uploadService)
	healthController := controller.NewHealthController(readyChan)

	router := mux.NewRouter()
	router.HandleFunc("/", security.NoSession(uploadController.RedirectToUploadPage)).Methods(http.MethodGet)
	router.HandleFunc(controller.UploadPagePath, security.WithSession(sessionStore, uploadController.GetUploadPage)).Methods(http.MethodGet)
	router.HandleFunc(controller.UploadPagePath, security.WithSession(sessionStore, uploadController.UploadFile)).Methods(http.MethodPost)

	router.HandleFunc("/api/v1/state", security.WithSession(sessionStore, validationController.GetState)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/validate", security.WithSession(sessionStore, validationController.Validate)).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/report-schema", security.NoSession(validationController.GetReportSchema)).Methods(http.MethodGet)

	router.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)
	readyChan <- true
	close(readyChan)

	log.Infof("Validator endpoint = %s", validatorClient.Endpoint())

	srv := makeServer(systemInfoService, router)
	log.Fatalf("%v", srv.ListenAndServe())
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if level == "" {
		log.SetLevel(log.InfoLevel)
		return
	}
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %s, using info", level)
		parsedLevel = log.InfoLevel
	}
	log.SetLevel(parsedLevel)
}

func makeServer(systemInfoService service.SystemInfoService, r *mux.Router) *http.Server {
	listenAddr := systemInfoService.GetListenAddress()

	log.Infof("Listen addr = %s", listenAddr)

	var corsOptions []handlers.CORSOption

	corsOptions = append(corsOptions, handlers.AllowedHeaders([]string{"Connection", "Accept-Encoding", "Content-Encoding", "X-Requested-With", "Content-Type"}))

	allowedOrigin := systemInfoService.GetOriginAllowed()
	if allowedOrigin != "" {
		corsOptions = append(corsOptions, handlers.AllowedOrigins([]string{allowedOrigin}))
	}
	corsOptions = append(corsOptions, handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "OPTIONS"}))

	return &http.Server{
		Handler:     handlers.CompressHandler(handlers.CORS(corsOptions...)(r)),
		Addr:        listenAddr,
		ReadTimeout: 60 * time.Second,
	}
}
