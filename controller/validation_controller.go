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

package controller

import (
	"net/http"

	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/Netcracker/qubership-mcp-validator-client/service"
	"github.com/Netcracker/qubership-mcp-validator-client/sessctx"
	"github.com/Netcracker/qubership-mcp-validator-client/view"
	"github.com/invopop/jsonschema"
)

type ValidationController interface {
	GetState(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	GetReportSchema(w http.ResponseWriter, r *http.Request)
}

func NewValidationController(fileAcquirer service.FileAcquirer, uploadService service.UploadService) ValidationController {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	return &validationControllerImpl{
		fileAcquirer:  fileAcquirer,
		uploadService: uploadService,
		reportSchema:  reflector.Reflect(&view.ValidationReport{}),
	}
}

type validationControllerImpl struct {
	fileAcquirer  service.FileAcquirer
	uploadService service.UploadService
	reportSchema  *jsonschema.Schema
}

func (v validationControllerImpl) GetState(w http.ResponseWriter, r *http.Request) {
	session := sessctx.GetSession(r.Context())
	respondWithJson(w, http.StatusOK, service.Present(session.State()))
}

// Validate runs the whole pipeline synchronously. Rejections and validator failures are part of the returned view.
func (v validationControllerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	session := sessctx.GetSession(r.Context())

	file, err := v.fileAcquirer.FromRequest(w, r)
	if err != nil {
		if exception.IsPrecondition(err) {
			session.Reject(view.FileInfo{}, service.ErrorMessage(err))
			respondWithJson(w, http.StatusOK, service.Present(session.State()))
			return
		}
		respondWithError(w, "Failed to read uploaded file", err)
		return
	}

	state := v.uploadService.Upload(r.Context(), session, *file)
	respondWithJson(w, http.StatusOK, service.Present(state))
}

func (v validationControllerImpl) GetReportSchema(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, v.reportSchema)
}
