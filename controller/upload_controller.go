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
	"bytes"
	"net/http"

	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/Netcracker/qubership-mcp-validator-client/service"
	"github.com/Netcracker/qubership-mcp-validator-client/sessctx"
	"github.com/Netcracker/qubership-mcp-validator-client/ui"
	"github.com/Netcracker/qubership-mcp-validator-client/view"
	log "github.com/sirupsen/logrus"
)

const UploadPagePath = "/upload"

type UploadController interface {
	RedirectToUploadPage(w http.ResponseWriter, r *http.Request)
	GetUploadPage(w http.ResponseWriter, r *http.Request)
	UploadFile(w http.ResponseWriter, r *http.Request)
}

func NewUploadController(fileAcquirer service.FileAcquirer, uploadService service.UploadService, presenter ui.Presenter) UploadController {
	return &uploadControllerImpl{
		fileAcquirer:  fileAcquirer,
		uploadService: uploadService,
		presenter:     presenter,
	}
}

type uploadControllerImpl struct {
	fileAcquirer  service.FileAcquirer
	uploadService service.UploadService
	presenter     ui.Presenter
}

func (u uploadControllerImpl) RedirectToUploadPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, UploadPagePath, http.StatusFound)
}

func (u uploadControllerImpl) GetUploadPage(w http.ResponseWriter, r *http.Request) {
	session := sessctx.GetSession(r.Context())
	page := service.Present(session.State())

	var buf bytes.Buffer
	if err := u.presenter.Render(&buf, page); err != nil {
		respondWithError(w, "Failed to render upload page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// UploadFile handles both the picker form and dropped files. The outcome is shown by the upload page.
func (u uploadControllerImpl) UploadFile(w http.ResponseWriter, r *http.Request) {
	session := sessctx.GetSession(r.Context())

	file, err := u.fileAcquirer.FromRequest(w, r)
	if err != nil {
		if isCode(err, exception.NoFileSelected) {
			log.Debugf("session %s: upload without a file", session.Id())
		} else {
			log.Debugf("session %s: failed to acquire file: %s", session.Id(), err.Error())
			session.Reject(view.FileInfo{}, service.ErrorMessage(err))
		}
		http.Redirect(w, r, UploadPagePath, http.StatusSeeOther)
		return
	}

	if u.uploadService.Start(session, *file) {
		log.Debugf("session %s: submission of %s started", session.Id(), file.Name)
	}
	http.Redirect(w, r, UploadPagePath, http.StatusSeeOther)
}
