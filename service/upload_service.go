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

package service

import (
	"context"
	"runtime/debug"

	"github.com/Netcracker/qubership-mcp-validator-client/client"
	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/Netcracker/qubership-mcp-validator-client/utils"
	"github.com/Netcracker/qubership-mcp-validator-client/view"
	log "github.com/sirupsen/logrus"
)

type UploadService interface {
	// Upload validates the file and, if accepted, submits it and waits for the outcome.
	Upload(ctx context.Context, session Session, file view.SelectedFile) view.UIState
	// Start validates the file and, if accepted, submits it in background. It returns false on a local rejection.
	Start(session Session, file view.SelectedFile) bool
}

func NewUploadService(fileValidator FileValidator, validatorClient client.ValidatorClient) UploadService {
	return &uploadServiceImpl{fileValidator: fileValidator, validatorClient: validatorClient}
}

type uploadServiceImpl struct {
	fileValidator   FileValidator
	validatorClient client.ValidatorClient
}

func (u uploadServiceImpl) Upload(ctx context.Context, session Session, file view.SelectedFile) view.UIState {
	ticket, accepted := u.accept(session, file)
	if accepted {
		u.submit(ctx, session, ticket, file)
	}
	return session.State()
}

func (u uploadServiceImpl) Start(session Session, file view.SelectedFile) bool {
	ticket, accepted := u.accept(session, file)
	if !accepted {
		return false
	}
	// the request context ends with the handler, the submission must outlive it
	go u.submit(context.Background(), session, ticket, file)
	return true
}

func (u uploadServiceImpl) accept(session Session, file view.SelectedFile) (Ticket, bool) {
	info := view.FileInfo{Name: file.Name, Size: file.Size}
	if err := u.fileValidator.Validate(file); err != nil {
		log.Debugf("session %s: file %s rejected: %s", session.Id(), file.Name, err.Error())
		session.Reject(info, ErrorMessage(err))
		return Ticket{}, false
	}
	return session.Begin(info), true
}

func (u uploadServiceImpl) submit(ctx context.Context, session Session, ticket Ticket, file view.SelectedFile) {
	defer session.Finish(ticket)
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("Submission %s failed with panic: %v", ticket.SubmissionId, err)
			log.Tracef("Stacktrace: %v", string(debug.Stack()))
		}
	}()

	log.Infof("Submitting file %s (%d bytes, sha256 %s) to %s, submission %s",
		file.Name, file.Size, utils.CreateSHA256Hash(file.Content), u.validatorClient.Endpoint(), ticket.SubmissionId)

	report, err := u.validatorClient.Submit(ctx, file)
	if err != nil {
		log.Errorf("Submission %s failed: %s", ticket.SubmissionId, err.Error())
		session.Fail(ticket, ErrorMessage(err))
		return
	}
	log.Debugf("Submission %s: %d blocks found, %d valid, %d invalid",
		ticket.SubmissionId, report.BlocksFound, report.ValidBlocks, report.InvalidBlocks)
	session.Complete(ticket, *report)
}

// ErrorMessage is the user-facing text for any error of the pipeline. It is never empty.
func ErrorMessage(err error) string {
	switch e := err.(type) {
	case *client.UploadError:
		return e.Failure.Message()
	case *exception.CustomError:
		if msg := e.Error(); msg != "" {
			return msg
		}
	}
	return exception.ValidationFailedMsg
}
