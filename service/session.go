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
	"sync"

	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/Netcracker/qubership-mcp-validator-client/view"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Ticket identifies one submission. Only the latest ticket of a session may change its state.
type Ticket struct {
	Generation   uint64
	SubmissionId string
}

// Session owns the UIState of one page session.
//
// Transitions:
//
//	Idle | Error | Results --Begin--> Loading --Complete--> Results
//	                                          --Fail------> Error
//	any --Reject--> Error (never passes through Loading)
//
// Finish must be called once per Begin, it guarantees the session leaves Loading.
type Session interface {
	Id() string
	State() view.UIState
	Begin(file view.FileInfo) Ticket
	Complete(ticket Ticket, report view.ValidationReport) bool
	Fail(ticket Ticket, message string) bool
	Finish(ticket Ticket)
	Reject(file view.FileInfo, message string)
}

func NewSession(id string) Session {
	return &sessionImpl{id: id, state: view.IdleState()}
}

type sessionImpl struct {
	mutex      sync.Mutex
	id         string
	generation uint64
	state      view.UIState
}

func (s *sessionImpl) Id() string {
	return s.id
}

func (s *sessionImpl) State() view.UIState {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state
}

func (s *sessionImpl) Begin(file view.FileInfo) Ticket {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.generation++
	ticket := Ticket{Generation: s.generation, SubmissionId: uuid.NewString()}
	// the previous report and error are dropped here
	s.state = view.UIState{
		Kind:         view.StateLoading,
		File:         &file,
		SubmissionId: ticket.SubmissionId,
	}
	return ticket
}

func (s *sessionImpl) Complete(ticket Ticket, report view.ValidationReport) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.isLatest(ticket) {
		log.Debugf("session %s: dropping stale report of submission %s", s.id, ticket.SubmissionId)
		return false
	}
	s.state = view.UIState{
		Kind:         view.StateResults,
		Report:       &report,
		File:         s.state.File,
		SubmissionId: ticket.SubmissionId,
	}
	return true
}

func (s *sessionImpl) Fail(ticket Ticket, message string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.isLatest(ticket) {
		log.Debugf("session %s: dropping stale failure of submission %s", s.id, ticket.SubmissionId)
		return false
	}
	s.fail(message)
	return true
}

func (s *sessionImpl) Finish(ticket Ticket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.isLatest(ticket) && s.state.Kind == view.StateLoading {
		log.Debugf("session %s: submission %s finished without an outcome", s.id, ticket.SubmissionId)
		s.fail(exception.ValidationFailedMsg)
	}
}

func (s *sessionImpl) Reject(file view.FileInfo, message string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	// a rejected selection is still the latest user action, in-flight completions become stale
	s.generation++
	s.state = view.UIState{
		Kind:    view.StateError,
		Message: message,
	}
	if file.Name != "" {
		s.state.File = &file
	}
}

func (s *sessionImpl) fail(message string) {
	if message == "" {
		message = exception.ValidationFailedMsg
	}
	s.state = view.UIState{
		Kind:         view.StateError,
		Message:      message,
		File:         s.state.File,
		SubmissionId: s.state.SubmissionId,
	}
}

func (s *sessionImpl) isLatest(ticket Ticket) bool {
	return ticket.Generation == s.generation
}
