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

package view

import (
	"encoding/json"

	"github.com/Netcracker/qubership-mcp-validator-client/exception"
)

type FailureKind string

const (
	FailurePlainMessage  FailureKind = "plain"
	FailureNestedMessage FailureKind = "nested"
	FailureUnstructured  FailureKind = "unstructured"
)

// UploadFailure is the decoded error payload of a failed validation request.
type UploadFailure struct {
	Kind FailureKind `json:"kind"`
	Text string      `json:"text,omitempty"`
}

func UnstructuredFailure() UploadFailure {
	return UploadFailure{Kind: FailureUnstructured}
}

type failureBody struct {
	Detail json.RawMessage `json:"detail"`
}

type nestedDetail struct {
	Msg json.RawMessage `json:"msg"`
}

// ParseUploadFailure decodes {"detail": "..."} and {"detail": {"msg": "..."}} bodies.
// Anything else, including malformed JSON, is unstructured.
func ParseUploadFailure(body []byte) UploadFailure {
	var fb failureBody
	if err := json.Unmarshal(body, &fb); err != nil || len(fb.Detail) == 0 {
		return UnstructuredFailure()
	}
	var plain string
	if err := json.Unmarshal(fb.Detail, &plain); err == nil {
		if plain == "" {
			return UnstructuredFailure()
		}
		return UploadFailure{Kind: FailurePlainMessage, Text: plain}
	}
	var nested nestedDetail
	if err := json.Unmarshal(fb.Detail, &nested); err != nil || len(nested.Msg) == 0 {
		return UnstructuredFailure()
	}
	var msg string
	if err := json.Unmarshal(nested.Msg, &msg); err != nil || msg == "" {
		return UnstructuredFailure()
	}
	return UploadFailure{Kind: FailureNestedMessage, Text: msg}
}

// Message is the user-facing text for the failure.
func (f UploadFailure) Message() string {
	switch f.Kind {
	case FailurePlainMessage, FailureNestedMessage:
		if f.Text != "" {
			return f.Text
		}
	}
	return exception.ValidationFailedMsg
}
