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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUploadFailure(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantKind    FailureKind
		wantMessage string
	}{
		{
			name:        "plain detail string is used verbatim",
			body:        `{"detail": "No valid MCP JSON blocks found"}`,
			wantKind:    FailurePlainMessage,
			wantMessage: "No valid MCP JSON blocks found",
		},
		{
			name:        "nested detail message",
			body:        `{"detail": {"msg": "field required", "loc": ["body", "file"]}}`,
			wantKind:    FailureNestedMessage,
			wantMessage: "field required",
		},
		{
			name:        "nested detail without msg",
			body:        `{"detail": {"loc": ["body"]}}`,
			wantKind:    FailureUnstructured,
			wantMessage: "An error occurred during validation",
		},
		{
			name:        "nested msg that is not a string",
			body:        `{"detail": {"msg": 42}}`,
			wantKind:    FailureUnstructured,
			wantMessage: "An error occurred during validation",
		},
		{
			name:        "detail list",
			body:        `{"detail": [{"msg": "a"}]}`,
			wantKind:    FailureUnstructured,
			wantMessage: "An error occurred during validation",
		},
		{
			name:        "empty detail string",
			body:        `{"detail": ""}`,
			wantKind:    FailureUnstructured,
			wantMessage: "An error occurred during validation",
		},
		{
			name:        "no detail",
			body:        `{"error": "boom"}`,
			wantKind:    FailureUnstructured,
			wantMessage: "An error occurred during validation",
		},
		{
			name:        "malformed json",
			body:        `<html>Bad Gateway</html>`,
			wantKind:    FailureUnstructured,
			wantMessage: "An error occurred during validation",
		},
		{
			name:        "empty body",
			body:        ``,
			wantKind:    FailureUnstructured,
			wantMessage: "An error occurred during validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failure := ParseUploadFailure([]byte(tt.body))
			assert.Equal(t, tt.wantKind, failure.Kind)
			assert.Equal(t, tt.wantMessage, failure.Message())
		})
	}
}

func TestBlockResultErrorText(t *testing.T) {
	msg := "Invalid JSON"
	assert.Equal(t, "Invalid JSON", BlockResult{Error: &msg}.ErrorText())
	assert.Equal(t, "", BlockResult{}.ErrorText())
}
