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

package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Netcracker/qubership-mcp-validator-client/service"
	"github.com/Netcracker/qubership-mcp-validator-client/sessctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoSession_RecoversPanic(t *testing.T) {
	handler := NoSession(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/upload", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"debug":"boom"`)
}

func TestWithSession_IssuesAndReusesCookie(t *testing.T) {
	store := service.NewSessionStore(10, time.Minute)
	var seen []string
	handler := WithSession(store, func(w http.ResponseWriter, r *http.Request) {
		session := sessctx.GetSession(r.Context())
		require.NotNil(t, session)
		seen = append(seen, session.Id())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/upload", nil))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessctx.SessionCookie, cookies[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/upload", nil)
	req.AddCookie(cookies[0])
	handler(httptest.NewRecorder(), req)

	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
	assert.Equal(t, cookies[0].Value, seen[0])
}
