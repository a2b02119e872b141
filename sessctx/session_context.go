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

package sessctx

import (
	"context"
	"net/http"

	"github.com/Netcracker/qubership-mcp-validator-client/service"
)

const SessionCookie = "mcp-validator-session"

type sessionKey struct{}

// MakeSessionContext resolves the page session of the request and issues its cookie.
func MakeSessionContext(w http.ResponseWriter, r *http.Request, store service.SessionStore) context.Context {
	session := store.GetOrCreate(getSessionIdFromCookie(r))
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Id(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return context.WithValue(r.Context(), sessionKey{}, session)
}

func getSessionIdFromCookie(r *http.Request) string {
	sessionCookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return sessionCookie.Value
}

func GetSession(ctx context.Context) service.Session {
	val := ctx.Value(sessionKey{})
	if val == nil {
		return nil
	}
	return val.(service.Session)
}
