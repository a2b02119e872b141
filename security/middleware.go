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
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Netcracker/qubership-mcp-validator-client/controller"
	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/Netcracker/qubership-mcp-validator-client/service"
	"github.com/Netcracker/qubership-mcp-validator-client/sessctx"
	log "github.com/sirupsen/logrus"
)

// WithSession recovers panics and attaches the page session to the request.
func WithSession(store service.SessionStore, next http.HandlerFunc) http.HandlerFunc {
	return NoSession(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(sessctx.MakeSessionContext(w, r, store))
		next.ServeHTTP(w, r)
	})
}

func NoSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Errorf("Request failed with panic: %v", err)
				log.Tracef("Stacktrace: %v", string(debug.Stack()))
				controller.RespondWithCustomError(w, &exception.CustomError{
					Status:  http.StatusInternalServerError,
					Message: http.StatusText(http.StatusInternalServerError),
					Debug:   fmt.Sprintf("%v", err),
				})
				return
			}
		}()
		next.ServeHTTP(w, r)
	}
}
