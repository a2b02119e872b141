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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Netcracker/qubership-mcp-validator-client/view"
	log "github.com/sirupsen/logrus"
	"gopkg.in/resty.v1"
)

const ValidatePath = "/validate-mcp/"
const FileParam = "file"

type ValidatorClient interface {
	Submit(ctx context.Context, file view.SelectedFile) (*view.ValidationReport, error)
	Endpoint() string
}

// UploadError is returned by Submit for every failed request, whatever the cause.
type UploadError struct {
	StatusCode int
	Failure    view.UploadFailure
	Debug      string
}

func (u *UploadError) Error() string {
	if u.StatusCode != 0 {
		return fmt.Sprintf("validation request failed with status code %d: %s", u.StatusCode, u.Debug)
	}
	return fmt.Sprintf("validation request failed: %s", u.Debug)
}

// NewValidatorClient creates a client for the validator at validatorUrl.
// timeout <= 0 leaves the request unbounded.
func NewValidatorClient(validatorUrl string, timeout time.Duration) ValidatorClient {
	validatorHost := ""
	parsedUrl, err := url.Parse(validatorUrl)
	if err != nil {
		log.Errorf("Can't parse validator url: %v", err)
	} else {
		validatorHost = parsedUrl.Hostname()
	}

	cl := http.Client{}
	if timeout > 0 {
		cl.Timeout = timeout
	}
	client := resty.NewWithClient(&cl)
	if validatorHost != "" {
		client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(validatorHost))
	}

	return &validatorClientImpl{
		endpoint: strings.TrimSuffix(validatorUrl, "/") + ValidatePath,
		client:   client,
	}
}

type validatorClientImpl struct {
	endpoint string
	client   *resty.Client
}

func (v validatorClientImpl) Endpoint() string {
	return v.endpoint
}

func (v validatorClientImpl) Submit(ctx context.Context, file view.SelectedFile) (*view.ValidationReport, error) {
	req := v.client.R()
	req.SetContext(ctx)
	req.SetFileReader(FileParam, file.Name, bytes.NewReader(file.Content))

	start := time.Now()
	resp, err := req.Post(v.endpoint)
	if err != nil {
		return nil, &UploadError{
			Failure: view.UnstructuredFailure(),
			Debug:   err.Error(),
		}
	}
	log.Debugf("validator answered %d for %s in %v", resp.StatusCode(), file.Name, time.Since(start))

	if !resp.IsSuccess() {
		return nil, &UploadError{
			StatusCode: resp.StatusCode(),
			Failure:    view.ParseUploadFailure(resp.Body()),
			Debug:      string(resp.Body()),
		}
	}

	var report view.ValidationReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return nil, &UploadError{
			StatusCode: resp.StatusCode(),
			Failure:    view.UnstructuredFailure(),
			Debug:      fmt.Sprintf("failed to decode validation report: %s", err.Error()),
		}
	}
	return &report, nil
}
