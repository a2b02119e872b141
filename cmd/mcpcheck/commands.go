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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/Netcracker/qubership-mcp-validator-client/client"
	"github.com/Netcracker/qubership-mcp-validator-client/service"
	"github.com/Netcracker/qubership-mcp-validator-client/ui"
	"github.com/Netcracker/qubership-mcp-validator-client/view"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("validation did not produce a report")

type validateOptions struct {
	validatorUrl string
	timeout      time.Duration
	jsonOutput   bool
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "mcpcheck",
		Short:         "Validate MCP knowledge blocks of a document against a remote validator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.AddCommand(newValidateCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Upload a PDF, DOCX, TXT or JSON document and print the validation report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts)
		},
	}
	defaultUrl := os.Getenv(service.VALIDATOR_URL)
	if defaultUrl == "" {
		defaultUrl = "http://localhost:8000"
	}
	cmd.Flags().StringVar(&opts.validatorUrl, "validator-url", defaultUrl, "base URL of the validation service")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "request timeout, 0 waits for the validator indefinitely")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the result view as JSON")
	return cmd
}

func runValidate(cmd *cobra.Command, path string, opts validateOptions) error {
	session := service.NewSession(uuid.NewString())
	uploadService := service.NewUploadService(service.NewFileValidator(), client.NewValidatorClient(opts.validatorUrl, opts.timeout))

	file, err := service.NewFileAcquirer().FromPath(path)
	if err != nil {
		session.Reject(view.FileInfo{}, service.ErrorMessage(err))
	} else {
		uploadService.Upload(context.Background(), session, *file)
	}

	state := session.State()
	page := service.Present(state)
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err = encoder.Encode(page); err != nil {
			return err
		}
	} else if err = ui.NewTextPresenter().Render(cmd.OutOrStdout(), page); err != nil {
		return err
	}

	if state.Kind != view.StateResults {
		return errValidationFailed
	}
	return nil
}
