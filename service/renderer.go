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
	"fmt"

	"github.com/Netcracker/qubership-mcp-validator-client/view"
)

const (
	IdleMessage     = "Upload a document to see validation results."
	NoBlocksMessage = "No MCP JSON blocks found with BEGIN_KNOWLEDGE/END_KNOWLEDGE markers."

	PreviewLength = 100
	Ellipsis      = "..."

	StatusValid        = "VALID"
	StatusInvalid      = "INVALID"
	StatusClassValid   = "status-valid"
	StatusClassInvalid = "status-invalid"
)

// RenderIdle is the placeholder shown before any report and while a request is in flight.
func RenderIdle() view.ResultsView {
	return view.ResultsView{Message: IdleMessage}
}

// RenderReport maps a report to card descriptors. It never fails on inconsistent counters.
func RenderReport(report view.ValidationReport) view.ResultsView {
	results := view.ResultsView{
		Counters: view.Counters{
			BlocksFound:   report.BlocksFound,
			ValidBlocks:   report.ValidBlocks,
			InvalidBlocks: report.InvalidBlocks,
		},
		FileType: report.FileType,
	}
	if report.BlocksFound == 0 {
		results.Message = NoBlocksMessage
		return results
	}
	results.Cards = make([]view.Card, 0, len(report.Results))
	for _, block := range report.Results {
		results.Cards = append(results.Cards, renderCard(block))
	}
	return results
}

func renderCard(block view.BlockResult) view.Card {
	card := view.Card{
		Title:   fmt.Sprintf("Block #%d", block.BlockNumber+1),
		Preview: Preview(block.Content),
	}
	if block.Valid {
		card.Status = StatusValid
		card.StatusClass = StatusClassValid
		return card
	}
	card.Status = StatusInvalid
	card.StatusClass = StatusClassInvalid
	card.Error = block.ErrorText()
	return card
}

// Preview returns content cut to PreviewLength characters, marked with an ellipsis when cut.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLength {
		return content
	}
	return string(runes[:PreviewLength]) + Ellipsis
}

// Present maps a session state to what the page shows.
func Present(state view.UIState) view.PageView {
	page := view.PageView{
		State: state.Kind,
		File:  state.File,
	}
	switch state.Kind {
	case view.StateLoading:
		page.LoadingVisible = true
		page.Results = RenderIdle()
	case view.StateError:
		page.ErrorVisible = true
		page.ErrorMessage = state.Message
		page.Results = RenderIdle()
	case view.StateResults:
		if state.Report != nil {
			page.Results = RenderReport(*state.Report)
		} else {
			page.Results = RenderIdle()
		}
	default:
		page.Results = RenderIdle()
	}
	return page
}
