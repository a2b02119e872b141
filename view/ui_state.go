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

type UIStateKind string

const (
	StateIdle    UIStateKind = "idle"
	StateLoading UIStateKind = "loading"
	StateError   UIStateKind = "error"
	StateResults UIStateKind = "results"
)

// UIState is the single render state of one session.
// Message is set only for StateError, Report only for StateResults.
type UIState struct {
	Kind         UIStateKind       `json:"state"`
	Message      string            `json:"message,omitempty"`
	Report       *ValidationReport `json:"report,omitempty"`
	File         *FileInfo         `json:"file,omitempty"`
	SubmissionId string            `json:"submissionId,omitempty"`
}

// FileInfo is what is kept of a SelectedFile once it has been submitted.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func IdleState() UIState {
	return UIState{Kind: StateIdle}
}

// PageView is the presentation of a UIState.
type PageView struct {
	State          UIStateKind `json:"state"`
	LoadingVisible bool        `json:"loadingVisible"`
	ErrorVisible   bool        `json:"errorVisible"`
	ErrorMessage   string      `json:"errorMessage,omitempty"`
	File           *FileInfo   `json:"file,omitempty"`
	Results        ResultsView `json:"results"`
}

type Counters struct {
	BlocksFound   int `json:"blocksFound"`
	ValidBlocks   int `json:"validBlocks"`
	InvalidBlocks int `json:"invalidBlocks"`
}

// ResultsView holds either a single informational Message or a list of Cards.
type ResultsView struct {
	Counters Counters `json:"counters"`
	Message  string   `json:"message,omitempty"`
	FileType string   `json:"fileType,omitempty"`
	Cards    []Card   `json:"cards,omitempty"`
}

type Card struct {
	Title       string `json:"title"`
	Status      string `json:"status"`
	StatusClass string `json:"statusClass"`
	Preview     string `json:"preview"`
	Error       string `json:"error,omitempty"`
}

func (c Card) HasError() bool {
	return c.Error != ""
}
