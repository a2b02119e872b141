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

// ValidationReport is the validator response for one uploaded document.
// ValidBlocks + InvalidBlocks may be less than BlocksFound, and Results may be shorter or longer than BlocksFound.
type ValidationReport struct {
	FileType      string        `json:"file_type,omitempty" jsonschema:"description=Content type of the uploaded document"`
	BlocksFound   int           `json:"blocks_found" jsonschema:"minimum=0"`
	ValidBlocks   int           `json:"valid_blocks" jsonschema:"minimum=0"`
	InvalidBlocks int           `json:"invalid_blocks" jsonschema:"minimum=0"`
	Results       []BlockResult `json:"results"`
}

type BlockResult struct {
	BlockNumber int     `json:"block_number" jsonschema:"minimum=0,description=Zero-based position of the block in the document"`
	Valid       bool    `json:"valid"`
	Content     string  `json:"content"`
	Error       *string `json:"error,omitempty"`
}

// ErrorText returns the block error or an empty string when it is absent.
func (b BlockResult) ErrorText() string {
	if b.Error == nil {
		return ""
	}
	return *b.Error
}

// SelectedFile is the user-chosen document between selection and submission.
type SelectedFile struct {
	Name    string
	Size    int64
	Content []byte
}
