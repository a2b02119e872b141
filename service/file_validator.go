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
	"net/http"
	"strings"

	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/Netcracker/qubership-mcp-validator-client/view"
)

const MaxFileSize int64 = 10 * 1024 * 1024

var supportedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"txt":  true,
	"json": true,
}

type FileValidator interface {
	Validate(file view.SelectedFile) error
}

func NewFileValidator() FileValidator {
	return &fileValidatorImpl{maxSize: MaxFileSize}
}

type fileValidatorImpl struct {
	maxSize int64
}

func (f fileValidatorImpl) Validate(file view.SelectedFile) error {
	if file.Size > f.maxSize {
		return &exception.CustomError{
			Status:  http.StatusRequestEntityTooLarge,
			Code:    exception.FileTooLarge,
			Message: exception.FileTooLargeMsg,
			Params:  map[string]interface{}{"size": file.Size},
		}
	}
	if !supportedExtensions[FileExtension(file.Name)] {
		return &exception.CustomError{
			Status:  http.StatusUnsupportedMediaType,
			Code:    exception.UnsupportedFileType,
			Message: exception.UnsupportedFileTypeMsg,
			Params:  map[string]interface{}{"name": file.Name},
		}
	}
	return nil
}

// FileExtension returns the lower-cased text after the final '.', or "" if the name has none.
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
