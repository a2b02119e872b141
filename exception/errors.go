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

package exception

import (
	"fmt"
	"sort"
	"strings"
)

type CustomError struct {
	Status  int                    `json:"status"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Debug   string                 `json:"debug,omitempty"`
}

func (c CustomError) Error() string {
	msg := c.Message
	// longest names first, so $fileName is not clobbered by $file
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, k := range keys {
		msg = strings.ReplaceAll(msg, "$"+k, fmt.Sprintf("%v", c.Params[k]))
	}
	return msg
}

// IsPrecondition reports whether the error was raised locally, before any call to the validator.
func IsPrecondition(err error) bool {
	customErr, ok := err.(*CustomError)
	if !ok {
		return false
	}
	return customErr.Code == FileTooLarge || customErr.Code == UnsupportedFileType
}

const FileTooLarge = "1100"
const FileTooLargeMsg = "File size exceeds maximum allowed limit (10MB)"

const UnsupportedFileType = "1101"
const UnsupportedFileTypeMsg = "Only PDF, DOCX, TXT, or JSON files are supported"

const NoFileSelected = "1102"
const NoFileSelectedMsg = "No file selected"

const IncorrectMultipartFile = "1000"
const IncorrectMultipartFileMsg = "Unable to read Multipart file"

const ValidationFailed = "3000"
const ValidationFailedMsg = "An error occurred during validation"

const FileReadFailed = "3001"
const FileReadFailedMsg = "Unable to read file $path"
