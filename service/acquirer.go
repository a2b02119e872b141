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
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/Netcracker/qubership-mcp-validator-client/view"
	log "github.com/sirupsen/logrus"
)

const (
	PickerField = "file"
	DropField   = "files"

	// a first file part running past this is rejected as too large without being read further
	maxRequestBodySize = 2*MaxFileSize + 1024*1024
)

// FileAcquirer turns both input modalities into one SelectedFile.
type FileAcquirer interface {
	FromRequest(w http.ResponseWriter, r *http.Request) (*view.SelectedFile, error)
	FromPath(path string) (*view.SelectedFile, error)
}

func NewFileAcquirer() FileAcquirer {
	return &fileAcquirerImpl{}
}

type fileAcquirerImpl struct {
}

// FromRequest streams the body up to the first file part: the picker field or, for drops, the first of the
// dropped files. Parts after it are never read, so later dropped files cannot affect the outcome.
func (f fileAcquirerImpl) FromRequest(w http.ResponseWriter, r *http.Request) (*view.SelectedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, incorrectMultipartError(err)
	}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return nil, &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.NoFileSelected,
				Message: exception.NoFileSelectedMsg,
			}
		}
		if err != nil {
			return nil, acquisitionError(err)
		}
		if !isFilePart(part) {
			part.Close()
			continue
		}
		selected, err := readFilePart(part)
		part.Close()
		if err != nil {
			return nil, acquisitionError(err)
		}
		if part.FormName() == DropField {
			log.Debugf("dropped file %s taken, remaining parts are ignored", selected.Name)
		}
		return selected, nil
	}
}

func isFilePart(part *multipart.Part) bool {
	name := part.FormName()
	return (name == DropField || name == PickerField) && part.FileName() != ""
}

// readFilePart keeps at most MaxFileSize+1 bytes in memory; the rest is only counted.
func readFilePart(part *multipart.Part) (*view.SelectedFile, error) {
	content, err := io.ReadAll(io.LimitReader(part, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	size := int64(len(content))
	if size > MaxFileSize {
		rest, err := io.Copy(io.Discard, part)
		if err != nil {
			return nil, err
		}
		size += rest
		content = nil
	}
	return &view.SelectedFile{
		Name:    part.FileName(),
		Size:    size,
		Content: content,
	}, nil
}

func acquisitionError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return &exception.CustomError{
			Status:  http.StatusRequestEntityTooLarge,
			Code:    exception.FileTooLarge,
			Message: exception.FileTooLargeMsg,
			Debug:   err.Error(),
		}
	}
	return incorrectMultipartError(err)
}

func incorrectMultipartError(err error) error {
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.IncorrectMultipartFile,
		Message: exception.IncorrectMultipartFileMsg,
		Debug:   err.Error(),
	}
}

func (f fileAcquirerImpl) FromPath(path string) (*view.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.FileReadFailed,
			Message: exception.FileReadFailedMsg,
			Params:  map[string]interface{}{"path": path},
			Debug:   err.Error(),
		}
	}
	if info.IsDir() {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.NoFileSelected,
			Message: exception.NoFileSelectedMsg,
			Debug:   path + " is a directory",
		}
	}
	selected := &view.SelectedFile{
		Name: filepath.Base(path),
		Size: info.Size(),
	}
	// oversized files are rejected by size alone, the content is never needed
	if selected.Size > MaxFileSize {
		return selected, nil
	}
	selected.Content, err = os.ReadFile(path)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.FileReadFailed,
			Message: exception.FileReadFailedMsg,
			Params:  map[string]interface{}{"path": path},
			Debug:   err.Error(),
		}
	}
	return selected, nil
}
