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
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Netcracker/qubership-mcp-validator-client/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFile struct {
	field   string
	name    string
	content string
}

func multipartRequest(t *testing.T, files ...formFile) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestFileAcquirer_PickerField(t *testing.T) {
	req := multipartRequest(t, formFile{field: "file", name: "notes.txt", content: "hello"})

	file, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, "notes.txt", file.Name)
	assert.Equal(t, int64(5), file.Size)
	assert.Equal(t, []byte("hello"), file.Content)
}

func TestFileAcquirer_DropTakesFirstFile(t *testing.T) {
	req := multipartRequest(t,
		formFile{field: "files", name: "first.json", content: "{}"},
		formFile{field: "files", name: "second.pdf", content: "%PDF"},
	)

	file, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, "first.json", file.Name)
	assert.Equal(t, []byte("{}"), file.Content)
}

func TestFileAcquirer_DropIgnoresLaterOversizedFile(t *testing.T) {
	req := multipartRequest(t,
		formFile{field: "files", name: "first.txt", content: "hello"},
		formFile{field: "files", name: "second.pdf", content: strings.Repeat("x", 22*1024*1024)},
	)

	file, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, "first.txt", file.Name)
	assert.Equal(t, int64(5), file.Size)
	assert.Equal(t, []byte("hello"), file.Content)
	assert.NoError(t, NewFileValidator().Validate(*file))
}

func TestFileAcquirer_OversizedFileKeepsSizeOnly(t *testing.T) {
	req := multipartRequest(t, formFile{field: "file", name: "scan.pdf", content: strings.Repeat("x", 12*1024*1024)})

	file, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(12*1024*1024), file.Size)
	assert.Nil(t, file.Content)
	err = NewFileValidator().Validate(*file)
	require.Error(t, err)
	assert.Equal(t, exception.FileTooLarge, err.(*exception.CustomError).Code)
}

func TestFileAcquirer_FirstFileOverRequestLimit(t *testing.T) {
	req := multipartRequest(t, formFile{field: "files", name: "huge.pdf", content: strings.Repeat("x", 22*1024*1024)})

	_, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.Error(t, err)
	assert.Equal(t, exception.FileTooLarge, err.(*exception.CustomError).Code)
}

func TestFileAcquirer_EmptyPickerIsNoFile(t *testing.T) {
	req := multipartRequest(t, formFile{field: "file", name: "", content: ""})

	_, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.Error(t, err)
	assert.Equal(t, exception.NoFileSelected, err.(*exception.CustomError).Code)
}

func TestFileAcquirer_NoFile(t *testing.T) {
	req := multipartRequest(t)

	_, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.Error(t, err)
	assert.Equal(t, exception.NoFileSelected, err.(*exception.CustomError).Code)
}

func TestFileAcquirer_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")

	_, err := NewFileAcquirer().FromRequest(httptest.NewRecorder(), req)

	require.Error(t, err)
	assert.Equal(t, exception.IncorrectMultipartFile, err.(*exception.CustomError).Code)
}

func TestFileAcquirer_FromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

	file, err := NewFileAcquirer().FromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "blocks.json", file.Name)
	assert.Equal(t, int64(7), file.Size)
	assert.Equal(t, []byte(`{"a":1}`), file.Content)
}

func TestFileAcquirer_FromPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileAcquirer().FromPath(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, exception.FileReadFailed, err.(*exception.CustomError).Code)
	assert.Contains(t, err.Error(), "missing.txt")

	_, err = NewFileAcquirer().FromPath(dir)
	require.Error(t, err)
	assert.Equal(t, exception.NoFileSelected, err.(*exception.CustomError).Code)
}
