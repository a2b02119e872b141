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

package ui

import (
	"embed"
	"html/template"
	"io"

	"github.com/Netcracker/qubership-mcp-validator-client/view"
	"github.com/dustin/go-humanize"
)

//go:embed templates/upload.html
var templatesFS embed.FS

// RefreshSeconds is how often the page reloads itself while a submission is in flight.
const RefreshSeconds = 1

type Presenter interface {
	Render(w io.Writer, page view.PageView) error
}

type uploadPageData struct {
	Page           view.PageView
	RefreshSeconds int
}

func NewHTMLPresenter() (Presenter, error) {
	tmpl, err := template.New("upload.html").
		Funcs(template.FuncMap{
			"bytes": func(size int64) string { return humanize.Bytes(uint64(size)) },
		}).
		ParseFS(templatesFS, "templates/upload.html")
	if err != nil {
		return nil, err
	}
	return &htmlPresenterImpl{tmpl: tmpl}, nil
}

type htmlPresenterImpl struct {
	tmpl *template.Template
}

func (h htmlPresenterImpl) Render(w io.Writer, page view.PageView) error {
	return h.tmpl.Execute(w, uploadPageData{Page: page, RefreshSeconds: RefreshSeconds})
}
