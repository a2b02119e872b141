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
	"bufio"
	"fmt"
	"io"

	"github.com/Netcracker/qubership-mcp-validator-client/view"
	"github.com/dustin/go-humanize"
)

func NewTextPresenter() Presenter {
	return &textPresenterImpl{}
}

type textPresenterImpl struct {
}

func (t textPresenterImpl) Render(w io.Writer, page view.PageView) error {
	out := bufio.NewWriter(w)
	if page.File != nil {
		fmt.Fprintf(out, "File: %s (%s)", page.File.Name, humanize.Bytes(uint64(page.File.Size)))
		if page.Results.FileType != "" {
			fmt.Fprintf(out, ", %s", page.Results.FileType)
		}
		fmt.Fprintln(out)
	}
	if page.LoadingVisible {
		fmt.Fprintln(out, "Validating...")
	}
	if page.ErrorVisible {
		fmt.Fprintf(out, "Error: %s\n", page.ErrorMessage)
	}

	c := page.Results.Counters
	fmt.Fprintf(out, "Blocks found: %d  Valid: %d  Invalid: %d\n", c.BlocksFound, c.ValidBlocks, c.InvalidBlocks)
	if page.Results.Message != "" {
		fmt.Fprintf(out, "\n%s\n", page.Results.Message)
	}
	for _, card := range page.Results.Cards {
		fmt.Fprintf(out, "\n%s  [%s]\n", card.Title, card.Status)
		fmt.Fprintf(out, "  Content: %s\n", card.Preview)
		if card.HasError() {
			fmt.Fprintf(out, "  Error:   %s\n", card.Error)
		}
	}
	return out.Flush()
}
