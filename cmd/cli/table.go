// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderMovieTable(rows []listRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Status"})

	for _, r := range rows {
		status := toWatchColor.Sprint(r.movie.Status())
		if r.movie.Watched {
			status = watchedColor.Sprint(r.movie.Status())
		}
		tw.AppendRow(table.Row{strconv.Itoa(r.position), r.movie.Title, status})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	return tw.Render()
}
