package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/kurihiro0119/site-metrics/internal/domain"
)

const (
	chartHeight = 10
	chartWidth  = 60
)

func render(w io.Writer, series *domain.Series, asJSON, chart bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(map[string]any{
			series.Key: series.Values,
			"dates":    series.Dates,
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", series.Key})
	for i, d := range series.Dates {
		value := ""
		if i < len(series.Values) {
			value = fmt.Sprint(series.Values[i])
		}
		table.Append([]string{d, value})
	}
	table.Render()

	if chart {
		ints := series.Ints()
		if len(ints) == 0 {
			// cities have nothing to plot
			return nil
		}
		data := make([]float64, len(ints))
		for i, n := range ints {
			data[i] = float64(n)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, asciigraph.Plot(data,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(series.Key),
		))
	}
	return nil
}

func renderList(w io.Writer, header string, values []string, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(values)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{header})
	for _, v := range values {
		table.Append([]string{v})
	}
	table.Render()
	return nil
}
