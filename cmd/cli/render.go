package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"launchdash/domain/launch"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use table or json)", format)
	}
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func kg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderSites(w io.Writer, format string, options []launch.SiteOption) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return renderJSON(w, options)
	}

	t := newTable(w, "")
	t.AppendHeader(table.Row{"Value", "Label"})
	for _, o := range options {
		t.AppendRow(table.Row{o.Value, o.Label})
	}
	t.Render()
	return nil
}

func renderSlider(w io.Writer, format string, slider launch.SliderConfig) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return renderJSON(w, slider)
	}

	t := newTable(w, "Payload Mass (kg)")
	t.AppendHeader(table.Row{"Setting", "Value"})
	t.AppendRow(table.Row{"min payload", kg(slider.Value[0])})
	t.AppendRow(table.Row{"max payload", kg(slider.Value[1])})
	t.AppendRow(table.Row{"slider range", kg(slider.Min) + " - " + kg(slider.Max)})
	t.AppendRow(table.Row{"slider step", kg(slider.Step)})
	for _, m := range slider.Marks {
		t.AppendRow(table.Row{"mark", m.Label})
	}
	t.Render()
	return nil
}

func renderSeries(w io.Writer, format string, series launch.ChartSeries) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return renderJSON(w, series)
	}

	t := newTable(w, series.Title)
	t.AppendHeader(table.Row{"Label", "Count"})
	for _, p := range series.Points {
		t.AppendRow(table.Row{p.Label, p.Count})
	}
	t.AppendFooter(table.Row{"Total", series.Total()})
	t.Render()
	return nil
}

func renderPoints(w io.Writer, format, title string, points []launch.ScatterPoint) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatJSON {
		return renderJSON(w, points)
	}

	if len(points) == 0 {
		_, _ = fmt.Fprintln(w, "(0 launches)")
		return nil
	}
	t := newTable(w, title)
	t.AppendHeader(table.Row{"Payload Mass (kg)", "Class", "Outcome", "Booster Version Category"})
	for _, p := range points {
		t.AppendRow(table.Row{kg(p.PayloadMassKg), p.Class, p.Outcome, p.BoosterCategory})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d launches)\n", len(points))
	return nil
}
