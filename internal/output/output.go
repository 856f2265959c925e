// Package output prints window lists for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/shu-go/aot/internal/window"
)

type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// Row is a listed window plus whether it is currently topmost.
type Row struct {
	window.Entry `yaml:",inline"`
	Pinned       bool `json:"pinned,omitempty" yaml:"pinned,omitempty"`
}

// TitleWidth is the display width titles are cut to in table output.
const TitleWidth = 60

func Print(w io.Writer, f Format, rows []Row) error {
	switch f {
	case Table, "":
		return printTable(w, rows)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if rows == nil {
			rows = []Row{}
		}
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (table, json, yaml)", f)
	}
}

func printTable(w io.Writer, rows []Row) error {
	hdr := []string{"HANDLE", "PID", "EXECUTABLE", "TITLE"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		title := runewidth.Truncate(r.Title, TitleWidth, "…")
		if r.Pinned {
			title = "* " + title
		}
		cells = append(cells, []string{
			fmt.Sprintf("%#x", uintptr(r.Handle)),
			strconv.Itoa(r.PID),
			r.Executable,
			title,
		})
	}

	widths := make([]int, len(hdr))
	for i, h := range hdr {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	line := func(row []string) error {
		for i, c := range row {
			if i == len(row)-1 {
				if _, err := fmt.Fprintln(w, c); err != nil {
					return err
				}
				break
			}
			if _, err := fmt.Fprint(w, runewidth.FillRight(c, widths[i]), "  "); err != nil {
				return err
			}
		}
		return nil
	}

	if err := line(hdr); err != nil {
		return err
	}
	for _, row := range cells {
		if err := line(row); err != nil {
			return err
		}
	}
	return nil
}
