package main

import (
	"iter"
	"os"

	"github.com/shu-go/aot/internal/locale"
	"github.com/shu-go/aot/internal/output"
	"github.com/shu-go/aot/internal/window"
	"github.com/shu-go/aot/internal/winapi"
)

type listCmd struct {
	Format string `cli:"format,o=FORMAT" default:"table" help:"table, json or yaml"`
	All    bool   `cli:"all,a" help:"every window, not only the first of each process"`
}

func (c listCmd) Run(g globalCmd) error {
	desk := winapi.Desktop{}
	e := &window.Enumerator{
		Source:      desk,
		Exclude:     append([]string{locale.AppTitle}, locale.DialogTitles()...),
		ProcessName: window.ProcessName,
	}

	var seq iter.Seq[window.Entry]
	var err error
	if c.All {
		seq, err = e.All()
	} else {
		seq, err = e.Windows()
	}
	if err != nil {
		return err
	}

	var rows []output.Row
	for entry := range seq {
		rows = append(rows, output.Row{Entry: entry, Pinned: desk.Topmost(entry.Handle)})
	}
	return output.Print(os.Stdout, output.Format(c.Format), rows)
}
