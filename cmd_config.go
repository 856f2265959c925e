package main

import (
	"fmt"
	"os"

	"github.com/shu-go/aot/internal/config"
)

type configCmd struct {
	Path bool `help:"print the file path only"`
}

func (c configCmd) Run(g globalCmd) error {
	path := g.configPath()
	if c.Path {
		fmt.Println(path)
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (defaults shown)\n", err)
	}
	return config.Encode(os.Stdout, cfg)
}
