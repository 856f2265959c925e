package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/shu-go/gli/v2"

	"github.com/shu-go/aot/internal/config"
	"github.com/shu-go/aot/internal/debuglog"
	"github.com/shu-go/aot/internal/hotkeys"
	"github.com/shu-go/aot/internal/locale"
	"github.com/shu-go/aot/internal/ui"
	"github.com/shu-go/aot/internal/winapi"
)

// Version is app version
var Version string

func init() {
	if Version == "" {
		Version = locale.Version + "-dev-" + time.Now().Format("20060102")
	}
}

const appID = "io.github.shu-go.aot"

type globalCmd struct {
	Debug      bool   `help:"log to stderr"`
	ConfigFile string `cli:"config-file,f=PATH" help:"default to the user cache dir"`

	List   listCmd   `cli:"list,ls" help:"list the windows that can be pinned"`
	Pin    pinCmd    `cli:"pin" help:"pin a window"`
	Unpin  unpinCmd  `cli:"unpin" help:"unpin a window"`
	Config configCmd `cli:"config" help:"print the settings"`
}

func (c *globalCmd) Before() error {
	if c.Debug {
		debuglog.Enable(true)
	}
	return nil
}

func (c globalCmd) configPath() string {
	if c.ConfigFile != "" {
		return c.ConfigFile
	}
	p, err := config.DefaultPath()
	if err != nil {
		debuglog.Printf("config path: %v", err)
		return ""
	}
	return p
}

// Run without a subcommand starts the checklist window.
func (c globalCmd) Run() error {
	cfg, err := config.Open(c.configPath())
	if err != nil {
		debuglog.Printf("load config: %v", err)
	}

	exe, err := os.Executable()
	if err != nil {
		debuglog.Printf("executable: %v", err)
	}

	a := ui.New(app.NewWithID(appID), ui.Options{
		Desktop:    winapi.Desktop{},
		Config:     cfg,
		Hotkeys:    hotkeys.OS(),
		Executable: exe,
		Reveal:     winapi.RevealInFolder,
	})
	a.Run()
	return nil
}

func main() {
	app := gli.NewWith(&globalCmd{})
	app.Name = "aot"
	app.Desc = locale.AppTitle
	app.Version = Version
	app.Usage = `aot                   # open the window list
aot list --format json
aot pin -t notepad --wait
aot unpin              # the console running this command`
	app.Copyright = "(C) 2024 Ky Khanh Nguyen"
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
