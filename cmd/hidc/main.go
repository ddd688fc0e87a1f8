// Command hidc compiles HID report descriptor sources into the binary
// short-item byte stream, and inspects the result.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/hiddesc/hiddesc"
)

type cli struct {
	Verbose int `short:"v" type:"counter" help:"Increase logging (-v debug, -vv trace)."`

	Compile compileCmd `cmd:"" help:"Compile a descriptor source to binary."`
	Size    sizeCmd    `cmd:"" help:"Print the compiled descriptor size in bytes."`
	Lint    lintCmd    `cmd:"" help:"Check a descriptor source and print notices."`
	Dump    dumpCmd    `cmd:"" help:"Compile a descriptor source and hex-dump it by item."`
	Version versionCmd `cmd:"" help:"Show version."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("hidc"),
		kong.Description("HID report descriptor compiler."),
		kong.UsageOnError(),
	)
	ctx.Bind(c.setupLogger())
	ctx.FatalIfErrorf(ctx.Run())
}

// setupLogger returns nil when logging is off; the library treats a
// nil logger as disabled with zero overhead.
func (c *cli) setupLogger() *slog.Logger {
	if c.Verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.Verbose >= 2 {
		level = hiddesc.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

type versionCmd struct{}

func (versionCmd) Run(*slog.Logger) error {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("hidc %s\n", version)
	return nil
}
