package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/planner-app/launchericons/internal/app"
	"github.com/planner-app/launchericons/internal/config"
	"github.com/planner-app/launchericons/internal/density"
	"github.com/planner-app/launchericons/internal/output"
)

func main() {
	defaults, err := config.DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	// Flags
	outDir := flag.String("out", defaults.OutDir, "Android res directory holding the mipmap-* folders; also configurable via "+config.EnvOutDir)
	densities := flag.String("densities", defaults.Densities, "comma separated densities to generate (default all); also configurable via "+config.EnvDensities)
	mkdir := flag.Bool("mkdir", defaults.Mkdir, "create missing mipmap directories; also configurable via "+config.EnvMkdir)
	previewPath := flag.String("preview", "", "also write a contact sheet of all icons to this PNG")
	fbDevice := flag.String("fb", "", "show the contact sheet on this framebuffer device, e.g. /dev/fb0")
	debug := flag.Bool("debug", false, "enable debug logging to ./launchericons-debug.log")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./launchericons-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	selected, err := density.Select(density.ParseList(*densities))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	writer := output.NewWriter(*outDir)
	writer.CreateDirs = *mkdir

	gen := app.New(selected, writer)
	gen.Logger = logger
	gen.PreviewPath = *previewPath
	gen.FramebufferDevice = *fbDevice

	res, err := gen.Run(ctx)
	if err != nil {
		logger.Errorf("main", "run failed after %d files: %v", len(res.Files), err)
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
	logger.Infof("main", "wrote %d files", len(res.Files))
	fmt.Println("Icons created successfully!")
}
