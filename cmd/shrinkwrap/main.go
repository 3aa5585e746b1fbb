// cmd/shrinkwrap/main.go
//
// Entry point for the shrinkwrap build tool.
//
// Flow:
// 1. Load shrinkwrap.yaml for the project
// 2. Run the pack -> select -> report -> assemble pipeline
// 3. Exit non-zero if any stage fails

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"shrinkwrap/internal/build"
	"shrinkwrap/internal/config"
	"shrinkwrap/internal/logging"
	"shrinkwrap/internal/packer"
	"shrinkwrap/internal/selector"
	"shrinkwrap/internal/tui"
)

func main() {
	var (
		configPath = flag.String("c", config.DefaultFileName, "path to the project configuration file")
		initConfig = flag.Bool("init", false, "write a default configuration file and exit")
		noUI       = flag.Bool("no-ui", false, "disable the live progress view")
	)
	flag.Parse()

	if *initConfig {
		if err := config.EnsureProjectConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "shrinkwrap: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *configPath)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shrinkwrap: %v\n", err)
		os.Exit(1)
	}

	// The output directory doubles as the log location, so it has to
	// exist (and actually be a directory) before anything else.
	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Fprintf(os.Stderr, "shrinkwrap: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogsDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "shrinkwrap: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	pipeline := &build.Pipeline{
		Config: cfg,
		Engine: &packer.ExecEngine{Command: cfg.Engine.Command, Args: cfg.Engine.Args},
		Log:    logger,
	}

	ctx := context.Background()
	if *noUI || !isatty.IsTerminal(os.Stdout.Fd()) {
		_, err = pipeline.Run(ctx)
	} else {
		err = runWithProgress(ctx, pipeline)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "shrinkwrap: %v\n", err)
		os.Exit(1)
	}
}

// runWithProgress runs the pipeline behind a live progress view. The
// budget report is buffered while bubbletea owns the terminal and
// replayed once the view exits.
func runWithProgress(ctx context.Context, pipeline *build.Pipeline) error {
	var diag bytes.Buffer
	pipeline.Out = &diag

	prog := tea.NewProgram(tui.New())
	pipeline.Progress = func(seen int, best selector.Winner) {
		prog.Send(tui.ProgressMsg{Seen: seen, BestSize: best.Size})
	}

	done := make(chan error, 1)
	go func() {
		_, err := pipeline.Run(ctx)
		done <- err
		prog.Send(tui.DoneMsg{})
	}()

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("progress view: %w", err)
	}
	runErr := <-done
	os.Stdout.Write(diag.Bytes())
	return runErr
}
