// internal/build/pipeline.go
//
// The build pipeline: load inputs, pick the smallest candidate the
// compaction engine can offer, report it against the byte budget and
// assemble the final document. A failure at any stage aborts the run;
// artifacts written before the failure are not cleaned up and should
// not be trusted.

package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"shrinkwrap/internal/config"
	"shrinkwrap/internal/escape"
	"shrinkwrap/internal/logging"
	"shrinkwrap/internal/packer"
	"shrinkwrap/internal/report"
	"shrinkwrap/internal/selector"
	"shrinkwrap/internal/template"
)

// Pipeline wires the compaction engine, the budget reporter and the
// template renderer into one atomic build.
type Pipeline struct {
	Config *config.Config
	Engine packer.Engine
	Log    *logging.Logger

	// Out receives the diagnostic report. Defaults to os.Stdout.
	Out io.Writer

	// Progress, when set, is forwarded to the selector so a UI can
	// follow the candidate stream.
	Progress selector.Progress
}

// Result reports what a completed run produced.
type Result struct {
	Winner       selector.Winner
	Candidates   int
	PackedPath   string
	DocumentPath string
}

// Run executes the whole pipeline. Selection must finish before the
// report and the template run; only the two input loads and the two
// artifact writes overlap.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	cfg := p.Config
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return Result{}, p.fail(err)
	}

	var source, tpl string
	loads := new(errgroup.Group)
	loads.Go(func() error {
		data, err := os.ReadFile(cfg.SourcePath())
		if err != nil {
			return fmt.Errorf("build: read source: %w", err)
		}
		source = string(data)
		return nil
	})
	loads.Go(func() error {
		data, err := os.ReadFile(cfg.TemplatePath())
		if err != nil {
			return fmt.Errorf("build: read template: %w", err)
		}
		tpl = string(data)
		return nil
	})
	if err := loads.Wait(); err != nil {
		return Result{}, p.fail(err)
	}
	p.logf("loaded %d-byte source from %s", len(source), cfg.SourcePath())

	methods, err := p.Engine.Pack(ctx, source, packer.Options{})
	if err != nil {
		return Result{}, p.fail(err)
	}
	seen := 0
	winner, err := selector.Best(
		packer.Candidates(methods),
		selector.WithProgress(func(n int, best selector.Winner) {
			seen = n
			if p.Progress != nil {
				p.Progress(n, best)
			}
		}),
	)
	if err != nil {
		return Result{}, p.fail(err)
	}
	p.logf("selected %d-byte candidate out of %d", winner.Size, seen)

	reporter := report.Reporter{Budget: cfg.Budget}
	reporter.Print(out, winner.Size)

	doc, err := template.Render(tpl, map[string]string{
		"title_html": escape.Text(cfg.Title),
		"title_js":   strconv.Quote(cfg.Title),
		"code":       winner.Text,
	})
	if err != nil {
		return Result{}, p.fail(err)
	}

	writes := new(errgroup.Group)
	writes.Go(func() error {
		if err := os.WriteFile(cfg.PackedPath(), []byte(winner.Text), 0o644); err != nil {
			return fmt.Errorf("build: write packed source: %w", err)
		}
		return nil
	})
	writes.Go(func() error {
		if err := os.WriteFile(cfg.DocumentPath(), []byte(doc), 0o644); err != nil {
			return fmt.Errorf("build: write document: %w", err)
		}
		return nil
	})
	if err := writes.Wait(); err != nil {
		return Result{}, p.fail(err)
	}
	p.logf("wrote %s and %s", cfg.PackedPath(), cfg.DocumentPath())

	return Result{
		Winner:       winner,
		Candidates:   seen,
		PackedPath:   cfg.PackedPath(),
		DocumentPath: cfg.DocumentPath(),
	}, nil
}

func (p *Pipeline) fail(err error) error {
	p.logf("build failed: %v", err)
	return err
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Log != nil {
		p.Log.Printf(format, args...)
	}
}
