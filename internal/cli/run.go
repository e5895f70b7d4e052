package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/rdtree/pkg/deps"
	"github.com/matzehuels/rdtree/pkg/deps/javascript"
	"github.com/matzehuels/rdtree/pkg/integrations/npm"
	"github.com/matzehuels/rdtree/pkg/render/markdown"
)

// run resolves input, collects its dependency graph and writes the markdown.
// Nothing is written to the output unless the whole graph was collected.
func run(ctx context.Context, input string, cfg config, stdout, stderr io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	client := npm.NewClient(npm.Options{
		BaseURL:   cfg.Registry,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
	src := javascript.NewSource(client)
	logger.Debug("registry", "url", cfg.Registry, "timeout", cfg.Timeout)

	root, err := deps.ResolveRoot(ctx, input, src, src)
	if err != nil {
		return err
	}
	logger.Debug("root resolved", "name", root.Name)

	b := deps.NewBuilder(src, deps.Options{Logger: logger.Infof})
	pkgs, err := b.Run(ctx, root)
	if err != nil {
		return err
	}

	if !cfg.Silent {
		printSummary(stderr, len(pkgs), b.Fetches(), prog.elapsed())
		printRule(stderr)
	}

	out, err := openOutput(cfg.Output, stdout)
	if err != nil {
		return err
	}
	if err := markdown.Write(out, pkgs, root.Name); err != nil {
		out.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if cfg.Output != "" {
		prog.done("Wrote " + cfg.Output)
	}

	if !cfg.Silent {
		printRule(stderr)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a writer for path, or stdout if path is empty.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}
