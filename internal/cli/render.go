package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags   optionFlags
		output  string
		watch   bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render <file.canvas>",
		Short: "Render a canvas document to SVG and/or PNG",
		Long: `Render a canvas document.

Without --output, files are written next to the input with the extension
replaced by the format: board.canvas becomes board.svg. With several formats,
--output is a base path and each format adds its own extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			job := renderJob{input: args[0], output: output, opts: opts, runner: runner}
			if watch {
				return job.watch(cmd.Context())
			}
			_, err = job.run(cmd.Context())
			return err
		},
	}

	flags.register(cmd.Flags(), true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render whenever the input changes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// renderJob converts one input file with fixed options.
type renderJob struct {
	input  string
	output string
	opts   pipeline.Options
	runner *pipeline.Runner
}

// run reads, converts, and writes every format. Nothing is written unless
// every format rendered successfully, and a failed write removes the files
// written before it. It returns the written paths.
func (j renderJob) run(ctx context.Context) ([]string, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := canvas.ImportJSON(j.input)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %s: %d nodes, %d edges", j.input, len(doc.Nodes), len(doc.Edges))

	result, err := j.runner.Render(ctx, doc, j.opts)
	if err != nil {
		return nil, err
	}
	for _, id := range result.Skipped {
		logger.Warn("node type is not drawn", "id", id)
	}

	paths := make([]string, 0, len(j.opts.Formats))
	for _, format := range j.opts.Formats {
		path := outputPath(j.output, j.input, format, len(j.opts.Formats) > 1)
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			removeOutputs(paths)
			return nil, err
		}
		paths = append(paths, path)
	}

	prog.done(fmt.Sprintf("Rendered %s", j.input))
	printSuccess("Rendered %s", filepath.Base(j.input))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheHit)
	for _, p := range paths {
		printFile(p)
	}
	return paths, nil
}

// outputPath picks the file for one format. An explicit output is used as
// is for a single format; otherwise the extension is replaced by the format.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// removeOutputs deletes files written before a later format failed, so a
// run produces either every output or none.
func removeOutputs(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
