// Package cli implements the command bodies of the tapeconv binary:
// path resolution, file I/O, and user-facing output. The cmd layer
// only wires flags and arguments into these functions.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lviana15/tapeconv"
	"github.com/lviana15/tapeconv/internal/config"
	"github.com/lviana15/tapeconv/internal/logging"
)

const (
	// DefaultInput is used when no positional argument is given.
	DefaultInput = "example.in"

	inputExt  = ".in"
	outputExt = ".out"
)

// ResolvePaths picks the input path from the arguments (or the
// default) and derives the output path. The input path must carry the
// ".in" extension; the output is the same path with ".out" instead.
func ResolvePaths(args []string) (inputPath, outputPath string, err error) {
	inputPath = DefaultInput
	if len(args) > 0 {
		inputPath = args[0]
	}
	if !strings.HasSuffix(inputPath, inputExt) {
		return "", "", fmt.Errorf("input file name must end with %q: %s", inputExt, inputPath)
	}
	outputPath = strings.TrimSuffix(inputPath, inputExt) + outputExt
	return inputPath, outputPath, nil
}

// RunConvert converts the table named by args (defaulting to
// example.in) and writes the result next to it. Nothing is written if
// reading, parsing, or conversion fails.
func RunConvert(args []string, configPath string, verbose bool) error {
	logger := logging.New(logging.Level(verbose))

	inputPath, outputPath, err := ResolvePaths(args)
	if err != nil {
		return err
	}

	alpha, err := config.Load(configPath)
	if err != nil {
		return err
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	result, err := tapeconv.Convert(input,
		tapeconv.WithAlphabet(alpha),
		tapeconv.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer output.Close()

	if _, err := result.WriteTo(output); err != nil {
		return err
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSuccess(result.Target().String(), inputPath, outputPath)
	return nil
}

func printSuccess(model, inputPath, outputPath string) {
	p := termenv.ColorProfile()
	check := termenv.String("✔").Foreground(p.Color("2")).Bold()
	fmt.Printf("%s Converted to %s model.\n  Input:  %s\n  Output: %s\n",
		check, model, inputPath, outputPath)
}
