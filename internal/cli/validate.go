package cli

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/lviana15/tapeconv/internal/compiler"
)

// RunValidate parses the table named by args and reports the first
// header or line error, writing nothing. Line errors carry their
// 1-based line number.
func RunValidate(args []string) error {
	inputPath := DefaultInput
	if len(args) > 0 {
		inputPath = args[0]
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	machineType, transitions, err := compiler.NewParser().Parse(src)
	if err != nil {
		return err
	}

	p := termenv.ColorProfile()
	check := termenv.String("✔").Foreground(p.Color("2")).Bold()
	fmt.Printf("%s %s: valid %s table, %d transitions\n",
		check, inputPath, machineType, len(transitions))
	return nil
}
