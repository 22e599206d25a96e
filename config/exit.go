package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeConfig is the process status for startup failures
const ExitCodeConfig = 1

// Swapped in tests
var (
	exitOutput io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf prints a startup failure to stderr and exits with ExitCodeConfig
// Only for use before the terminal is taken over
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitOutput, format+"\n", args...)
	exitFunc(ExitCodeConfig)
}
