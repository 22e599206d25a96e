package config

import (
	"bytes"
	"testing"
)

func TestExitf(t *testing.T) {
	var out bytes.Buffer
	code := -1
	origOutput, origExit := exitOutput, exitFunc
	exitOutput, exitFunc = &out, func(c int) { code = c }
	defer func() { exitOutput, exitFunc = origOutput, origExit }()

	Exitf("pigroll: %v", ErrInvalidConfig)

	if code != ExitCodeConfig {
		t.Errorf("exit code = %d, want %d", code, ExitCodeConfig)
	}
	if got, want := out.String(), "pigroll: invalid config\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
