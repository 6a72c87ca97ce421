// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

const defaultCommand = "jupyter"

// defaultArgs render a notebook to Markdown next to the source file.
var defaultArgs = []string{"nbconvert", "--to", "markdown"}

// ToolError reports a converter run that exited with a failure. Stderr holds
// the tool's own diagnostic output, unmodified.
type ToolError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

// NBConvert converts notebooks by running jupyter nbconvert (or the
// configured replacement) as a subprocess. The call blocks until the tool
// exits; there is no timeout.
type NBConvert struct {
	command string
	args    []string
	exec    executor
}

// NewNBConvert creates a converter from cfg, filling in jupyter nbconvert
// defaults for empty fields.
func NewNBConvert(cfg types.ConverterConfig) *NBConvert {
	return newNBConvert(cfg, defaultExec)
}

func newNBConvert(cfg types.ConverterConfig, exec executor) *NBConvert {
	cmd := cfg.Command
	if cmd == "" {
		cmd = defaultCommand
	}
	args := cfg.Args
	if len(args) == 0 {
		args = defaultArgs
	}
	return &NBConvert{
		command: cmd,
		args:    append([]string(nil), args...),
		exec:    exec,
	}
}

// Command returns the command line used for notebookPath.
func (n *NBConvert) Command(notebookPath string) []string {
	line := make([]string, 0, len(n.args)+2)
	line = append(line, n.command)
	line = append(line, n.args...)
	return append(line, notebookPath)
}

// Convert runs the converter on notebookPath and locates its output.
func (n *NBConvert) Convert(notebookPath string) (types.ConversionResult, error) {
	if _, err := n.exec.LookPath(n.command); err != nil {
		return types.ConversionResult{}, fmt.Errorf("converter %s not found on PATH: %w", n.command, err)
	}

	line := n.Command(notebookPath)
	var stdout, stderr bytes.Buffer
	if err := n.exec.Run(line[0], line[1:], &stdout, &stderr); err != nil {
		return types.ConversionResult{}, &ToolError{
			Command: strings.Join(line[:len(line)-1], " "),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}

	return Locate(notebookPath)
}
