//go:build integration
// +build integration

package util

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"
)

// Result holds the outcome of an external command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
	Err      error
}

// RunLogged runs bin, logging start and end, and collects its output.
// A non-zero exit is reported through ExitCode and Err.
func RunLogged(ctx context.Context, bin string, args ...string) Result {
	cmd := exec.CommandContext(ctx, bin, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	slog.Info("exec start", "cmd", bin, "args", args)
	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	slog.Info("exec done", "cmd", bin, "code", exitCode, "dur", duration, "err", err)

	return Result{
		Stdout:   outBuf.Bytes(),
		Stderr:   errBuf.Bytes(),
		ExitCode: exitCode,
		Duration: duration,
		Err:      err,
	}
}

// BuildBinary compiles the main package pkg into outDir and returns the
// binary path.
func BuildBinary(ctx context.Context, pkg, outDir string) (string, error) {
	bin := filepath.Join(outDir, filepath.Base(pkg))
	res := RunLogged(ctx, "go", "build", "-o", bin, pkg)
	if res.Err != nil {
		return "", fmt.Errorf("go build %s: %w\n%s", pkg, res.Err, res.Stderr)
	}
	return bin, nil
}
