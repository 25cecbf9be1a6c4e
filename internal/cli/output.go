package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // unexpected failure
	ExitCommandError = 2 // bad arguments, unknown model or variable, unreadable run file
)

// ExitError carries the exit code a command failed with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error, ExitFailure by default.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// BeliefReport is the printed result for one variable.
type BeliefReport struct {
	Name          string             `json:"name"`
	Probabilities map[string]float64 `json:"probabilities"`
	values        []string
	// Log10Odds is log10 P(values[1]) / P(values[0]) for binary variables.
	Log10Odds *float64 `json:"log10_odds,omitempty"`
}

// RunReport is the printed result of a run.
type RunReport struct {
	Model    string            `json:"model"`
	Steps    int               `json:"steps"`
	Evidence map[string]string `json:"evidence"`
	Beliefs  []BeliefReport    `json:"beliefs"`
}

// writeReport prints r in the requested format.
func writeReport(w io.Writer, format string, r *RunReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "model %s, %d steps\n", r.Model, r.Steps)
	for _, b := range r.Beliefs {
		parts := make([]string, len(b.values))
		for i, v := range b.values {
			parts[i] = fmt.Sprintf("%s=%.4f", v, b.Probabilities[v])
		}
		line := fmt.Sprintf("  %-12s %s", b.Name, strings.Join(parts, " "))
		if b.Log10Odds != nil {
			line += fmt.Sprintf("  (log10 odds %+.2f)", *b.Log10Odds)
		}
		fmt.Fprintln(w, line)
	}

	return nil
}

// finiteOrNil keeps ±Inf and NaN out of JSON output.
func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
