package script

import (
	"context"
	"fmt"
	"log"

	"github.com/turtle-script/internal/commands"
	"github.com/turtle-script/internal/config"
)

// Result counts what a run did.
type Result struct {
	Executed int
	Skipped  int
}

// StepError reports the step that stopped a strict run.
type StepError struct {
	Index int // 1-based position in the step list
	Step  Step
	Err   error
}

func (e *StepError) Error() string {
	if e.Step.Line > 0 {
		return fmt.Sprintf("step %d (line %d, %q): %v", e.Index, e.Step.Line, e.Step.String(), e.Err)
	}
	return fmt.Sprintf("step %d (%q): %v", e.Index, e.Step.String(), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner executes script steps through a command registry.
type Runner struct {
	registry *commands.CommandRegistry
	mode     string
	verbose  bool
}

// NewRunner creates a runner. mode is config.ModeStrict or config.ModeLenient.
func NewRunner(registry *commands.CommandRegistry, mode string, verbose bool) *Runner {
	return &Runner{
		registry: registry,
		mode:     mode,
		verbose:  verbose,
	}
}

// Run executes steps in order. In strict mode the first failing step stops
// the run; in lenient mode it is logged and skipped.
func (r *Runner) Run(ctx context.Context, steps []Step) (Result, error) {
	var res Result
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if r.verbose {
			log.Printf("step %d: %s", i+1, step.String())
		}

		if err := r.registry.Execute(ctx, step.Cmd, step.Args); err != nil {
			stepErr := &StepError{Index: i + 1, Step: step, Err: err}
			if r.mode != config.ModeLenient {
				return res, stepErr
			}
			log.Printf("skipping %v", stepErr)
			res.Skipped++
			continue
		}
		res.Executed++
	}
	return res, nil
}
