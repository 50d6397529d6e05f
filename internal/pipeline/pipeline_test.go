package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingStep records whether it ran and optionally fails.
type recordingStep struct {
	name string
	err  error
	ran  bool
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Do(_ context.Context, _ *Run) error {
	s.ran = true
	return s.err
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		p := New(WithLogger(discardLogger()))
		for _, name := range []string{"first", "second", "third"} {
			p.AddStep(&orderedStep{name: name, order: &order})
		}

		run := NewRun("https://help.moengage.com/hc/articles/1")
		if err := p.Execute(context.Background(), run); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := []string{"first", "second", "third"}
		if len(order) != len(want) {
			t.Fatalf("executed %v, want %v", order, want)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
			}
		}
		if len(run.PerformedSteps) != 3 {
			t.Errorf("PerformedSteps = %v, want 3 entries", run.PerformedSteps)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		failErr := errors.New("step failed")
		failing := &recordingStep{name: "failing", err: failErr}
		after := &recordingStep{name: "after"}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(failing, after)

		run := NewRun("https://help.moengage.com/hc/articles/1")
		if err := p.Execute(context.Background(), run); !errors.Is(err, failErr) {
			t.Fatalf("Execute() error = %v, want %v", err, failErr)
		}
		if after.ran {
			t.Error("step after the failure ran, want pipeline stopped")
		}
		if !errors.Is(run.Err, failErr) {
			t.Errorf("run.Err = %v, want %v", run.Err, failErr)
		}
	})

	t.Run("continues on error when configured", func(t *testing.T) {
		t.Parallel()

		failErr := errors.New("step failed")
		failing := &recordingStep{name: "failing", err: failErr}
		after := &recordingStep{name: "after"}

		p := New(WithLogger(discardLogger()), WithContinueOnError(true))
		p.AddSteps(failing, after)

		run := NewRun("https://help.moengage.com/hc/articles/1")
		if err := p.Execute(context.Background(), run); err != nil {
			t.Fatalf("Execute() error = %v, want nil with continueOnError", err)
		}
		if !after.ran {
			t.Error("step after the failure did not run")
		}
		if !errors.Is(run.Err, failErr) {
			t.Errorf("run.Err = %v, want first error preserved", run.Err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		step := &recordingStep{name: "never"}
		p := New(WithLogger(discardLogger()))
		p.AddStep(step)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		run := NewRun("https://help.moengage.com/hc/articles/1")
		if err := p.Execute(ctx, run); !errors.Is(err, context.Canceled) {
			t.Fatalf("Execute() error = %v, want context.Canceled", err)
		}
		if step.ran {
			t.Error("step ran despite cancelled context")
		}
	})
}

// orderedStep appends its name to a shared slice when executed.
type orderedStep struct {
	name  string
	order *[]string
}

func (s *orderedStep) Name() string { return s.name }

func (s *orderedStep) Do(_ context.Context, _ *Run) error {
	*s.order = append(*s.order, s.name)
	return nil
}

func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	p := New(WithLogger(discardLogger()))
	p.AddSteps(&recordingStep{name: "fetch"}, &recordingStep{name: "analyze"})

	if p.StepCount() != 2 {
		t.Errorf("StepCount() = %d, want 2", p.StepCount())
	}
	names := p.StepNames()
	if len(names) != 2 || names[0] != "fetch" || names[1] != "analyze" {
		t.Errorf("StepNames() = %v, want [fetch analyze]", names)
	}
}
