package rewrite

import (
	"strings"
	"testing"
)

func TestAddContractions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple contraction", in: "It is ready. You are done.", want: "it's ready. you're done."},
		{name: "cannot", in: "You cannot undo this.", want: "You can't undo this."},
		{name: "no partial word match", in: "The commitment is final.", want: "The commitment is final."},
		{name: "already contracted", in: "It's ready.", want: "It's ready."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AddContractions(tt.in); got != tt.want {
				t.Errorf("AddContractions(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSimplifyVerbosePhrases(t *testing.T) {
	t.Parallel()

	t.Run("wordy phrases become concise", func(t *testing.T) {
		t.Parallel()

		in := "You can configure the integration in order to sync data due to the fact that it improves reliability."
		got := SimplifyVerbosePhrases(in)

		if !strings.Contains(got, "to sync") {
			t.Errorf("SimplifyVerbosePhrases() = %q, want it to contain %q", got, "to sync")
		}
		if strings.Contains(got, "in order to sync") {
			t.Errorf("SimplifyVerbosePhrases() = %q, still contains %q", got, "in order to sync")
		}
		if !strings.Contains(got, "because") {
			t.Errorf("SimplifyVerbosePhrases() = %q, want it to contain %q", got, "because")
		}
		if strings.Contains(got, "due to the fact that") {
			t.Errorf("SimplifyVerbosePhrases() = %q, still contains %q", got, "due to the fact that")
		}
	})

	t.Run("redundant lead-ins are deleted with their whitespace", func(t *testing.T) {
		t.Parallel()

		got := SimplifyVerbosePhrases("Please be aware that quotas apply.")
		if got != "quotas apply." {
			t.Errorf("SimplifyVerbosePhrases() = %q, want %q", got, "quotas apply.")
		}
	})
}

func TestFixSpacing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "double space after period", in: "Done.  Next step.", want: "Done. Next step."},
		{name: "spaced em dash", in: "fast — really fast", want: "fast—really fast"},
		{name: "spaced hyphen", in: "fast - really fast", want: "fast-really fast"},
		{name: "clean text untouched", in: "Done. Next step.", want: "Done. Next step."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FixSpacing(tt.in); got != tt.want {
				t.Errorf("FixSpacing(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddOxfordCommas(t *testing.T) {
	t.Parallel()

	t.Run("missing comma inserted", func(t *testing.T) {
		t.Parallel()

		got, count := AddOxfordCommas("Send emails, texts and pushes.")
		if count != 1 {
			t.Fatalf("AddOxfordCommas() count = %d, want 1", count)
		}
		want := "Send emails, texts, and pushes."
		if got != want {
			t.Errorf("AddOxfordCommas() = %q, want %q", got, want)
		}
	})

	t.Run("correct list untouched", func(t *testing.T) {
		t.Parallel()

		in := "Send emails, texts, and pushes."
		got, count := AddOxfordCommas(in)
		if count != 0 {
			t.Fatalf("AddOxfordCommas() count = %d, want 0", count)
		}
		if got != in {
			t.Errorf("AddOxfordCommas() = %q, want input unchanged", got)
		}
	})
}

func TestFixHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "title case folded", in: "Create Your First Campaign", want: "Create your first campaign"},
		{name: "acronyms preserved", in: "Using The API And SDK", want: "Using the API and SDK"},
		{name: "three words lose punctuation", in: "Getting started here.", want: "Getting started here"},
		{name: "four words keep punctuation", in: "Getting started right here.", want: "Getting started right here."},
		{name: "colon stripped on short heading", in: "Next steps:", want: "Next steps"},
		{name: "single word", in: "overview", want: "Overview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FixHeading(tt.in); got != tt.want {
				t.Errorf("FixHeading(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
