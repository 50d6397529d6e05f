package metrics

import "testing"

func TestTechnicalTerms(t *testing.T) {
	t.Parallel()

	t.Run("closed vocabulary hits are collected sorted", func(t *testing.T) {
		t.Parallel()

		got := TechnicalTerms("Use the webhook API to send a payload.")
		want := []string{"api", "payload", "webhook"}
		if len(got) != len(want) {
			t.Fatalf("TechnicalTerms() = %v, want %v", got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("term[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("long tokens count regardless of the vocabulary", func(t *testing.T) {
		t.Parallel()

		got := TechnicalTerms("We support internationalization everywhere.")
		if len(got) != 1 || got[0] != "internationalization" {
			t.Errorf("TechnicalTerms() = %v, want [internationalization]", got)
		}
	})

	t.Run("duplicates collapse to one entry", func(t *testing.T) {
		t.Parallel()

		got := TechnicalTerms("API api API")
		if len(got) != 1 || got[0] != "api" {
			t.Errorf("TechnicalTerms() = %v, want [api]", got)
		}
	})

	t.Run("plain prose finds nothing", func(t *testing.T) {
		t.Parallel()

		if got := TechnicalTerms("Send your first campaign today."); len(got) != 0 {
			t.Errorf("TechnicalTerms() = %v, want empty", got)
		}
	})
}

func TestFoundJargon(t *testing.T) {
	t.Parallel()

	got := FoundJargon("The API returns JSON.")
	want := []string{
		"'api' should be explained as 'Application Programming Interface (API)'",
		"'json' should be explained as 'data format'",
	}
	if len(got) != len(want) {
		t.Fatalf("FoundJargon() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("statement[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	folded := Fold("Before you begin, install the CLI.")
	if !ContainsAny(folded, PrerequisiteKeywords) {
		t.Error("ContainsAny() = false, want true for a prerequisites sentence")
	}
	if ContainsAny(folded, UseCaseKeywords) {
		t.Error("ContainsAny() = true, want false for use-case keywords")
	}
}

func TestCountPresent(t *testing.T) {
	t.Parallel()

	folded := Fold("For example, this scenario is a sample.")
	// "example", "sample", and "scenario" each count once, however often
	// they appear.
	if got := CountPresent(folded, ExampleIndicators); got != 3 {
		t.Errorf("CountPresent() = %d, want 3", got)
	}

	if got := CountPresent("nothing here", ExampleIndicators); got != 0 {
		t.Errorf("CountPresent() = %d, want 0", got)
	}
}
