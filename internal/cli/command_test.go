package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/fsprime/fsprime/internal/fsprime"
)

// newTestFlags mirrors the Execute flag surface on an isolated flag set.
func newTestFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("fsprime", pflag.ContinueOnError)
	flags.IntP("workers", "w", 0, "")
	flags.BoolP("staged", "s", false, "")
	flags.Duration("progress-interval", fsprime.DefaultProgressInterval, "")
	flags.StringP("output", "o", "table", "")

	return flags
}

// TestBindEnvOverridesDefaults verifies FSPRIME_* variables beat flag
// defaults, including a hyphenated flag name mapping to underscores.
func TestBindEnvOverridesDefaults(t *testing.T) {
	t.Setenv("FSPRIME_WORKERS", "8")
	t.Setenv("FSPRIME_PROGRESS_INTERVAL", "2s")

	flags := newTestFlags(t)
	if err := flags.Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	vpr, err := bindEnv(flags)
	if err != nil {
		t.Fatalf("bindEnv: %v", err)
	}

	if got := vpr.GetInt("workers"); got != 8 {
		t.Errorf("expected workers 8 from environment, got %d", got)
	}
	if got := vpr.GetDuration("progress-interval"); got != 2*time.Second {
		t.Errorf("expected progress interval 2s from environment, got %v", got)
	}
}

// TestBindEnvFlagWins verifies an explicitly set flag beats the environment.
func TestBindEnvFlagWins(t *testing.T) {
	t.Setenv("FSPRIME_WORKERS", "8")
	t.Setenv("FSPRIME_STAGED", "true")

	flags := newTestFlags(t)
	if err := flags.Parse([]string{"--workers", "3", "--staged=false"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	vpr, err := bindEnv(flags)
	if err != nil {
		t.Fatalf("bindEnv: %v", err)
	}

	if got := vpr.GetInt("workers"); got != 3 {
		t.Errorf("expected workers 3 from flag, got %d", got)
	}
	if vpr.GetBool("staged") {
		t.Error("expected staged=false from flag to beat environment")
	}
}

// TestBindEnvDefaultsSurvive verifies flag defaults come through untouched
// when neither flag nor environment sets a value.
func TestBindEnvDefaultsSurvive(t *testing.T) {
	flags := newTestFlags(t)
	if err := flags.Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	vpr, err := bindEnv(flags)
	if err != nil {
		t.Fatalf("bindEnv: %v", err)
	}

	if got := vpr.GetString("output"); got != "table" {
		t.Errorf("expected default output table, got %q", got)
	}
	if got := vpr.GetInt("workers"); got != 0 {
		t.Errorf("expected default workers 0, got %d", got)
	}
	if got := vpr.GetDuration("progress-interval"); got != fsprime.DefaultProgressInterval {
		t.Errorf("expected default progress interval, got %v", got)
	}
}
