package cmd

import (
	"testing"

	sim "github.com/teller-sim/teller-sim/sim"
)

// makeTestConfig returns a small configuration for seed tests.
func makeTestConfig(seed int64) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.HorizonSeconds = 3600
	cfg.Seed = seed
	return cfg
}

// TestSeedOverride_DifferentSeeds_DifferentRuns verifies that when the
// CLI seed overrides the file seed, different seeds produce different
// wait-sample sequences.
func TestSeedOverride_DifferentSeeds_DifferentRuns(t *testing.T) {
	// GIVEN two configs whose seeds were overridden to different values
	cfg1 := makeTestConfig(100)
	cfg2 := makeTestConfig(200)

	// WHEN both run
	d1, err := sim.NewDriver(cfg1)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := sim.NewDriver(cfg2)
	if err != nil {
		t.Fatal(err)
	}
	s1 := d1.Run()
	s2 := d2.Run()

	// THEN the runs differ (at least one sample or the count differs)
	if len(s1) == 0 || len(s2) == 0 {
		t.Fatal("expected non-empty sample sequences")
	}
	anyDifferent := len(s1) != len(s2)
	for i := 0; !anyDifferent && i < min(len(s1), len(s2)); i++ {
		anyDifferent = s1[i] != s2[i]
	}
	if !anyDifferent {
		t.Error("different seeds produced identical runs — seed override is not working")
	}
}

// TestSeedOverride_SameSeed_IdenticalRun verifies that the same seed
// produces an identical run (determinism preserved through the CLI path).
func TestSeedOverride_SameSeed_IdenticalRun(t *testing.T) {
	// GIVEN two configs overridden to the same seed
	cfg1 := makeTestConfig(123)
	cfg2 := makeTestConfig(123)

	// WHEN both run via the same helper the CLI uses
	sum1 := runOne(cfg1)
	sum2 := runOne(cfg2)

	// THEN the summaries are identical
	if sum1 != sum2 {
		t.Errorf("same seed produced different summaries: %+v vs %+v", sum1, sum2)
	}
	if sum1.CustomerCount == 0 {
		t.Error("expected customers to be served over a one hour horizon")
	}
}

// TestRunOne_BothModes_Deterministic exercises the CLI's compare path:
// both disciplines with one seed, each reproducible.
func TestRunOne_BothModes_Deterministic(t *testing.T) {
	cfg := makeTestConfig(42)

	cfg.Mode = sim.ModeSharedQueue
	shared1, shared2 := runOne(cfg), runOne(cfg)
	cfg.Mode = sim.ModeSeparateQueues
	separate1, separate2 := runOne(cfg), runOne(cfg)

	if shared1 != shared2 {
		t.Errorf("shared_queue not deterministic: %+v vs %+v", shared1, shared2)
	}
	if separate1 != separate2 {
		t.Errorf("separate_queues not deterministic: %+v vs %+v", separate1, separate2)
	}
}
