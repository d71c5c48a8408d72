package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects the teller topology.
type Mode string

const (
	// ModeSharedQueue models one shared line feeding all tellers:
	// a single Resource with capacity equal to the teller count.
	ModeSharedQueue Mode = "shared_queue"
	// ModeSeparateQueues models one independent line per teller:
	// a pool of capacity-1 Resources with shortest-queue routing.
	ModeSeparateQueues Mode = "separate_queues"
)

// Config holds everything one simulation run consumes.
type Config struct {
	Mode               Mode              `yaml:"mode"`
	ArrivalRatePerHour float64           `yaml:"arrival_rate_per_hour"`
	TellerCount        int               `yaml:"teller_count"`
	HorizonSeconds     float64           `yaml:"horizon_seconds"`
	TransactionTypes   []TransactionType `yaml:"transaction_types"`
	Seed               int64             `yaml:"seed"`
}

// DefaultConfig returns the reference bank model: 180 customers per hour
// across 6 tellers over an 8 hour day, with four transaction classes.
func DefaultConfig() Config {
	return Config{
		Mode:               ModeSharedQueue,
		ArrivalRatePerHour: 180,
		TellerCount:        6,
		HorizonSeconds:     8 * 60 * 60,
		TransactionTypes: []TransactionType{
			{Probability: 0.15, MeanServiceSeconds: 45},
			{Probability: 0.29, MeanServiceSeconds: 75},
			{Probability: 0.32, MeanServiceSeconds: 120},
			{Probability: 0.24, MeanServiceSeconds: 180},
		},
		Seed: 12345,
	}
}

// LoadConfig reads a YAML configuration file. Fields absent from the
// file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration before any event is scheduled.
// Transaction probabilities summing to 1 is deliberately NOT enforced:
// the categorical draw falls back to the last class when the cumulative
// sum runs out (see categoryForDraw).
func (c Config) Validate() error {
	switch c.Mode {
	case ModeSharedQueue, ModeSeparateQueues:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.ArrivalRatePerHour <= 0 {
		return fmt.Errorf("arrival_rate_per_hour must be positive, got %v", c.ArrivalRatePerHour)
	}
	if c.TellerCount <= 0 {
		return fmt.Errorf("teller_count must be positive, got %d", c.TellerCount)
	}
	if c.HorizonSeconds <= 0 {
		return fmt.Errorf("horizon_seconds must be positive, got %v", c.HorizonSeconds)
	}
	if len(c.TransactionTypes) == 0 {
		return fmt.Errorf("transaction_types must not be empty")
	}
	for i, tt := range c.TransactionTypes {
		if tt.Probability < 0 {
			return fmt.Errorf("transaction_types[%d]: probability must be non-negative, got %v", i, tt.Probability)
		}
		if tt.MeanServiceSeconds <= 0 {
			return fmt.Errorf("transaction_types[%d]: mean_service_seconds must be positive, got %v", i, tt.MeanServiceSeconds)
		}
	}
	return nil
}
