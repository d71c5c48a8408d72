package sim

import "math/rand"

// TransactionType pairs a selection probability with the mean service
// time of one transaction class. Probabilities across a table are
// assumed to sum to 1 and are not renormalized at runtime.
type TransactionType struct {
	Probability        float64 `yaml:"probability"`
	MeanServiceSeconds float64 `yaml:"mean_service_seconds"`
}

// VariateStream draws every random quantity the simulation consumes
// (interarrival gaps, transaction types, service durations) from one
// shared pseudo-random stream seeded once per run. Passing the stream
// explicitly, instead of using the global rand source, keeps runs
// reproducible for a fixed seed.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type VariateStream struct {
	seed          int64
	rng           *rand.Rand
	ratePerSecond float64
}

// NewVariateStream creates a stream for the given seed and arrival rate
// expressed in customers per hour.
func NewVariateStream(seed int64, arrivalRatePerHour float64) *VariateStream {
	return &VariateStream{
		seed:          seed,
		rng:           rand.New(rand.NewSource(seed)),
		ratePerSecond: arrivalRatePerHour / 3600.0,
	}
}

// Seed returns the seed used to create this stream.
func (v *VariateStream) Seed() int64 {
	return v.seed
}

// DrawInterarrival returns the next exponential interarrival gap in
// seconds, with rate equal to the configured arrivals per second.
func (v *VariateStream) DrawInterarrival() float64 {
	return v.rng.ExpFloat64() / v.ratePerSecond
}

// DrawTransactionType picks a transaction class index from table by
// cumulative-probability walk over a uniform draw in [0, 1).
func (v *VariateStream) DrawTransactionType(table []TransactionType) int {
	return categoryForDraw(table, v.rng.Float64())
}

// DrawServiceTime returns an exponential service duration in seconds
// with the mean of the given transaction class.
func (v *VariateStream) DrawServiceTime(table []TransactionType, typeIdx int) float64 {
	return v.rng.ExpFloat64() * table[typeIdx].MeanServiceSeconds
}

// categoryForDraw returns the first index whose cumulative probability
// reaches r. When floating-point drift leaves the cumulative sum just
// under 1 (or the table underweights), the draw falls back to the last
// category instead of failing. Kept for compatibility with the source
// model; not a defect.
func categoryForDraw(table []TransactionType, r float64) int {
	acc := 0.0
	for i, tt := range table {
		acc += tt.Probability
		if r <= acc {
			return i
		}
	}
	return len(table) - 1
}
