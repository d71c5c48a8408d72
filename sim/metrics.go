package sim

// WaitSamples accumulates the queueing delay of every customer that
// reached service start before the horizon. Append-only; owned by the
// Driver for the duration of one run.
type WaitSamples struct {
	values []float64
}

// Append records one wait sample.
func (w *WaitSamples) Append(v float64) {
	w.values = append(w.values, v)
}

// Len returns the number of recorded samples.
func (w *WaitSamples) Len() int {
	return len(w.values)
}

// Values returns the recorded samples in insertion order. The returned
// slice is the collector's internal storage; callers must not mutate it.
func (w *WaitSamples) Values() []float64 {
	return w.values
}

// Summary aggregates one run's wait samples for final reporting.
type Summary struct {
	Mode          Mode
	CustomerCount int
	MeanWait      float64 // seconds
	MaxWait       float64 // seconds
}

// Summarize derives the summary statistics from the collected samples.
// An empty sample set yields zero mean and max, matching the source model.
func Summarize(mode Mode, samples *WaitSamples) Summary {
	s := Summary{Mode: mode, CustomerCount: samples.Len()}
	if s.CustomerCount == 0 {
		return s
	}
	var sum float64
	for _, v := range samples.Values() {
		sum += v
		if v > s.MaxWait {
			s.MaxWait = v
		}
	}
	s.MeanWait = sum / float64(s.CustomerCount)
	return s
}
