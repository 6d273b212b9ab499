package scope

// Sample is one measurement of the signal: a point in time and the
// amplitude observed at that time. Time is expected to be monotonically
// non-decreasing across appends; amplitude is unit-less and caller-defined.
type Sample struct {
	Time float64
	Amp  float64
}

// Signal is the append-only sample history. Times and amplitudes are kept
// in separate slices so the window selector can scan amplitude extremes
// over a contiguous range.
//
// Indices handed out by Signal are absolute: they keep counting from the
// first sample of the session even when bounded-history mode evicts old
// samples from the front. The first-ever sample survives eviction because
// the windowing math is anchored on its time.
//
// Signal does not serialize access; the owning Oscilloscope does.
type Signal struct {
	times   []float64
	amps    []float64
	dropped int    // samples evicted from the front
	first   Sample // first sample of the session, kept across eviction
}

// Append adds a sample to the end of the history.
func (s *Signal) Append(smp Sample) {
	if s.Total() == 0 {
		s.first = smp
	}
	s.times = append(s.times, smp.Time)
	s.amps = append(s.amps, smp.Amp)
}

// Clear empties the history, including the retained first sample.
func (s *Signal) Clear() {
	s.times = s.times[:0]
	s.amps = s.amps[:0]
	s.dropped = 0
	s.first = Sample{}
}

// Len returns the number of samples currently held in memory.
func (s *Signal) Len() int { return len(s.times) }

// Total returns the number of samples appended this session, including any
// evicted by bounded-history mode. The mean-period estimate uses Total so
// eviction does not skew it.
func (s *Signal) Total() int { return len(s.times) + s.dropped }

// At returns the sample at absolute index i. i must satisfy
// Dropped() <= i < Total().
func (s *Signal) At(i int) Sample {
	return Sample{Time: s.times[i-s.dropped], Amp: s.amps[i-s.dropped]}
}

// First returns the first sample of the session, whether or not it is
// still held.
func (s *Signal) First() Sample { return s.first }

// Last returns the most recently appended sample. Len must be positive.
func (s *Signal) Last() Sample {
	i := len(s.times) - 1
	return Sample{Time: s.times[i], Amp: s.amps[i]}
}

// Dropped returns the number of samples evicted from the front.
func (s *Signal) Dropped() int { return s.dropped }

// AmpRange returns the amplitude slice covering absolute indices
// [begin, end], both inclusive.
func (s *Signal) AmpRange(begin, end int) []float64 {
	return s.amps[begin-s.dropped : end-s.dropped+1]
}

// TrimBefore evicts all samples with absolute index below i. It never
// touches the retained first sample, so windowing math is unaffected.
func (s *Signal) TrimBefore(i int) {
	n := i - s.dropped
	if n <= 0 {
		return
	}
	if n > len(s.times) {
		n = len(s.times)
	}
	s.times = append(s.times[:0], s.times[n:]...)
	s.amps = append(s.amps[:0], s.amps[n:]...)
	s.dropped += n
}
