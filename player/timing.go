package player

import "time"

// StepDuration is the length of one 8th-note strum step: (60000/bpm)/2 ms.
func StepDuration(bpm float64) time.Duration {
	return time.Duration(60000 / bpm / 2 * float64(time.Millisecond))
}

// SwingOffset is the delay applied to a strum step for a swung feel. Odd
// steps are pushed late by swing * (60/bpm)/2 seconds; even steps land
// straight.
func SwingOffset(step int, bpm, swing float64) time.Duration {
	if step%2 == 0 {
		return 0
	}
	return time.Duration(swing * (60 / bpm) / 2 * float64(time.Second))
}
