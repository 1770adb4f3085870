package core

import "math"

// Challenge is the catch window for the platform currently being repaired.
// At most one challenge is active at a time (single-lane bridge); ownership
// belongs to the repair session.
type Challenge struct {
	Active   bool
	Start    float64 // Engine clock time when the window opened
	Duration float64 // Window length in seconds (profile timing window)
}

// Expired reports whether the window has fully elapsed at the given time.
func (c Challenge) Expired(now float64) bool {
	return c.Active && now-c.Start >= c.Duration
}

// Progress returns the sweep position in [0, 1] at the given time.
func (c Challenge) Progress(now float64) float64 {
	if !c.Active || c.Duration <= 0 {
		return 0
	}
	return clamp01((now - c.Start) / c.Duration)
}

// EvaluateTiming scores a single catch input against a challenge window.
//
// The challenge models a cursor sweeping linearly from -barHalfWidth to
// +barHalfWidth over duration seconds, crossing the center at duration/2.
// Accuracy is 100%% exactly at center and falls off linearly to 0%% at
// either edge. The judgment follows the profile thresholds, boundaries
// inclusive.
//
// A timed-out challenge is equivalent to an input at exactly
// start+duration: both land on the window edge and judge as Miss.
func EvaluateTiming(inputTimestamp, startTimestamp, duration float64, th Thresholds, barHalfWidth float64) (Judgment, float64) {
	elapsed := clampF(inputTimestamp-startTimestamp, 0, duration)

	cursorOffset := lerp(-barHalfWidth, barHalfWidth, elapsed/duration)
	accuracy := math.Max(0, (barHalfWidth-math.Abs(cursorOffset))/barHalfWidth) * 100

	return th.Judge(accuracy), accuracy
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clampF(v, 0, 1)
}
