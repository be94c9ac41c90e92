// Package scheduler paces the CPU against wall-clock time: it runs one
// video frame's worth of machine cycles, then sleeps whatever remains of
// the frame's real-time budget.
package scheduler

import "time"

const (
	// ClockSpeed is the DMG master clock in T-states per second.
	ClockSpeed = 4194304 // 4.194304 MHz

	// RefreshRate is the DMG's vertical refresh rate in Hz.
	RefreshRate = 59.7275

	// CyclesPerFrame is the number of T-states between vertical blanks.
	CyclesPerFrame = 70224
)

// refreshRate holds RefreshRate in a variable so the division below is
// computed at runtime; as an untyped constant expression it cannot be
// converted directly to time.Duration because the result isn't an exact
// integer.
var refreshRate float64 = RefreshRate

// FrameDuration is the real-time budget for one emulated frame.
var FrameDuration = time.Duration(float64(time.Second) / refreshRate)

// Ticker is one step of the machine; Tick returns the T-states it cost.
// Satisfied by *cpu.CPU.
type Ticker interface {
	Tick() int
}

// Frame runs t until at least CyclesPerFrame T-states have elapsed and
// returns the actual count, which may overshoot by up to one
// instruction's cost.
func Frame(t Ticker) int {
	elapsed := 0
	for elapsed < CyclesPerFrame {
		elapsed += t.Tick()
	}
	return elapsed
}

// Pace runs one frame of t and sleeps the remainder of FrameDuration. If
// emulation overran the budget the sleep is skipped entirely; the
// scheduler never tries to claw back lost time from later frames.
func Pace(t Ticker) {
	start := time.Now()
	Frame(t)
	if remaining := FrameDuration - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
}
