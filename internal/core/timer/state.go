package timer

import "fmt"

// State is a point-in-time copy of the engine's timer state.
type State struct {
	Phase                Phase
	Elapsed              int
	Running              bool
	NotificationsEnabled bool
	HasNotification      bool
}

// Overtime reports whether the current phase has run past its nominal end.
func (state State) Overtime() bool {
	return state.Elapsed > 0
}

// Display returns the formatted clock face for the state.
func (state State) Display() string {
	return FormatDisplay(state.Elapsed)
}

// Controls lists the commands a front end should offer for the state.
type Controls struct {
	Play  bool
	Pause bool
	Reset bool
	Skip  bool
}

// Controls derives button visibility: Play while stopped, Pause while running,
// Skip only while running in overtime. Reset is always offered.
func (state State) Controls() Controls {
	return Controls{
		Play:  !state.Running,
		Pause: state.Running,
		Reset: true,
		Skip:  state.Running && state.Overtime(),
	}
}

// FormatDisplay renders signed elapsed seconds as [+]MM:SS. Remaining time is
// shown without a sign, overtime with a leading plus.
func FormatDisplay(elapsed int) string {
	sign := ""
	if elapsed > 0 {
		sign = "+"
	}
	magnitude := uint64(elapsed)
	if elapsed < 0 {
		// -(elapsed+1)+1 keeps math.MinInt from overflowing.
		magnitude = uint64(-(elapsed + 1)) + 1
	}
	return fmt.Sprintf("%s%02d:%02d", sign, magnitude/60, magnitude%60)
}
