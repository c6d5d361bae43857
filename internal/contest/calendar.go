// Package contest provides the fixed contest clock and calendar phase
// logic. Puzzles unlock at midnight US Eastern Standard Time year-round;
// the contest never observes daylight saving, so the clock is a constant
// UTC-5 offset rather than a location lookup.
package contest

import "time"

// referenceZone is the contest's fixed UTC-5 clock.
var referenceZone = time.FixedZone("AoC", -5*60*60)

// Reference converts an instant to the contest's reference clock.
func Reference(t time.Time) time.Time {
	return t.In(referenceZone)
}

// Midnight returns the unlock instant for a puzzle day: midnight of
// December <day> of the contest year, on the reference clock.
func Midnight(year, day int) time.Time {
	return time.Date(year, time.December, day, 0, 0, 0, 0, referenceZone)
}

// Phase describes where an instant falls in a contest year's calendar.
type Phase int

const (
	// PhaseIdle covers everything outside December 1-25 of the year.
	PhaseIdle Phase = iota
	// PhaseActive covers December 1-25 outside the burst window.
	PhaseActive
	// PhaseBurst covers the first hour after a puzzle unlock
	// (00:00-01:00 reference time, inclusive on both ends), when the
	// leaderboard is at its most volatile.
	PhaseBurst
)

func (p Phase) String() string {
	switch p {
	case PhaseBurst:
		return "burst"
	case PhaseActive:
		return "active"
	default:
		return "idle"
	}
}

// PhaseAt classifies an instant against the given contest year.
func PhaseAt(now time.Time, year int) Phase {
	now = Reference(now)

	start := Midnight(year, 1)
	end := Midnight(year, 26)
	if now.Before(start) || !now.Before(end) {
		return PhaseIdle
	}

	hour, min, sec := now.Clock()
	if hour*3600+min*60+sec <= 3600 {
		return PhaseBurst
	}
	return PhaseActive
}
