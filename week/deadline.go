// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package week

import "time"

// Deadline is the weekly moment voting closes, in local time.
type Deadline struct {
	Weekday time.Weekday
	Hour    int
}

// DefaultDeadline closes voting Fridays at 15:00.
var DefaultDeadline = Deadline{Weekday: time.Friday, Hour: 15}

// Next returns the first deadline strictly after now, in now's location.
// At exactly the deadline, voting is already closed and the following
// week's deadline is returned.
func (d Deadline) Next(now time.Time) time.Time {
	offset := int(d.Weekday - now.Weekday())
	if offset < 0 {
		offset += 7
	}
	y, m, dd := now.Date()
	next := time.Date(y, m, dd+offset, d.Hour, 0, 0, 0, now.Location())
	if !now.Before(next) {
		next = time.Date(y, m, dd+offset+7, d.Hour, 0, 0, 0, now.Location())
	}
	return next
}

// CanVote reports whether now is before the next deadline.
func (d Deadline) CanVote(now time.Time) bool {
	return now.Before(d.Next(now))
}

// VotingDeadline is the next Friday 15:00 relative to now.
func VotingDeadline(now time.Time) time.Time {
	return DefaultDeadline.Next(now)
}

// CanVote reports whether voting is open at now under DefaultDeadline.
func CanVote(now time.Time) bool {
	return DefaultDeadline.CanVote(now)
}

// HoursUntil returns whole hours from now to deadline, never negative.
func HoursUntil(now, deadline time.Time) int {
	if !now.Before(deadline) {
		return 0
	}
	return int(deadline.Sub(now) / time.Hour)
}
