// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package week

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/lunch-vote/models"
)

const day = 24 * time.Hour

var ErrInvalidWeek = errors.New("invalid week identifier")

// CurrentWeek returns the week identifier containing now, in now's location.
// Weeks are 7-day buckets counted from Jan 1 (not ISO weeks):
// n = ceil(floor(elapsed since Jan 1 / 24h) / 7). Jan 1 itself is week 0.
func CurrentWeek(now time.Time) models.WeekID {
	year := now.Year()
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	days := int(now.Sub(startOfYear) / day)
	n := int(math.Ceil(float64(days) / 7))
	return Format(year, n)
}

// Format builds "<year>-W<n>".
func Format(year, n int) models.WeekID {
	return models.WeekID(fmt.Sprintf("%d-W%d", year, n))
}

// ParseWeek splits a week identifier into year and week number.
func ParseWeek(id models.WeekID) (year, n int, err error) {
	yearStr, numStr, ok := strings.Cut(string(id), "-W")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeek, id)
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeek, id)
	}
	n, err = strconv.Atoi(numStr)
	if err != nil || n < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeek, id)
	}
	return year, n, nil
}

// DateRange returns the first and last day of a week in loc.
// start = Jan 1 + (n-1)*7 days, end = start + 6 days.
func DateRange(id models.WeekID, loc *time.Location) (start, end time.Time, err error) {
	year, n, err := ParseWeek(id)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	start = startOfYear.Add(time.Duration(n-1) * 7 * day)
	end = start.Add(6 * day)
	return start, end, nil
}

// Display renders a week identifier as "Week N, YYYY".
func Display(id models.WeekID) string {
	year, n, err := ParseWeek(id)
	if err != nil {
		return string(id)
	}
	return fmt.Sprintf("Week %d, %d", n, year)
}
