// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package week derives week identifiers ("2025-W42") and the weekly
// voting deadline from a wall-clock time. All calculations use the
// location of the time passed in.
//
// Week numbers count elapsed days since January 1 of the same year:
// n = ceil(days/7). January 1 itself is week 0, so this is not ISO 8601.
package week
