/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package timespec implements arithmetic on POSIX-style (seconds, nanoseconds)
time values. Every operation is a pure function of its inputs, with the
overflow and timeout conventions that timed-wait code built on top of a tick
scheduler expects.
*/
package timespec

import (
	"errors"
	"fmt"
	"time"
)

// NanosPerSecond is the number of nanoseconds in one second.
const NanosPerSecond = int64(1000000000)

// Errors returned by timespec and tick operations.
var (
	// ErrInvalid means an argument was absent or failed the nanoseconds range invariant.
	ErrInvalid = errors.New("invalid timespec argument")
	// ErrTimedOut means the absolute time being checked is already in the past.
	// It is the expected outcome when probing an elapsed deadline, not a failure.
	ErrTimedOut = errors.New("absolute time is in the past")
	// ErrOverflow means subtraction produced a value that couldn't be normalized.
	ErrOverflow = errors.New("timespec arithmetic overflow")
)

/*
Timespec represents a duration or an absolute point in time as whole seconds
plus nanoseconds, like the C struct of the same name.
A normalized value keeps Nsec within [0, 1e9); the sign lives entirely in Sec.
For example -1ns is Sec=-1, Nsec=999999999.
*/
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Valid reports whether the nanoseconds field is within [0, 1e9).
// Sec is not checked, any representable value is allowed there.
func (ts Timespec) Valid() bool {
	return ts.Nsec >= 0 && ts.Nsec < NanosPerSecond
}

// Nanoseconds returns the value as a total nanosecond count.
// Values further than ~292 years from zero wrap silently.
func (ts Timespec) Nanoseconds() int64 {
	return ts.Sec*NanosPerSecond + ts.Nsec
}

// Duration returns the value as a time.Duration, with the same wrapping
// caveat as Nanoseconds.
func (ts Timespec) Duration() time.Duration {
	return time.Duration(ts.Nanoseconds())
}

// String representation of the timespec
func (ts Timespec) String() string {
	return fmt.Sprintf("Timespec(sec=%d, nsec=%d)", ts.Sec, ts.Nsec)
}

// FromNanoseconds converts a nanosecond count into a normalized Timespec.
// Negative counts borrow from the seconds field, so the result always
// satisfies Valid and converts back to exactly n.
func FromNanoseconds(n int64) Timespec {
	ts := Timespec{
		Sec:  n / NanosPerSecond,
		Nsec: n % NanosPerSecond,
	}

	// Truncating division leaves a negative remainder for negative n.
	if ts.Nsec < 0 {
		carry := ts.Nsec/NanosPerSecond + 1
		ts.Sec -= carry
		ts.Nsec += carry * NanosPerSecond
	}

	return ts
}

// FromDuration converts a time.Duration into a normalized Timespec.
func FromDuration(d time.Duration) Timespec {
	return FromNanoseconds(d.Nanoseconds())
}

// Compare orders two timespecs: -1 if x is earlier than y, 0 if equal,
// 1 if x is later. Seconds are compared first, nanoseconds break ties.
func Compare(x, y Timespec) int {
	if x.Sec != y.Sec {
		if x.Sec > y.Sec {
			return 1
		}
		return -1
	}
	if x.Nsec != y.Nsec {
		if x.Nsec > y.Nsec {
			return 1
		}
		return -1
	}
	return 0
}

// Add sums two timespecs in the signed 64-bit nanosecond domain and
// normalizes the result. The bool reports that the 64-bit sum went
// negative, which callers treat as overflow; the wrapped result is still
// returned so they can decide whether that is fatal.
func Add(x, y Timespec) (Timespec, bool) {
	total := x.Nanoseconds() + y.Nanoseconds()
	return FromNanoseconds(total), total < 0
}

// AddNanoseconds adds a raw nanosecond count to a timespec,
// with the same overflow convention as Add.
func AddNanoseconds(x Timespec, n int64) (Timespec, bool) {
	return Add(x, FromNanoseconds(n))
}

// Sub computes x - y for x at or after y.
// If x is earlier than y it returns ErrTimedOut: the caller was checking
// whether an absolute deadline has passed, and it has. Equal inputs give
// the zero duration. The post-borrow negative check should be unreachable
// once Compare has established x > y, but it is kept rather than assumed away.
func Sub(x, y Timespec) (Timespec, error) {
	switch Compare(x, y) {
	case -1:
		return Timespec{}, ErrTimedOut
	case 0:
		return Timespec{}, nil
	}

	diff := Timespec{
		Sec:  x.Sec - y.Sec,
		Nsec: x.Nsec - y.Nsec,
	}

	// Borrow one second if the nanoseconds went negative.
	if diff.Nsec < 0 {
		diff.Sec--
		diff.Nsec += NanosPerSecond
	}

	if diff.Nsec < 0 {
		return Timespec{}, fmt.Errorf("%w: nanoseconds negative after borrow", ErrOverflow)
	}
	return diff, nil
}
