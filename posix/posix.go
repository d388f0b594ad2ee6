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
Package posix is the nullable edge of the timespec library. POSIX emulation
code passes timespecs by pointer and a pointer may be absent, so every
wrapper here rejects nil inputs up front and then hands the values to the
timespec and tick packages, which never see absence at all.
*/
package posix

import (
	"fmt"

	"github.com/posixkit/ticktime/tick"
	"github.com/posixkit/ticktime/timespec"
)

// ValidateTimespec reports whether ts is present and normalized.
// A nil input is simply invalid, never a fault.
func ValidateTimespec(ts *timespec.Timespec) bool {
	return ts != nil && ts.Valid()
}

// CompareTimespec orders two possibly-absent timespecs: an absent value
// sorts lowest, two absent values are equal. Present values are ordered
// by timespec.Compare.
func CompareTimespec(x, y *timespec.Timespec) int {
	if x == nil && y == nil {
		return 0
	}
	if y == nil {
		return 1
	}
	if x == nil {
		return -1
	}
	return timespec.Compare(*x, *y)
}

// AddTimespec sums two timespecs, rejecting absent inputs.
// The bool carries the overflow flag from timespec.Add.
func AddTimespec(x, y *timespec.Timespec) (timespec.Timespec, bool, error) {
	if x == nil || y == nil {
		return timespec.Timespec{}, false, fmt.Errorf("%w: nil operand", timespec.ErrInvalid)
	}
	result, overflow := timespec.Add(*x, *y)
	return result, overflow, nil
}

// AddTimespecNanoseconds adds a raw nanosecond count to a timespec,
// rejecting an absent input.
func AddTimespecNanoseconds(x *timespec.Timespec, n int64) (timespec.Timespec, bool, error) {
	if x == nil {
		return timespec.Timespec{}, false, fmt.Errorf("%w: nil operand", timespec.ErrInvalid)
	}
	result, overflow := timespec.AddNanoseconds(*x, n)
	return result, overflow, nil
}

// SubTimespec computes x - y, rejecting absent inputs. ErrTimedOut and
// ErrOverflow pass through from timespec.Sub.
func SubTimespec(x, y *timespec.Timespec) (timespec.Timespec, error) {
	if x == nil || y == nil {
		return timespec.Timespec{}, fmt.Errorf("%w: nil operand", timespec.ErrInvalid)
	}
	return timespec.Sub(*x, *y)
}

// TimespecToTicks converts a duration to ticks at rate r, rejecting an
// absent input.
func TimespecToTicks(r tick.Rate, d *timespec.Timespec) (tick.Count, error) {
	if d == nil {
		return 0, fmt.Errorf("%w: nil duration", timespec.ErrInvalid)
	}
	return r.Ticks(*d)
}

// AbsoluteTimespecToDeltaTicks converts an absolute deadline and the current
// time into the number of ticks still to wait, rejecting absent inputs.
// ErrTimedOut means the deadline has already passed.
func AbsoluteTimespecToDeltaTicks(r tick.Rate, target, now *timespec.Timespec) (tick.Count, error) {
	if target == nil || now == nil {
		return 0, fmt.Errorf("%w: nil operand", timespec.ErrInvalid)
	}
	return r.DeltaTicks(*target, *now)
}

// Strnlen returns the length of a NUL-terminated byte string, scanning at
// most max bytes. A nil input has length 0.
func Strnlen(b []byte, max int) int {
	n := 0
	for n < len(b) && n < max && b[n] != 0 {
		n++
	}
	return n
}
