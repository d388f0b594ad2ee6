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
Package tick converts timespec durations and deadlines into scheduler ticks.
A tick is the fundamental time unit of an RTOS scheduler, an integer counter
incremented at a fixed configured rate. Conversions round up, so a requested
wait is never shorter than asked for.
*/
package tick

import (
	"errors"
	"fmt"

	"github.com/posixkit/ticktime/timespec"
)

// Count is a number of scheduler ticks, in the scheduler's native width.
// Conversions narrow into it without checking, matching the scheduler's
// own wraparound behavior.
type Count uint32

// Rate describes a scheduler tick rate. The zero value is not usable,
// construct one with NewRate.
type Rate struct {
	hz           int64
	nanosPerTick int64
}

// NewRate builds a Rate from a ticks-per-second frequency.
// The frequency must be positive and leave more than 1ns per tick, so the
// ceiling rounding in Ticks stays meaningful.
func NewRate(hz int64) (Rate, error) {
	if hz <= 0 {
		return Rate{}, fmt.Errorf("%w: tick rate %d must be positive", timespec.ErrInvalid, hz)
	}
	nanosPerTick := timespec.NanosPerSecond / hz
	if nanosPerTick <= 1 {
		return Rate{}, fmt.Errorf("%w: tick rate %d leaves %dns per tick, need more than 1", timespec.ErrInvalid, hz, nanosPerTick)
	}
	return Rate{hz: hz, nanosPerTick: nanosPerTick}, nil
}

// Hz returns the tick frequency in ticks per second.
func (r Rate) Hz() int64 {
	return r.hz
}

// NanosPerTick returns the duration of one tick in nanoseconds.
func (r Rate) NanosPerTick() int64 {
	return r.nanosPerTick
}

// Interval returns the duration of one tick as a timespec.
func (r Rate) Interval() timespec.Timespec {
	return timespec.FromNanoseconds(r.nanosPerTick)
}

func (r Rate) String() string {
	return fmt.Sprintf("Rate(%dHz, %dns/tick)", r.hz, r.nanosPerTick)
}

// Ticks converts a duration into a tick count, rounding any fractional tick
// up so the resulting wait is never shorter than the requested duration.
// The duration must be normalized, ErrInvalid otherwise.
// The result is accumulated in 64 bits and then truncated into Count.
func (r Rate) Ticks(d timespec.Timespec) (Count, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %s is not normalized", timespec.ErrInvalid, d)
	}

	total := uint64(r.hz) * uint64(d.Sec)

	// The nanoseconds contribution can't overflow: a valid timespec has
	// 0 <= Nsec < 1e9 and nanosPerTick > 1.
	nanoTicks := d.Nsec / r.nanosPerTick
	if d.Nsec%r.nanosPerTick != 0 {
		nanoTicks++
	}
	total += uint64(nanoTicks)

	return Count(total), nil
}

// DeltaTicks computes how many ticks remain between now and an absolute
// target time. ErrTimedOut means the target has already passed and the
// caller should not wait at all.
func (r Rate) DeltaTicks(target, now timespec.Timespec) (Count, error) {
	diff, err := timespec.Sub(target, now)
	if err != nil {
		if errors.Is(err, timespec.ErrOverflow) {
			return 0, fmt.Errorf("%w: %v", timespec.ErrInvalid, err)
		}
		return 0, err
	}
	return r.Ticks(diff)
}
