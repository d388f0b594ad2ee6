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

package tick

import (
	"fmt"
	"testing"

	"github.com/posixkit/ticktime/timespec"

	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	tests := []struct {
		hz               int64
		wantNanosPerTick int64
		wantErr          bool
	}{
		{hz: 100, wantNanosPerTick: 10000000},
		{hz: 1000, wantNanosPerTick: 1000000},
		{hz: 250, wantNanosPerTick: 4000000},
		{hz: 0, wantErr: true},
		{hz: -50, wantErr: true},
		{hz: 1000000000, wantErr: true},
		// 2ns per tick is the finest legal granularity
		{hz: 500000000, wantNanosPerTick: 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("hz=%d", tt.hz), func(t *testing.T) {
			r, err := NewRate(tt.hz)
			if tt.wantErr {
				require.ErrorIs(t, err, timespec.ErrInvalid)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.hz, r.Hz())
			require.Equal(t, tt.wantNanosPerTick, r.NanosPerTick())
			require.Equal(t, timespec.FromNanoseconds(tt.wantNanosPerTick), r.Interval())
		})
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		hz      int64
		in      timespec.Timespec
		want    Count
		wantErr bool
	}{
		{
			hz:   1000,
			in:   timespec.Timespec{Sec: 0, Nsec: 0},
			want: 0,
		},
		{
			// any nonzero remainder rounds up to the next full tick
			hz:   1000,
			in:   timespec.Timespec{Sec: 0, Nsec: 1},
			want: 1,
		},
		{
			hz:   1000,
			in:   timespec.Timespec{Sec: 0, Nsec: 1000000},
			want: 1,
		},
		{
			hz:   1000,
			in:   timespec.Timespec{Sec: 0, Nsec: 1000001},
			want: 2,
		},
		{
			hz:   1000,
			in:   timespec.Timespec{Sec: 1, Nsec: 0},
			want: 1000,
		},
		{
			hz:   1000,
			in:   timespec.Timespec{Sec: 2, Nsec: 500000000},
			want: 2500,
		},
		{
			hz:   100,
			in:   timespec.Timespec{Sec: 1, Nsec: 999999999},
			want: 200,
		},
		{
			hz:      1000,
			in:      timespec.Timespec{Sec: 0, Nsec: -1},
			wantErr: true,
		},
		{
			hz:      1000,
			in:      timespec.Timespec{Sec: 0, Nsec: timespec.NanosPerSecond},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("hz=%d %s", tt.hz, tt.in), func(t *testing.T) {
			r, err := NewRate(tt.hz)
			require.NoError(t, err)
			got, err := r.Ticks(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, timespec.ErrInvalid)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDeltaTicks(t *testing.T) {
	tests := []struct {
		hz          int64
		target, now timespec.Timespec
		want        Count
		wantErr     error
	}{
		{
			hz:     1000,
			target: timespec.Timespec{Sec: 11, Nsec: 0},
			now:    timespec.Timespec{Sec: 10, Nsec: 0},
			want:   1000,
		},
		{
			hz:      1000,
			target:  timespec.Timespec{Sec: 10, Nsec: 0},
			now:     timespec.Timespec{Sec: 11, Nsec: 0},
			wantErr: timespec.ErrTimedOut,
		},
		{
			hz:     1000,
			target: timespec.Timespec{Sec: 10, Nsec: 0},
			now:    timespec.Timespec{Sec: 10, Nsec: 0},
			want:   0,
		},
		{
			hz:     100,
			target: timespec.Timespec{Sec: 10, Nsec: 5000001},
			now:    timespec.Timespec{Sec: 10, Nsec: 0},
			want:   1,
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("hz=%d target=%s now=%s", tt.hz, tt.target, tt.now), func(t *testing.T) {
			r, err := NewRate(tt.hz)
			require.NoError(t, err)
			got, err := r.DeltaTicks(tt.target, tt.now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// Rates are plain values, so one run can exercise several of them side by side.
func TestMultipleRates(t *testing.T) {
	d := timespec.Timespec{Sec: 0, Nsec: 7000000} // 7ms
	for hz, want := range map[int64]Count{
		100:  1,
		250:  2,
		1000: 7,
	} {
		r, err := NewRate(hz)
		require.NoError(t, err)
		got, err := r.Ticks(d)
		require.NoError(t, err)
		require.Equal(t, want, got, "hz=%d", hz)
	}
}
