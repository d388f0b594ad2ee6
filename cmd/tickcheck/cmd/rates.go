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

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/posixkit/ticktime/tick"
	"github.com/posixkit/ticktime/timespec"
)

// common FreeRTOS-style configTICK_RATE_HZ choices
var defaultRates = []int64{100, 250, 500, 1000}

var ratesCmd = &cobra.Command{
	Use:   "rates [hz...]",
	Short: "Show tick granularity and rounded wait lengths for a set of tick rates",
	Run:   runRatesCmd,
}

func init() {
	RootCmd.AddCommand(ratesCmd)
}

func runRatesCmd(_ *cobra.Command, args []string) {
	ConfigureVerbosity()

	rates := defaultRates
	if len(args) > 0 {
		rates = make([]int64, 0, len(args))
		for _, arg := range args {
			hz, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				log.Fatalf("bad tick rate %q: %v", arg, err)
			}
			rates = append(rates, hz)
		}
	}

	// waits worth showing rounding behavior for
	waits := []timespec.Timespec{
		{Sec: 0, Nsec: 1},
		{Sec: 0, Nsec: 1000000},
		{Sec: 0, Nsec: 100000000},
		{Sec: 1, Nsec: 0},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("rate(hz)", "ns/tick", "tick interval", "ticks(1ns)", "ticks(1ms)", "ticks(100ms)", "ticks(1s)")
	for _, hz := range rates {
		rate, err := tick.NewRate(hz)
		if err != nil {
			log.Fatal(err)
		}
		row := []string{
			strconv.FormatInt(rate.Hz(), 10),
			strconv.FormatInt(rate.NanosPerTick(), 10),
			fmt.Sprintf("%v", rate.Interval().Duration()),
		}
		for _, w := range waits {
			count, err := rate.Ticks(w)
			if err != nil {
				log.Fatal(err)
			}
			row = append(row, strconv.FormatUint(uint64(count), 10))
		}
		table.Append(row)
	}
	table.Render()
}
