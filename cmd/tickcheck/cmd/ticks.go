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
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/posixkit/ticktime/timespec"
)

// flags
var ticksDurationFlag time.Duration

var ticksCmd = &cobra.Command{
	Use:   "ticks",
	Short: "Convert a duration into scheduler ticks, rounding fractional ticks up",
	Run:   runTicksCmd,
}

func init() {
	RootCmd.AddCommand(ticksCmd)
	ticksCmd.Flags().DurationVarP(&ticksDurationFlag, "duration", "d", time.Second, "duration to convert, e.g. 1.5s or 250ms")
}

func runTicksCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()

	rate, err := rateFromFlags()
	if err != nil {
		log.Fatal(err)
	}
	if ticksDurationFlag < 0 {
		log.Fatalf("duration %v must not be negative", ticksDurationFlag)
	}
	d := timespec.FromDuration(ticksDurationFlag)
	log.Debugf("duration %v is %s", ticksDurationFlag, d)

	count, err := rate.Ticks(d)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(count)
}
