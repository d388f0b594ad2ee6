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
	"errors"
	"fmt"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/posixkit/ticktime/timespec"
)

// flags
var (
	deltaTargetSecFlag  int64
	deltaTargetNsecFlag int64
	deltaNowSecFlag     int64
	deltaNowNsecFlag    int64
)

var deltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "Convert an absolute deadline and the current time into remaining ticks",
	Run:   runDeltaCmd,
}

func init() {
	RootCmd.AddCommand(deltaCmd)
	flags := deltaCmd.Flags()
	flags.Int64Var(&deltaTargetSecFlag, "target-sec", 0, "deadline seconds")
	flags.Int64Var(&deltaTargetNsecFlag, "target-nsec", 0, "deadline nanoseconds")
	flags.Int64Var(&deltaNowSecFlag, "now-sec", 0, "current time seconds")
	flags.Int64Var(&deltaNowNsecFlag, "now-nsec", 0, "current time nanoseconds")
}

func runDeltaCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()

	rate, err := rateFromFlags()
	if err != nil {
		log.Fatal(err)
	}
	target := timespec.Timespec{Sec: deltaTargetSecFlag, Nsec: deltaTargetNsecFlag}
	now := timespec.Timespec{Sec: deltaNowSecFlag, Nsec: deltaNowNsecFlag}
	log.Debugf("target=%s now=%s", target, now)

	count, err := rate.DeltaTicks(target, now)
	if errors.Is(err, timespec.ErrTimedOut) {
		fmt.Printf("%s deadline %s already passed at %s, wait 0 ticks\n", color.YellowString("[TIMEOUT]"), target, now)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s wait %d ticks (%v per tick)\n", color.GreenString("[ OK ]"), count, rate.Interval().Duration())
}
