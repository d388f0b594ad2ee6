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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/posixkit/ticktime/timespec"
)

// flags
var (
	validateSecFlag  int64
	validateNsecFlag int64
)

var okString = color.GreenString("[ OK ]")
var failString = color.RedString("[FAIL]")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a (sec, nsec) pair is a normalized timespec",
	Run:   runValidateCmd,
}

func init() {
	RootCmd.AddCommand(validateCmd)
	flags := validateCmd.Flags()
	flags.Int64Var(&validateSecFlag, "sec", 0, "seconds")
	flags.Int64Var(&validateNsecFlag, "nsec", 0, "nanoseconds")
}

func runValidateCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()

	ts := timespec.Timespec{Sec: validateSecFlag, Nsec: validateNsecFlag}
	if !ts.Valid() {
		fmt.Printf("%s %s: nanoseconds must be within [0, %d)\n", failString, ts, timespec.NanosPerSecond)
		normalized := timespec.FromNanoseconds(ts.Nanoseconds())
		fmt.Printf("       normalized form is %s\n", normalized)
		os.Exit(1)
	}
	fmt.Printf("%s %s\n", okString, ts)
}
