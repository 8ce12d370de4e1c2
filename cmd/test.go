// Copyright © 2025 ds4ctl authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/ds4tools/ds4ctl/dualshock4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	testTriggerSide = "both"
	testTriggerMin  = false
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Send test commands to the controller",
	Long:  "",
}

var testPermanentCmd = &cobra.Command{
	Use:   "permanent [on|off]",
	Short: "Show or switch permanent flash write mode",
	Long: `Without an argument, shows whether writes currently go to permanent
flash. With 'on' or 'off', switches the mode. When off, calibration
writes only reach the volatile mirror and are lost on power cycle.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		if len(args) == 0 {
			permanent, err := dev.ReadPermanent()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Permanent write mode: %t\n", permanent)
			return
		}

		var enable bool
		switch args[0] {
		case "on":
			enable = true
		case "off":
			enable = false
		default:
			log.Fatalf("invalid argument %q, want on or off", args[0])
		}
		if err := dev.SetTestCommand(dualshock4.SetPermanentCommand(enable)); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Permanent write mode set to %t\n", enable)
	},
}

var testRecordTriggerCmd = &cobra.Command{
	Use:   "record-trigger",
	Short: "Latch the current trigger reading as min or max travel",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		side, err := parseTriggerSide(testTriggerSide)
		if err != nil {
			log.Fatal(err)
		}

		dev := openDevice()
		defer dev.Close()

		if err := dev.SetTestCommand(dualshock4.RecordTriggerMinMaxCommand(side, testTriggerMin)); err != nil {
			log.Fatal(err)
		}
		point := "max"
		if testTriggerMin {
			point = "min"
		}
		fmt.Printf("Recorded %s travel point for %s trigger(s)\n", point, testTriggerSide)
	},
}

var testReloadTriggersCmd = &cobra.Command{
	Use:   "reload-triggers",
	Short: "Discard unsaved trigger calibration and reload it from flash",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		if err := dev.SetTestCommand(dualshock4.ReloadTriggerMinMaxCommand()); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Trigger calibration reloaded from flash")
	},
}

var testRawCmd = &cobra.Command{
	Use:   "raw HEX",
	Short: "Send a raw test command payload (for protocol exploration)",
	Long:  "",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		payload, err := hex.DecodeString(args[0])
		if err != nil {
			log.Fatalf("invalid hex string: %v", err)
		}

		dev := openDevice()
		defer dev.Close()

		if err := dev.SetTestCommand(dualshock4.RawTestCommand(payload)); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Sent test command % 02x\n", payload)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.AddCommand(testPermanentCmd)
	testCmd.AddCommand(testRecordTriggerCmd)
	testCmd.AddCommand(testReloadTriggersCmd)
	testCmd.AddCommand(testRawCmd)
	testRecordTriggerCmd.Flags().StringVarP(&testTriggerSide, "side", "s", "both", "which trigger: left, right or both")
	testRecordTriggerCmd.Flags().BoolVarP(&testTriggerMin, "min", "m", false, "record the min travel point instead of max")
}
