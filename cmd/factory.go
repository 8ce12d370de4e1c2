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
	"fmt"
	"strconv"

	"github.com/ds4tools/ds4ctl/dualshock4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var factoryTriggerSide = "both"

var factoryCmd = &cobra.Command{
	Use:   "factory",
	Short: "Send factory commands to the controller",
	Long:  "",
}

var factoryTriggerMinMaxCmd = &cobra.Command{
	Use:   "trigger-minmax start|save-min|save-max",
	Short: "Drive the factory-side trigger min/max calibration sequence",
	Long:  "",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var op dualshock4.TriggerMinMaxOp
		switch args[0] {
		case "start":
			op = dualshock4.TriggerMinMaxStart
		case "save-min":
			op = dualshock4.TriggerMinMaxSaveMin
		case "save-max":
			op = dualshock4.TriggerMinMaxSaveMax
		default:
			log.Fatalf("invalid operation %q, want start, save-min or save-max", args[0])
		}
		side, err := parseTriggerSide(factoryTriggerSide)
		if err != nil {
			log.Fatal(err)
		}

		dev := openDevice()
		defer dev.Close()

		if err := dev.SendFactoryCommand(dualshock4.TriggerMinMaxCalibrationCommand(op, side)); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Sent %s for %s trigger(s)\n", op, factoryTriggerSide)
	},
}

var factoryReadWordCmd = &cobra.Command{
	Use:   "read-word OFFSET",
	Short: "Read one 16 bit word from the flash mirror",
	Long:  "",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		offset, err := strconv.ParseUint(args[0], 0, 16)
		if err != nil {
			log.Fatalf("invalid offset %q: %v", args[0], err)
		}
		if offset >= dualshock4.FlashMirrorSize {
			log.Fatalf("offset %#x is past the end of the %#x byte mirror", offset, dualshock4.FlashMirrorSize)
		}

		dev := openDevice()
		defer dev.Close()

		if err := dev.SendFactoryCommand(dualshock4.SetIeepAddressCommand(uint16(offset))); err != nil {
			log.Fatal(err)
		}
		word, err := dev.GetIeepData()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%04x: %02x %02x\n", offset, word[0], word[1])
	},
}

func init() {
	rootCmd.AddCommand(factoryCmd)
	factoryCmd.AddCommand(factoryTriggerMinMaxCmd)
	factoryCmd.AddCommand(factoryReadWordCmd)
	factoryTriggerMinMaxCmd.Flags().StringVarP(&factoryTriggerSide, "side", "s", "both", "which trigger: left, right or both")
}
