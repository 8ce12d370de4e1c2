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
	"os"

	"github.com/ds4tools/ds4ctl/dualshock4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/sstallion/go-hid"
)

var (
	verbose    bool
	devicePath string
)

var rootCmd = &cobra.Command{
	Use:   "ds4ctl",
	Short: "Inspect, test and calibrate DualShock 4 controllers",
	Long: `ds4ctl drives the vendor feature report protocol of Sony DualShock 4
controllers (CUH-ZCT1 and CUH-ZCT2) over USB HID. It can read input
telemetry, run the calibration wizards, dump the calibration flash
mirror and send test and factory commands.

Calibration writes go to the volatile flash mirror unless permanent
mode is enabled first (see 'ds4ctl test permanent').`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if err := hid.Init(); err != nil {
			log.Fatalf("HID init failed: %v", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		hid.Exit()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log raw feature report traffic")
	rootCmd.PersistentFlags().StringVarP(&devicePath, "device", "d", "", "HID path of the controller to use (default: first found)")
}

// openDevice opens the controller selected by --device, or the first one
// attached.
func openDevice() *dualshock4.DualShock4 {
	var dev *dualshock4.DualShock4
	var err error
	if devicePath != "" {
		dev, err = dualshock4.Open(devicePath)
	} else {
		dev, err = dualshock4.OpenFirst()
	}
	if err != nil {
		log.Fatal(err)
	}
	return dev
}
