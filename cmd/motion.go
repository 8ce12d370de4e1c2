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

var motionCmd = &cobra.Command{
	Use:   "motion",
	Short: "Read or write the motion sensor calibration blob",
	Long: `The motion sensor calibration is a fixed 40 byte blob whose internal
layout is firmware specific. It is transferred verbatim, which is enough
to back it up and restore it.`,
}

var motionGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Read the motion sensor calibration blob",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		m, err := dev.ReadMotionCalibrationData()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hex.EncodeToString(m.Bytes()))
	},
}

var motionSetCmd = &cobra.Command{
	Use:   "set HEX",
	Short: "Write a motion sensor calibration blob (80 hex chars)",
	Long:  "",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := hex.DecodeString(args[0])
		if err != nil {
			log.Fatalf("invalid hex string: %v", err)
		}
		m, err := dualshock4.ParseMotionCalibration(data)
		if err != nil {
			log.Fatal(err)
		}

		dev := openDevice()
		defer dev.Close()

		if err := dev.SetMotionCalibrationData(m); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Motion calibration written")
	},
}

func init() {
	rootCmd.AddCommand(motionCmd)
	motionCmd.AddCommand(motionGetCmd)
	motionCmd.AddCommand(motionSetCmd)
}
