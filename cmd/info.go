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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show calibration status of the controller",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		flag, err := dev.ReadCalibrationFlag()
		if err != nil {
			log.Fatal(err)
		}
		permanent, err := dev.ReadPermanent()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Device:                    %s\n", dev.Path())
		fmt.Printf("Accelerometer calibrated:  %t\n", flag.AccelerometerOK())
		fmt.Printf("Gyroscope calibrated:      %t\n", flag.GyroscopeOK())
		fmt.Printf("Stick min/max calibrated:  %t\n", flag.StickMinMaxOK())
		fmt.Printf("Stick centers calibrated:  %t\n", flag.StickCenterOK())
		fmt.Printf("Left trigger calibrated:   %t\n", flag.L2OK())
		fmt.Printf("Right trigger calibrated:  %t\n", flag.R2OK())
		fmt.Printf("Permanent write mode:      %t\n", permanent)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
