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
	"os/signal"
	"strings"
	"time"

	"github.com/ds4tools/ds4ctl/dualshock4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var inputWatch = false

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Show the current input state of the controller",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		if !inputWatch {
			data, err := dev.ReadLastData()
			if err != nil {
				log.Fatal(err)
			}
			if data == nil {
				fmt.Println("No input data available, is the controller idle?")
				return
			}
			printInput(data)
			return
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()

		fmt.Println("Watching input, press Ctrl-C to stop ...")
		for {
			select {
			case <-stop:
				fmt.Println()
				return
			case <-ticker.C:
				data, err := dev.ReadLastData()
				if err != nil {
					log.Fatal(err)
				}
				if data != nil {
					fmt.Printf("\r%s", inputLine(data))
				}
			}
		}
	},
}

func printInput(data *dualshock4.InputReport) {
	left := data.LeftStick()
	right := data.RightStick()
	fmt.Printf("Left stick:   %s (%.3f, %.3f)\n", left, left.NormalizedX(), left.NormalizedY())
	fmt.Printf("Right stick:  %s (%.3f, %.3f)\n", right, right.NormalizedX(), right.NormalizedY())
	fmt.Printf("D-Pad:        %s\n", data.DPad())
	fmt.Printf("Buttons:      %s\n", buttonList(data))
	fmt.Printf("L2 trigger:   %d\n", data.L2Trigger())
	fmt.Printf("R2 trigger:   %d\n", data.R2Trigger())
	fmt.Printf("Battery:      %d\n", data.Battery())
	fmt.Printf("Counter:      %d, timestamp %d\n", data.Counter(), data.Timestamp())
	fmt.Printf("Gyroscope:    %6d %6d %6d\n", data.GyroscopeX(), data.GyroscopeY(), data.GyroscopeZ())
	fmt.Printf("Acceleration: %6d %6d %6d\n", data.AccelerometerX(), data.AccelerometerY(), data.AccelerometerZ())
}

func inputLine(data *dualshock4.InputReport) string {
	return fmt.Sprintf("L %s R %s dpad %-10s L2 %3d R2 %3d [%s]    ",
		data.LeftStick(), data.RightStick(), data.DPad(),
		data.L2Trigger(), data.R2Trigger(), buttonList(data))
}

func buttonList(data *dualshock4.InputReport) string {
	var pressed []string
	for _, b := range []struct {
		name string
		on   bool
	}{
		{"triangle", data.Triangle()},
		{"circle", data.Circle()},
		{"cross", data.Cross()},
		{"square", data.Square()},
		{"L1", data.L1()},
		{"R1", data.R1()},
		{"L2", data.L2()},
		{"R2", data.R2()},
		{"L3", data.L3()},
		{"R3", data.R3()},
		{"share", data.Share()},
		{"options", data.Options()},
		{"tpad", data.TPadClick()},
		{"ps", data.PS()},
	} {
		if b.on {
			pressed = append(pressed, b.name)
		}
	}
	return strings.Join(pressed, " ")
}

func init() {
	rootCmd.AddCommand(inputCmd)
	inputCmd.Flags().BoolVarP(&inputWatch, "watch", "w", false, "continuously print input state")
}
