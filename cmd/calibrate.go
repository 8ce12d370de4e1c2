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
	"time"

	"github.com/ds4tools/ds4ctl/dualshock4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var calibrateSide = "both"

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Run a calibration wizard on the controller",
	Long: `Calibration is driven by the controller itself: the wizard sends
commands and the firmware records samples from its own sensors.
Results are written to the flash mirror; enable permanent mode first
('ds4ctl test permanent on') to make them stick across power cycles.`,
}

var calibrateStickCenterCmd = &cobra.Command{
	Use:   "stick-center",
	Short: "Calibrate the analog stick center positions",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		device := dualshock4.AnalogStickDevice(dualshock4.AnalogStickCenter)
		if err := dev.SetCalibrationCommand(dualshock4.StartCalibration(device)); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Release both sticks, then press TRIANGLE to record a sample.")
		fmt.Println("Record a few samples and press CROSS to finish.")

		err := wizardLoop(dev, func() error {
			if err := dev.SetCalibrationCommand(dualshock4.MeasureCalibration(device)); err != nil {
				return err
			}
			fmt.Println("Sample recorded")
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
		if err := dev.SetCalibrationCommand(dualshock4.StopCalibration(device)); err != nil {
			log.Fatal(err)
		}
		finishCalibration(dev)
	},
}

var calibrateStickMinMaxCmd = &cobra.Command{
	Use:   "stick-minmax",
	Short: "Calibrate the analog stick travel ranges",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		device := dualshock4.AnalogStickDevice(dualshock4.AnalogStickMinMax)
		if err := dev.SetCalibrationCommand(dualshock4.StartCalibration(device)); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Move both sticks around their full range, then press CROSS to finish.")

		if err := wizardLoop(dev, nil); err != nil {
			log.Fatal(err)
		}
		if err := dev.SetCalibrationCommand(dualshock4.StopCalibration(device)); err != nil {
			log.Fatal(err)
		}
		finishCalibration(dev)
	},
}

var calibrateTriggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Calibrate the L2/R2 trigger travel",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		side, err := parseTriggerSide(calibrateSide)
		if err != nil {
			log.Fatal(err)
		}

		start := dualshock4.TriggerKeyDevice(dualshock4.TriggerKeyPhaseUnknown, side)
		if err := dev.SetCalibrationCommand(dualshock4.StartCalibration(start)); err != nil {
			log.Fatal(err)
		}

		phases := []struct {
			phase  dualshock4.TriggerKeyPhase
			prompt string
		}{
			{dualshock4.TriggerKeyRecordMax, "Pull the trigger(s) fully and hold, then press TRIANGLE."},
			{dualshock4.TriggerKeyRecordRange, "Work the trigger(s) through their whole range a few times, then press TRIANGLE."},
			{dualshock4.TriggerKeyRecordMin, "Release the trigger(s) completely, then press TRIANGLE."},
		}
		for _, p := range phases {
			device := dualshock4.TriggerKeyDevice(p.phase, side)
			if err := dev.SetCalibrationCommand(dualshock4.MeasureCalibration(device)); err != nil {
				log.Fatal(err)
			}
			fmt.Println(p.prompt)
			if err := waitForButton(dev, (*dualshock4.InputReport).Triangle); err != nil {
				log.Fatal(err)
			}
		}

		if err := dev.SetCalibrationCommand(dualshock4.StopCalibration(start)); err != nil {
			log.Fatal(err)
		}
		finishCalibration(dev)
	},
}

// wizardLoop polls input until CROSS is pressed. When onTriangle is non-nil
// it runs once per TRIANGLE press.
func wizardLoop(dev *dualshock4.DualShock4, onTriangle func() error) error {
	prevTriangle := true
	prevCross := true
	for {
		data, err := dev.ReadLastData()
		if err != nil {
			return err
		}
		if data != nil {
			if onTriangle != nil && data.Triangle() && !prevTriangle {
				if err := onTriangle(); err != nil {
					return err
				}
			}
			if data.Cross() && !prevCross {
				return nil
			}
			prevTriangle = data.Triangle()
			prevCross = data.Cross()
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// waitForButton blocks until the given button transitions to pressed.
func waitForButton(dev *dualshock4.DualShock4, button func(*dualshock4.InputReport) bool) error {
	prev := true
	for {
		data, err := dev.ReadLastData()
		if err != nil {
			return err
		}
		if data != nil {
			if button(data) && !prev {
				return nil
			}
			prev = button(data)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// finishCalibration reads back state, result and data after a stop command
// and prints the outcome.
func finishCalibration(dev *dualshock4.DualShock4) {
	state, err := dev.ReadCalibrationState()
	if err != nil {
		log.Fatal(err)
	}
	if state.Status != dualshock4.CalibrationFinished {
		fmt.Printf("Device still reports calibration state: %s\n", state)
		return
	}

	result, err := dev.ReadCalibrationResult()
	if err != nil {
		log.Fatal(err)
	}
	if !result.Completed {
		fmt.Printf("Calibration failed: %s\n", result)
		return
	}
	fmt.Printf("Calibration completed: %s\n", result.Device)

	data, err := dev.ReadCalibrationData()
	if err != nil {
		log.Fatal(err)
	}
	printCalibrationData(data)
}

func printCalibrationData(data dualshock4.CalibrationData) {
	switch data.Kind {
	case dualshock4.CalibrationDataStickCenter:
		fmt.Printf("Stick center offsets: %s\n", data.StickCenter.String())
		for i, sample := range data.StickCenterSamples {
			fmt.Printf("  sample %d: %s\n", i, sample.String())
		}
	case dualshock4.CalibrationDataStickMinMax:
		fmt.Printf("Stick travel ranges: %s\n", data.StickMinMax.String())
	case dualshock4.CalibrationDataTriggers:
		fmt.Printf("Trigger calibration data: % 02x\n", data.Raw)
	default:
		fmt.Printf("Calibration data (%s): % 02x\n", data.Device, data.Raw)
	}
}

func parseTriggerSide(s string) (dualshock4.TriggerKeySide, error) {
	switch s {
	case "left":
		return dualshock4.TriggerKeyLeft, nil
	case "right":
		return dualshock4.TriggerKeyRight, nil
	case "both":
		return dualshock4.TriggerKeyBoth, nil
	}
	return 0, fmt.Errorf("invalid trigger side %q, want left, right or both", s)
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	calibrateCmd.AddCommand(calibrateStickCenterCmd)
	calibrateCmd.AddCommand(calibrateStickMinMaxCmd)
	calibrateCmd.AddCommand(calibrateTriggersCmd)
	calibrateTriggersCmd.Flags().StringVarP(&calibrateSide, "side", "s", "both", "which trigger to calibrate: left, right or both")
}
