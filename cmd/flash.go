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
)

var flashOutPath = ""

var flashCmd = &cobra.Command{
	Use:   "flash",
	Short: "Work with the calibration flash mirror",
	Long: `The controller keeps a 2 KiB RAM mirror of its calibration flash.
Reading it takes about a thousand feature report round trips, so expect
a few seconds per dump.`,
}

var flashReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Dump the flash mirror from the controller",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		dev := openDevice()
		defer dev.Close()

		fmt.Println("Reading flash mirror, this takes a few seconds ...")
		mirror, err := dev.ReadFlashMirror()
		if err != nil {
			log.Fatal(err)
		}
		printMirrorSummary(mirror)

		if flashOutPath != "" {
			if err := os.WriteFile(flashOutPath, mirror.Bytes(), 0644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(mirror.Bytes()), flashOutPath)
		}
	},
}

var flashVerifyCmd = &cobra.Command{
	Use:   "verify [FILE]",
	Short: "Check the flash mirror checksum, from the controller or a dump file",
	Long:  "",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mirror := loadMirror(args)
		fmt.Printf("Stored checksum:   %04x\n", mirror.CRC())
		fmt.Printf("Computed checksum: %04x\n", mirror.CalcCRC())
		if mirror.CheckCRC() {
			fmt.Println("Checksum OK")
		} else {
			fmt.Println("Checksum MISMATCH")
			os.Exit(1)
		}
	},
}

var flashFixCRCCmd = &cobra.Command{
	Use:   "fixcrc FILE",
	Short: "Recompute and store the checksum of a dump file",
	Long:  "",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		mirror, err := dualshock4.ParseFlashMirror(data)
		if err != nil {
			log.Fatal(err)
		}
		old := mirror.CRC()
		mirror.UpdateCRC()
		if err := os.WriteFile(args[0], mirror.Bytes(), 0644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Checksum updated: %04x -> %04x\n", old, mirror.CRC())
	},
}

var flashShowCmd = &cobra.Command{
	Use:   "show [FILE]",
	Short: "Hex dump the flash mirror, from the controller or a dump file",
	Long:  "",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mirror := loadMirror(args)
		buf := mirror.Bytes()
		for offset := 0; offset < len(buf); offset += 32 {
			fmt.Printf("%04x: % 02x\n", offset, buf[offset:offset+32])
		}
		printMirrorSummary(mirror)
	},
}

// loadMirror pulls the mirror from a dump file when one is given, otherwise
// from the controller.
func loadMirror(args []string) *dualshock4.FlashMirror {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		mirror, err := dualshock4.ParseFlashMirror(data)
		if err != nil {
			log.Fatal(err)
		}
		return mirror
	}

	dev := openDevice()
	defer dev.Close()

	fmt.Println("Reading flash mirror, this takes a few seconds ...")
	mirror, err := dev.ReadFlashMirror()
	if err != nil {
		log.Fatal(err)
	}
	return mirror
}

func printMirrorSummary(mirror *dualshock4.FlashMirror) {
	fmt.Printf("Checksum: %04x (valid: %t)\n", mirror.CRC(), mirror.CheckCRC())
	fmt.Printf("Stick center offsets: %s\n", mirror.StickCenterCalibration().String())
}

func init() {
	rootCmd.AddCommand(flashCmd)
	flashCmd.AddCommand(flashReadCmd)
	flashCmd.AddCommand(flashVerifyCmd)
	flashCmd.AddCommand(flashFixCRCCmd)
	flashCmd.AddCommand(flashShowCmd)
	flashReadCmd.Flags().StringVarP(&flashOutPath, "out", "o", "", "write the raw 2048 byte dump to this file")
}
