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
	"strconv"

	"github.com/ds4tools/ds4ctl/dualshock4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Send or request arbitrary feature reports (for protocol exploration)",
	Long:  "",
}

var customSendCmd = &cobra.Command{
	Use:   "send ID [HEX]",
	Short: "Send a feature report with the given identifier and payload",
	Long:  "",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseReportID(args[0])
		var payload []byte
		if len(args) == 2 {
			var err error
			payload, err = hex.DecodeString(args[1])
			if err != nil {
				log.Fatalf("invalid hex string: %v", err)
			}
		}

		dev := openDevice()
		defer dev.Close()

		if err := dev.SendCustomReport(id, payload); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Sent %s: % 02x\n", id, payload)
	},
}

var customGetCmd = &cobra.Command{
	Use:   "get ID SIZE",
	Short: "Request a feature report with the given identifier and payload size",
	Long:  "",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseReportID(args[0])
		size, err := strconv.Atoi(args[1])
		if err != nil || size < 0 {
			log.Fatalf("invalid payload size %q", args[1])
		}

		dev := openDevice()
		defer dev.Close()

		report, err := dev.GetCustomReport(id, size)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(report)
	},
}

func parseReportID(s string) dualshock4.ReportID {
	id, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		log.Fatalf("invalid report identifier %q: %v", s, err)
	}
	return dualshock4.ReportID(id)
}

func init() {
	rootCmd.AddCommand(customCmd)
	customCmd.AddCommand(customSendCmd)
	customCmd.AddCommand(customGetCmd)
}
