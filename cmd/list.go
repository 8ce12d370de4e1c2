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

	"github.com/ds4tools/ds4ctl/dualshock4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached DualShock 4 controllers",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		devices, err := dualshock4.ListDevices()
		if err != nil {
			log.Fatal(err)
		}
		if len(devices) == 0 {
			fmt.Println("No DualShock 4 controllers found")
			return
		}
		for _, info := range devices {
			fmt.Printf("%04x:%04x %s %s (serial %q, release %x)\n",
				info.VendorID, info.ProductID, info.MfrStr, info.ProductStr,
				info.SerialNbr, info.ReleaseNbr)
			fmt.Printf("  path: %s\n", info.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
