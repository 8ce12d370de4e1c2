package dualshock4

import (
	"testing"

	"github.com/sstallion/go-hid"
	"github.com/stretchr/testify/assert"
)

func TestIsDualShock4(t *testing.T) {
	tests := []struct {
		name string
		vid  uint16
		pid  uint16
		want bool
	}{
		{"first generation", VendorIDSony, ProductIDDualShock4, true},
		{"second generation", VendorIDSony, ProductIDDualShock4V2, true},
		{"sony other product", VendorIDSony, 0x0ba0, false},
		{"other vendor", 0x046d, ProductIDDualShock4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &hid.DeviceInfo{VendorID: tt.vid, ProductID: tt.pid}
			assert.Equal(t, tt.want, IsDualShock4(info))
		})
	}
}
