package dualshock4

import (
	"fmt"

	"github.com/sstallion/go-hid"
)

const (
	VendorIDSony = 0x054c

	ProductIDDualShock4   = 0x05c4
	ProductIDDualShock4V2 = 0x09cc
)

// IsDualShock4 reports whether the enumerated device is a controller this
// package can drive.
func IsDualShock4(info *hid.DeviceInfo) bool {
	if info.VendorID != VendorIDSony {
		return false
	}
	return info.ProductID == ProductIDDualShock4 || info.ProductID == ProductIDDualShock4V2
}

// ListDevices enumerates all attached controllers.
func ListDevices() ([]*hid.DeviceInfo, error) {
	var devices []*hid.DeviceInfo
	err := hid.Enumerate(VendorIDSony, 0, func(info *hid.DeviceInfo) error {
		if IsDualShock4(info) {
			cp := *info
			devices = append(devices, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate HID devices: %w", err)
	}
	return devices, nil
}

// Open opens the controller at the given platform path.
func Open(path string) (*DualShock4, error) {
	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return NewDualShock4(dev, path), nil
}

// OpenFirst opens the first attached controller.
func OpenFirst() (*DualShock4, error) {
	devices, err := ListDevices()
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrNoDevice
	}
	return Open(devices[0].Path)
}
