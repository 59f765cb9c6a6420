package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeCIM decodes the JSON that `Get-CimInstance ... | ConvertTo-Json`
// writes. PowerShell emits a bare object for one instance and an array for
// several; both decode to a slice. Empty output yields no instances.
func DecodeCIM[T any](data []byte) ([]T, error) {
	// PowerShell 5 may prefix a UTF-8 BOM.
	data = bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return nil, fmt.Errorf("failed to decode CIM array: %w", err)
		}
		return many, nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("failed to decode CIM object: %w", err)
	}
	return []T{one}, nil
}

// VideoController is the subset of Win32_VideoController that is read.
type VideoController struct {
	Description                 string `json:"Description"`
	CurrentHorizontalResolution int    `json:"CurrentHorizontalResolution"`
	CurrentVerticalResolution   int    `json:"CurrentVerticalResolution"`
	CurrentBitsPerPixel         int    `json:"CurrentBitsPerPixel"`
	CurrentRefreshRate          int    `json:"CurrentRefreshRate"`
}

// Desktop is the subset of Win32_Desktop that is read.
type Desktop struct {
	IconTitleFaceName string `json:"IconTitleFaceName"`
}

// ComputerSystem is the subset of Win32_ComputerSystem that is read.
type ComputerSystem struct {
	Manufacturer string `json:"Manufacturer"`
	Model        string `json:"Model"`
}

// CIMBattery is the subset of Win32_Battery that is read.
type CIMBattery struct {
	BatteryStatus            int `json:"BatteryStatus"`
	EstimatedChargeRemaining int `json:"EstimatedChargeRemaining"`
}
