package screenshot

import (
	"image"

	"github.com/kbinani/screenshot"

	"github.com/rileyhilliard/dotfetch/internal/errors"
)

// PrimaryDisplay captures the bounds of display 0.
type PrimaryDisplay struct{}

// Capture implements Capturer.
func (PrimaryDisplay) Capture() (image.Image, error) {
	if screenshot.NumActiveDisplays() < 1 {
		return nil, errors.New(errors.ErrScreenshot,
			"No active display to capture",
			"Run dotfetch from a desktop session or pass --no-screenshot.")
	}
	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(0))
	if err != nil {
		return nil, err
	}
	return img, nil
}
