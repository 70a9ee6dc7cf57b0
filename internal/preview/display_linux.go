//go:build linux

package preview

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// Display shows img scaled to fit on the framebuffer device, e.g. /dev/fb0.
func Display(device string, img image.Image) error {
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	defer dev.Close()

	blit(dev, Fit(img, dev.Bounds().Size()))
	return nil
}
