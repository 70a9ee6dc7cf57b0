//go:build !linux

package preview

import "image"

func Display(device string, img image.Image) error {
	return ErrDisplayUnsupported
}
