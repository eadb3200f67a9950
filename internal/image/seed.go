package image

import (
	"crypto/sha256"
	"encoding/binary"
	"image"
)

// ContentSeed derives a k-means seed from an image's dimensions and a grid
// of sampled pixels, so the same picture always yields the same palette
// wherever it is stored. It never returns zero.
func ContentSeed(img image.Image) uint64 {
	if img == nil {
		return 1
	}

	bounds := img.Bounds()
	hasher := sha256.New()

	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions fit
	binary.LittleEndian.PutUint32(dims[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions fit
	hasher.Write(dims[:])

	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	var px [4]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			px[0], px[1], px[2], px[3] = byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8)
			hasher.Write(px[:])
		}
	}

	seed := binary.LittleEndian.Uint64(hasher.Sum(nil)[:8])
	if seed == 0 {
		return 1
	}
	return seed
}
