package catalog

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// probeExif returns the orientation tag and capture time of a photo. Files
// without EXIF data report zero values.
func probeExif(path string) (orientation int, takenAt time.Time) {
	f, err := os.Open(path)
	if err != nil {
		return 0, time.Time{}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return 0, time.Time{}
	}
	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			orientation = v
		}
	}
	if t, err := x.DateTime(); err == nil {
		takenAt = t
	}
	return orientation, takenAt
}
