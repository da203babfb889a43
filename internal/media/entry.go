package media

import "time"

// Entry is a catalogued file of a section.
type Entry struct {
	Section Section
	Name    string
	Kind    Kind
	Size    int64
	ModTime time.Time
	// Orientation is the EXIF orientation tag (1-8) of a photo, 0 when absent.
	Orientation int
	// TakenAt is the EXIF capture time of a photo, zero when absent.
	TakenAt time.Time
}

// Names returns the entry names in order.
func Names(entries []Entry) FileList {
	names := make(FileList, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
