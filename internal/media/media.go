// Package media classifies dashboard files by extension and builds the lists
// the panels display.
package media

import (
	"net/url"
	"path"
	"strings"
)

// Kind is the rendering path of a file.
type Kind int

const (
	Unsupported Kind = iota
	Image
	PDF
	Video
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case PDF:
		return "pdf"
	case Video:
		return "video"
	default:
		return "unsupported"
	}
}

// URL prefixes under which the listing server exposes each folder.
const (
	CertificatesPrefix = "/Certificates/"
	VideosPrefix       = "/Videos/"
)

// Shared closed extension sets. Certificates and media use the same sets.
var (
	imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}
	videoExtensions = map[string]bool{".mp4": true, ".webm": true, ".ogg": true, ".mov": true}
)

const pdfExtension = ".pdf"

// Ext returns the lower-cased final extension of name, including the dot.
func Ext(name string) string {
	return strings.ToLower(path.Ext(name))
}

// Classify returns the kind of name from its final extension.
func Classify(name string) Kind {
	ext := Ext(name)
	switch {
	case imageExtensions[ext]:
		return Image
	case ext == pdfExtension:
		return PDF
	case videoExtensions[ext]:
		return Video
	default:
		return Unsupported
	}
}

// CertificateRoute returns the render path of a certificate. Anything that is
// not a PDF is drawn as an image.
func CertificateRoute(name string) Kind {
	if Classify(name) == PDF {
		return PDF
	}
	return Image
}

// MediaRoute returns the slideshow path of a media file: Image, Video or
// Unsupported.
func MediaRoute(name string) Kind {
	switch k := Classify(name); k {
	case Image, Video:
		return k
	default:
		return Unsupported
	}
}

// IsCertificate reports whether the listing server publishes name in the
// certificates listing.
func IsCertificate(name string) bool {
	k := Classify(name)
	return k == Image || k == PDF
}

// IsMedia reports whether the listing server publishes name in the media
// listing.
func IsMedia(name string) bool {
	return MediaRoute(name) != Unsupported
}

// CertificateURL resolves a certificate filename against the static prefix.
func CertificateURL(name string) string {
	return CertificatesPrefix + url.PathEscape(name)
}

// MediaURL resolves a media filename against the static prefix.
func MediaURL(name string) string {
	return VideosPrefix + url.PathEscape(name)
}
