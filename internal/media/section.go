package media

import "fmt"

// Section is one of the two published folders.
type Section string

const (
	Certificates Section = "certificates"
	Videos       Section = "videos"
)

// Sections lists every section in display order.
var Sections = []Section{Certificates, Videos}

// ParseSection accepts a section name as typed on the command line.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case Certificates, Videos:
		return Section(s), nil
	}
	return "", fmt.Errorf("unknown section %q (want %q or %q)", s, Certificates, Videos)
}

// APIPath is the listing endpoint of the section.
func (s Section) APIPath() string {
	return "/api/" + string(s)
}

// Prefix is the static URL prefix of the section.
func (s Section) Prefix() string {
	if s == Videos {
		return VideosPrefix
	}
	return CertificatesPrefix
}

// URL resolves name under the section's static prefix.
func (s Section) URL(name string) string {
	if s == Videos {
		return MediaURL(name)
	}
	return CertificateURL(name)
}

// Accepts reports whether name belongs in the section's listing.
func (s Section) Accepts(name string) bool {
	if s == Videos {
		return IsMedia(name)
	}
	return IsCertificate(name)
}
