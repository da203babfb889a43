package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"a.png", Image},
		{"photo.JPEG", Image},
		{"anim.gif", Image},
		{"pic.webp", Image},
		{"award.PDF", PDF},
		{"clip.mp4", Video},
		{"clip.MOV", Video},
		{"clip.ogg", Video},
		{"notes.txt", Unsupported},
		{"archive.pdf.zip", Unsupported},
		{"noext", Unsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestCertificateRouting(t *testing.T) {
	list := FileList{"a.png", "b.pdf", "c.jpg"}
	routes := make([]Kind, len(list))
	for i, name := range list {
		routes[i] = CertificateRoute(name)
	}
	assert.Equal(t, []Kind{Image, PDF, Image}, routes)

	// unknown extensions fall back to the image path
	assert.Equal(t, Image, CertificateRoute("scan.tiff"))
}

func TestMediaRoute(t *testing.T) {
	assert.Equal(t, Image, MediaRoute("a.png"))
	assert.Equal(t, Video, MediaRoute("b.webm"))
	assert.Equal(t, Unsupported, MediaRoute("c.pdf"))
	assert.Equal(t, Unsupported, MediaRoute("d.doc"))
}

func TestDouble(t *testing.T) {
	list := FileList{"a.png", "b.pdf", "c.jpg"}
	d := Double(list)
	assert.Equal(t, FileList{"a.png", "b.pdf", "c.jpg", "a.png", "b.pdf", "c.jpg"}, d)

	for _, n := range []int{0, 1, 2, 7} {
		in := make(FileList, n)
		for i := range in {
			in[i] = string(rune('a'+i)) + ".png"
		}
		out := Double(in)
		require.Len(t, out, 2*n)
		for i := 0; i < n; i++ {
			assert.Equal(t, out[i], out[i+n])
		}
	}
}

func TestDoubleDoesNotAliasInput(t *testing.T) {
	list := FileList{"a.png"}
	d := Double(list)
	d[0] = "z.png"
	assert.Equal(t, "a.png", list[0])
}

func TestPartition(t *testing.T) {
	kept, dropped := Partition(FileList{"a.png", "b.txt", "c.mp4"}, IsMedia)
	assert.Equal(t, FileList{"a.png", "c.mp4"}, kept)
	assert.Equal(t, FileList{"b.txt"}, dropped)
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "/Certificates/Award%202024.pdf", CertificateURL("Award 2024.pdf"))
	assert.Equal(t, "/Videos/clip.mp4", MediaURL("clip.mp4"))
}

func TestSection(t *testing.T) {
	s, err := ParseSection("videos")
	require.NoError(t, err)
	assert.Equal(t, Videos, s)
	assert.Equal(t, "/api/videos", s.APIPath())
	assert.Equal(t, "/Videos/a%20b.mp4", s.URL("a b.mp4"))
	assert.True(t, s.Accepts("a.jpg"))
	assert.False(t, s.Accepts("a.pdf"))

	assert.True(t, Certificates.Accepts("a.pdf"))
	assert.False(t, Certificates.Accepts("a.mp4"))
	assert.Equal(t, CertificatesPrefix, Certificates.Prefix())

	_, err = ParseSection("music")
	assert.Error(t, err)
}
