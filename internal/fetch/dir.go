package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/kioskboard/internal/catalog"
	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/media"
)

// DirSource reads a section straight from its folder, with the same filter
// and ordering as the listing server.
type DirSource struct {
	dir     string
	section media.Section
	scanner *catalog.Scanner
}

// NewDirSource returns a source over dir.
func NewDirSource(dir string, section media.Section, scanner *catalog.Scanner) *DirSource {
	return &DirSource{dir: dir, section: section, scanner: scanner}
}

func (s *DirSource) Section() media.Section { return s.section }

func (s *DirSource) List(_ context.Context) (media.FileList, error) {
	names, err := s.scanner.Names(s.dir, s.section)
	if err != nil {
		return nil, errors.New(errors.KindNetwork, "list "+string(s.section), err)
	}
	return names, nil
}

func (s *DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return nil, errors.ForItem(errors.KindNetwork, "fetch", name, fmt.Errorf("invalid file name"))
	}
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, errors.ForItem(errors.KindNetwork, "fetch", name, err)
	}
	return f, nil
}

// ReadAll opens name and reads it fully.
func ReadAll(ctx context.Context, src Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.ForItem(errors.KindNetwork, "fetch", name, err)
	}
	return data, nil
}
