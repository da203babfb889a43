package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/version"
)

// defaultClient is shared so connections are reused between file fetches.
var defaultClient = &http.Client{
	Timeout: 30 * time.Second,
}

// maxListingBytes bounds the listing body.
const maxListingBytes = 4 << 20

// HTTPSource reads a section from a listing server.
type HTTPSource struct {
	base    string
	section media.Section
	client  *http.Client
}

// NewHTTPSource returns a source for section served at base
// ("http://kiosk.local:8000"). A nil client uses a shared default.
func NewHTTPSource(base string, section media.Section, client *http.Client) *HTTPSource {
	if client == nil {
		client = defaultClient
	}
	return &HTTPSource{base: strings.TrimRight(base, "/"), section: section, client: client}
}

func (s *HTTPSource) Section() media.Section { return s.section }

func (s *HTTPSource) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.UserAgent())
	return s.client.Do(req)
}

// List fetches the listing once. A transport error, a non-200 status or a
// body that is not a JSON array of strings is a LoadError. There is no retry.
func (s *HTTPSource) List(ctx context.Context) (media.FileList, error) {
	op := "list " + string(s.section)
	resp, err := s.get(ctx, s.section.APIPath())
	if err != nil {
		return nil, errors.New(errors.KindNetwork, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.LoadError(op, "unexpected status %s", resp.Status)
	}

	var names []string
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxListingBytes)).Decode(&names); err != nil {
		return nil, errors.LoadError(op, "listing is not a list of names: %v", err)
	}
	if names == nil {
		// JSON null
		return nil, errors.LoadError(op, "listing is not a list of names")
	}
	return media.FileList(names), nil
}

// Open fetches a file from the section's static prefix.
func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := s.get(ctx, s.section.URL(name))
	if err != nil {
		return nil, errors.ForItem(errors.KindNetwork, "fetch", name, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.ForItem(errors.KindNetwork, "fetch", name, fmt.Errorf("unexpected status %s", resp.Status))
	}
	return resp.Body, nil
}
