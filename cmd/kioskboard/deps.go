package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/kioskboard/internal/carousel"
	"github.com/cristianoliveira/kioskboard/internal/catalog"
	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/cristianoliveira/kioskboard/internal/fetch"
	"github.com/cristianoliveira/kioskboard/internal/gesture"
	"github.com/cristianoliveira/kioskboard/internal/layout"
	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/slideshow"
	"github.com/cristianoliveira/kioskboard/internal/storage"
	"github.com/cristianoliveira/kioskboard/internal/tui/render"
	"github.com/cristianoliveira/kioskboard/internal/tui/state"
)

func newScanner() (*catalog.Scanner, error) {
	return catalog.NewScanner(config.GetList("ignore_patterns"))
}

func sectionDirs() map[media.Section]string {
	return map[media.Section]string{
		media.Certificates: config.Get("cert_dir", "Certificates"),
		media.Videos:       config.Get("media_dir", "Videos"),
	}
}

// newCatalog builds the folder catalog over the configured store.
// The caller closes the returned storage.
func newCatalog(logger logging.Logger) (*catalog.Catalog, storage.Storage, error) {
	scanner, err := newScanner()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.NewFromConfig()
	if err != nil {
		return nil, nil, err
	}
	return catalog.New(scanner, store, sectionDirs(), logger), store, nil
}

// newSources reads from the listing server when server_url is set and from
// the folders otherwise.
func newSources() (certs, videos fetch.Source, err error) {
	if base := config.Get("server_url", ""); base != "" {
		return fetch.NewHTTPSource(base, media.Certificates, nil),
			fetch.NewHTTPSource(base, media.Videos, nil), nil
	}
	scanner, err := newScanner()
	if err != nil {
		return nil, nil, err
	}
	dirs := sectionDirs()
	return fetch.NewDirSource(dirs[media.Certificates], media.Certificates, scanner),
		fetch.NewDirSource(dirs[media.Videos], media.Videos, scanner), nil
}

// videoTarget tells the external player where a video lives.
func videoTarget(name string) string {
	if base := config.Get("server_url", ""); base != "" {
		return strings.TrimRight(base, "/") + media.MediaURL(name)
	}
	return filepath.Join(config.Get("media_dir", "Videos"), name)
}

// dashboardOptions maps configuration onto the dashboard model.
func dashboardOptions() (state.Options, error) {
	certs, videos, err := newSources()
	if err != nil {
		return state.Options{}, fmt.Errorf("failed to open sources: %w", err)
	}
	widths := config.GetFloatList("pane_widths")
	if len(widths) != layout.Panes {
		widths = layout.DefaultWidths[:]
	}
	return state.Options{
		Certificates: certs,
		Media:        videos,
		Player:       slideshow.NewExecPlayer(config.Get("video_player", ""), videoTarget),
		Logger:       logging.GetGlobal(),
		Carousel: carousel.Config{
			BatchSize:  config.GetInt("batch_size", 5),
			BatchPause: config.GetDuration("batch_pause", carousel.DefaultConfig().BatchPause),
			PDFTimeout: config.GetDuration("pdf_timeout", carousel.DefaultConfig().PDFTimeout),
			Gap:        config.GetInt("item_gap", 1),
			Speed:      config.GetFloat("scroll_speed", 0.1),
			Gesture: gesture.Config{
				ResumeDelay: config.GetDuration("resume_delay", gesture.DefaultConfig().ResumeDelay),
				WheelScale:  config.GetFloat("wheel_scale", gesture.DefaultConfig().WheelScale),
				DragScale:   config.GetFloat("drag_scale", gesture.DefaultConfig().DragScale),
			},
		},
		Slideshow: slideshow.Config{
			PhotoDwell:       config.GetDuration("photo_dwell", slideshow.DefaultConfig().PhotoDwell),
			FeedbackDuration: config.GetDuration("feedback_duration", slideshow.DefaultConfig().FeedbackDuration),
			SwipeThreshold:   config.GetFloat("swipe_threshold", 6),
		},
		FrameInterval: config.GetDuration("frame_interval", 0),
		WheelStep:     config.GetFloat("wheel_step", 2),
		PaneWidths:    widths,
		PaneMin:       config.GetFloat("pane_min", layout.DefaultMin),
		Board: render.BoardState{
			Title: config.Get("board_title", "Board"),
			URL:   config.Get("board_url", ""),
		},
	}, nil
}
