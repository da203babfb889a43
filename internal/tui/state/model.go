// Package state holds the dashboard model driven by the bubbletea loop.
package state

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/kioskboard/internal/carousel"
	"github.com/cristianoliveira/kioskboard/internal/clock"
	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/fetch"
	"github.com/cristianoliveira/kioskboard/internal/layout"
	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
	mediarender "github.com/cristianoliveira/kioskboard/internal/render"
	"github.com/cristianoliveira/kioskboard/internal/settings"
	"github.com/cristianoliveira/kioskboard/internal/slideshow"
	"github.com/cristianoliveira/kioskboard/internal/tui/render"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	defaultFrameInterval  = 50 * time.Millisecond
	messageTTL            = 5 * time.Second
)

// Panes in layout order.
const (
	paneCertificates = iota
	paneBoard
	paneMedia
)

// Options wires the model to its collaborators.
type Options struct {
	Certificates fetch.Source
	Media        fetch.Source
	Player       slideshow.VideoPlayer
	Clock        clock.Clock
	Logger       logging.Logger

	Carousel      carousel.Config
	Slideshow     slideshow.Config
	FrameInterval time.Duration
	// WheelStep is the scroll delta of one wheel notch or arrow key.
	WheelStep  float64
	PaneWidths []float64
	PaneMin    float64
	Board      render.BoardState

	// Settings is the saved session; nil starts from Options.
	Settings *settings.Settings
	// SaveSettings persists the session on quit; nil uses settings.Save.
	SaveSettings func(*settings.Settings) error
	// Renderer picks the renderer of a file; nil uses the stock renderers.
	Renderer func(name string) mediarender.Func
}

type pointerMode int

const (
	pointerNone pointerMode = iota
	pointerResizer
	pointerCarousel
	pointerSwipe
)

// Model represents the dashboard model for bubbletea.
type Model struct {
	opts   Options
	clk    clock.Clock
	logger logging.Logger

	carousel  *carousel.Carousel
	slideshow *slideshow.Slideshow
	layout    *layout.Layout
	loop      *clock.FrameLoop

	width  int
	height int
	// renderWidth is the column width certificates are rendered at; a
	// later resize crops instead of rendering again.
	renderWidth int
	waitingSize bool

	spinner spinner.Model
	keys    keyMap
	help    help.Model

	errorHandler *errors.TUIHandler
	settingsSvc  *settingsService

	pointer     pointerMode
	swipeStartX int

	preview        *mediarender.Surface
	previewName    string
	previewWidth   int
	previewPending string
	blockedName    string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a dashboard model.
func NewModel(opts Options) (*Model, error) {
	if opts.Certificates == nil || opts.Media == nil {
		return nil, stderrors.New("certificate and media sources are required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetGlobal()
	}
	if opts.Player == nil {
		opts.Player = slideshow.NoPlayer{}
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	if opts.PaneMin <= 0 {
		opts.PaneMin = layout.DefaultMin
	}
	if opts.SaveSettings == nil {
		opts.SaveSettings = settings.Save
	}
	if opts.Renderer == nil {
		opts.Renderer = mediarender.ForCertificate
	}

	logger := opts.Logger.With("component", "tui")
	base, err := newLayout(opts.PaneWidths, opts.PaneMin)
	if err != nil {
		return nil, err
	}

	m := &Model{
		opts:   opts,
		clk:    opts.Clock,
		logger: logger,
		carousel: carousel.New(opts.Certificates, opts.Clock, opts.Carousel,
			carousel.WithLogger(opts.Logger.With("component", "carousel")),
			carousel.WithRenderer(opts.Renderer)),
		slideshow: slideshow.New(opts.Clock, opts.Slideshow,
			slideshow.WithPlayer(opts.Player),
			slideshow.WithLogger(opts.Logger.With("component", "slideshow"))),
		layout:      base,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:        defaultKeyMap(),
		help:        help.New(),
		settingsSvc: newSettingsService(opts.SaveSettings),
		waitingSize: true,
	}
	m.loop = clock.NewFrameLoop(m.onFrame)
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.errorHandler = errors.NewTUIHandler(nil)

	if opts.Settings != nil {
		if err := m.applySettings(opts.Settings); err != nil {
			m.errorHandler.Warning(fmt.Sprintf("Ignoring saved settings: %v", err))
			logger.Warn("saved settings ignored", "error", err)
		}
	}
	return m, nil
}

func newLayout(widths []float64, min float64) (*layout.Layout, error) {
	if len(widths) == 0 {
		widths = layout.DefaultWidths[:]
	}
	l, err := layout.New(widths, min)
	if err != nil {
		return nil, fmt.Errorf("invalid pane widths: %w", err)
	}
	return l, nil
}

// Init starts loading and the frame loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchCertificatesCmd(m.ctx, m.carousel),
		fetchMediaCmd(m.ctx, m.opts.Media),
		m.startFrames(),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	case tea.MouseMsg:
		m.handleMouseMsg(msg)
	case tea.WindowSizeMsg:
		cmd = m.handleWindowSizeMsg(msg)
	case tea.FocusMsg:
		cmd = m.startFrames()
	case tea.BlurMsg:
		m.loop.Stop()
	case frameMsg:
		if m.loop.Frame(msg.gen) {
			cmd = frameTick(msg.gen, m.opts.FrameInterval)
		}
	case spinner.TickMsg:
		if m.loading() {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	case certListingMsg:
		cmd = m.handleCertListing(msg)
	case certBatchMsg:
		cmd = m.handleCertBatch(msg)
	case batchPauseMsg:
		cmd = m.nextBatch()
	case mediaListingMsg:
		m.handleMediaListing(msg)
	case previewMsg:
		m.handlePreview(msg)
	case saveSettingsSuccessMsg:
		return m, tea.Quit
	case saveSettingsFailedMsg:
		m.logger.Error("failed to save settings", "error", msg.err)
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.syncPreview())
}

// onFrame runs one animation frame.
func (m *Model) onFrame() {
	m.carousel.Frame()
	m.slideshow.Poll()
	if m.slideshow.Blocked() {
		if name, _, ok := m.slideshow.Current(); ok && name != m.blockedName {
			m.blockedName = name
			m.errorHandler.Warning(fmt.Sprintf("Cannot play %s, advancing on timer", name))
		}
	}
}

// startFrames opens a new frame generation; frames of the previous one are
// dropped when they arrive.
func (m *Model) startFrames() tea.Cmd {
	gen := m.loop.Start()
	return frameTick(gen, m.opts.FrameInterval)
}

func (m *Model) loading() bool {
	return m.carousel.State() == carousel.Loading || !m.slideshow.Loaded()
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	cmds := []tea.Cmd{m.startFrames()}
	if m.waitingSize {
		m.waitingSize = false
		m.renderWidth = m.paneWidth(paneCertificates)
		cmds = append(cmds, m.nextBatch())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleCertListing(msg certListingMsg) tea.Cmd {
	m.carousel.ApplyListing(msg.files, msg.err)
	if msg.err != nil {
		m.errorHandler.Error(fmt.Sprintf("Certificates: %v", msg.err))
		return nil
	}
	if m.waitingSize {
		return nil
	}
	return m.nextBatch()
}

func (m *Model) handleCertBatch(msg certBatchMsg) tea.Cmd {
	if !m.carousel.ApplyBatch(msg.batch) {
		return nil
	}
	for _, r := range msg.batch.Results {
		if r.Err != nil {
			m.errorHandler.Warning(fmt.Sprintf("Skipped %s: %v", r.Name, r.Err))
		}
	}
	if m.carousel.State() != carousel.Loading {
		return nil
	}
	return batchPause(m.opts.Carousel.BatchPause)
}

// nextBatch starts rendering the next batch, if any.
func (m *Model) nextBatch() tea.Cmd {
	if m.waitingSize {
		return nil
	}
	jobs, ok := m.carousel.NextBatch()
	if !ok {
		return nil
	}
	return renderBatchCmd(m.ctx, m.carousel, jobs, max(m.renderWidth, 1))
}

func (m *Model) handleMediaListing(msg mediaListingMsg) {
	m.slideshow.ApplyListing(msg.files, msg.err)
	if msg.err != nil {
		m.errorHandler.Error(fmt.Sprintf("Media: %v", msg.err))
	}
}

func (m *Model) handlePreview(msg previewMsg) {
	if msg.name != m.previewPending {
		return
	}
	m.previewPending = ""
	m.previewName = msg.name
	m.previewWidth = msg.width
	m.preview = msg.surface
	if msg.err != nil {
		m.preview = nil
		m.logger.Warn("media preview failed", "file", msg.name, "error", msg.err)
	}
}

// syncPreview requests a preview when the current photo or the pane width
// changed.
func (m *Model) syncPreview() tea.Cmd {
	name, kind, ok := m.slideshow.Current()
	if !ok || kind == media.Video || m.width == 0 {
		return nil
	}
	width := m.paneWidth(paneMedia)
	if width < 1 || name == m.previewPending {
		return nil
	}
	if name == m.previewName && width == m.previewWidth {
		return nil
	}
	m.previewPending = name
	return renderPreviewCmd(m.ctx, m.opts.Media, m.opts.Renderer(name), name, width)
}

// paneWidth returns the column width of pane p.
func (m *Model) paneWidth(p int) int {
	return m.layout.Columns(m.viewWidth())[p]
}

func (m *Model) viewWidth() int {
	if m.width == 0 {
		return defaultViewportWidth
	}
	return m.width
}

func (m *Model) viewHeight() int {
	if m.height == 0 {
		return defaultViewportHeight
	}
	return m.height
}

// quit stops timers and saves the session before exiting.
func (m *Model) quit() tea.Cmd {
	m.loop.Stop()
	m.carousel.Stop()
	m.slideshow.Stop()
	m.cancel()
	state := m.ToState()
	return SaveSettingsCmd(func() error { return m.settingsSvc.save(state) })
}

// Carousel returns the certificates carousel.
func (m *Model) Carousel() *carousel.Carousel { return m.carousel }

// Slideshow returns the media slideshow.
func (m *Model) Slideshow() *slideshow.Slideshow { return m.slideshow }

// Layout returns the pane layout.
func (m *Model) Layout() *layout.Layout { return m.layout }
