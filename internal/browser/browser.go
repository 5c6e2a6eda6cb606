package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/jonathan/linkedin-scraper/internal/blocklist"
)

// Config holds the launch parameters for a managed browser. Timeout bounds
// the launch and page-preparation steps; zero means no bound.
type Config struct {
	Headless  bool
	UserAgent string
	Timeout   time.Duration
	Blocklist *blocklist.Blocklist
	Logger    zerolog.Logger
}

// Manager owns a single headless browser and at most one scraping page.
// It is not safe for concurrent use.
type Manager struct {
	cfg Config
	log zerolog.Logger

	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	pid           int

	page *Page
}

// NewManager returns an unstarted Manager.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg: cfg,
		log: cfg.Logger.With().Str("component", "browser").Logger(),
	}
}

// allocatorOptions is the curated Chrome flag set. Most flags disable
// background work that slows scraping down or trips bot detection in
// containerized environments.
func (m *Manager) allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", m.cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disk-cache-size", "33554432"),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("no-zygote", true),
		chromedp.Flag("window-size", "1200,720"),
	)
}

// Start launches the browser process. Calling Start on a manager with a live
// browser is a no-op.
func (m *Manager) Start(ctx context.Context) error {
	if m.Running() {
		return nil
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, m.allocatorOptions()...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// An empty task list forces the browser process to actually launch. The
	// launch wait is bounded separately; deriving the allocator itself from a
	// deadline context would kill the browser when the deadline fires.
	launchCtx := browserCtx
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		launchCtx, cancel = context.WithTimeout(browserCtx, m.cfg.Timeout)
		defer cancel()
	}
	if err := chromedp.Run(launchCtx); err != nil {
		browserCancel()
		allocCancel()
		return &LaunchError{Message: "failed to launch browser", Cause: err}
	}

	m.allocCancel = allocCancel
	m.browserCtx = browserCtx
	m.browserCancel = browserCancel
	m.pid = browserPID(browserCtx)

	m.log.Debug().Int("pid", m.pid).Bool("headless", m.cfg.Headless).Msg("browser launched")
	return nil
}

// Running reports whether the managed browser is live.
func (m *Manager) Running() bool {
	if m.browserCtx == nil {
		return false
	}
	select {
	case <-m.browserCtx.Done():
		return false
	default:
		return true
	}
}

// NewPage opens a fresh tab with request interception, viewport and
// user-agent overrides, and the given session cookie installed. Any
// previously opened page is closed first so a single scraping page is live
// at a time.
func (m *Manager) NewPage(ctx context.Context, sessionCookie string) (*Page, error) {
	if !m.Running() {
		return nil, &PageError{Message: "no live browser"}
	}

	if m.page != nil {
		if err := m.ClosePage(); err != nil {
			m.log.Warn().Err(err).Msg("failed to close previous page")
		}
	}

	page, err := newPage(m.browserCtx, pageConfig{
		userAgent:     m.cfg.UserAgent,
		sessionCookie: sessionCookie,
		timeout:       m.cfg.Timeout,
		blocklist:     m.cfg.Blocklist,
		log:           m.log,
	})
	if err != nil {
		return nil, err
	}

	m.page = page
	return page, nil
}

// ClosePage closes the current page if one is open.
func (m *Manager) ClosePage() error {
	if m.page == nil {
		return nil
	}
	err := m.page.Close()
	m.page = nil
	return err
}

// Close shuts the browser down: the page and browser contexts are cancelled
// and any process left behind is killed together with its children. Close is
// idempotent.
func (m *Manager) Close() error {
	if m.browserCtx == nil {
		return nil
	}

	var pageErr error
	if m.page != nil {
		pageErr = m.ClosePage()
	}

	m.browserCancel()
	m.allocCancel()
	m.browserCtx = nil
	m.browserCancel = nil
	m.allocCancel = nil

	if m.pid > 0 {
		if err := killProcessTree(m.pid, m.log); err != nil {
			m.pid = 0
			return &TeardownError{Message: "failed to kill browser process tree", Cause: err}
		}
		m.pid = 0
	}

	m.log.Debug().Msg("browser closed")
	if pageErr != nil {
		return &TeardownError{Message: "failed to close page during shutdown", Cause: pageErr}
	}
	return nil
}

// browserPID resolves the OS process id of the launched browser, 0 when it
// cannot be determined.
func browserPID(ctx context.Context) int {
	c := chromedp.FromContext(ctx)
	if c == nil || c.Browser == nil {
		return 0
	}
	proc := c.Browser.Process()
	if proc == nil {
		return 0
	}
	return proc.Pid
}
