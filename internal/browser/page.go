package browser

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	cdppage "github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/jonathan/linkedin-scraper/internal/blocklist"
)

const (
	viewportWidth  = 1200
	viewportHeight = 720

	sessionCookieName   = "li_at"
	sessionCookieDomain = ".www.linkedin.com"

	// interceptTimeout bounds each continue/abort CDP command so a stuck
	// target cannot leak handler goroutines.
	interceptTimeout = 2 * time.Second
)

// blockedResourceTypes are aborted outright. Stylesheets are deliberately
// absent: the page breaks its lazy-load measurements without them.
var blockedResourceTypes = map[network.ResourceType]bool{
	network.ResourceTypeImage:              true,
	network.ResourceTypeMedia:              true,
	network.ResourceTypeFont:               true,
	network.ResourceTypeTextTrack:          true,
	network.ResourceTypePing:               true,
	network.ResourceTypeCSPViolationReport: true,
	network.ResourceTypeOther:              true,
}

// hostCheckedResourceTypes go through the hostname blocklist instead of
// being aborted by type.
var hostCheckedResourceTypes = map[network.ResourceType]bool{
	network.ResourceTypeDocument: true,
	network.ResourceTypeScript:   true,
	network.ResourceTypeXHR:      true,
	network.ResourceTypeFetch:    true,
}

type pageConfig struct {
	userAgent     string
	sessionCookie string
	timeout       time.Duration
	blocklist     *blocklist.Blocklist
	log           zerolog.Logger
}

// Page is a single browser tab prepared for scraping: throttled resource
// loading, fixed viewport, and an authenticated session cookie.
type Page struct {
	ctx          context.Context
	cancel       context.CancelFunc
	log          zerolog.Logger
	handlerCount int64
}

func newPage(browserCtx context.Context, cfg pageConfig) (*Page, error) {
	tabCtx, tabCancel := chromedp.NewContext(browserCtx)

	p := &Page{
		ctx:    tabCtx,
		cancel: tabCancel,
		log:    cfg.log,
	}
	p.listenForRequests(cfg.blocklist)

	tasks := chromedp.Tasks{
		network.Enable(),
		fetch.Enable(),
		cdppage.Enable(),
		emulation.SetDeviceMetricsOverride(viewportWidth, viewportHeight, 1.0, false),
		setSessionCookie(cfg.sessionCookie),
	}
	if cfg.userAgent != "" {
		tasks = append(chromedp.Tasks{emulation.SetUserAgentOverride(cfg.userAgent)}, tasks...)
	}

	prepCtx := tabCtx
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		prepCtx, cancel = context.WithTimeout(tabCtx, cfg.timeout)
		defer cancel()
	}
	if err := chromedp.Run(prepCtx, tasks); err != nil {
		tabCancel()
		return nil, &PageError{Message: "failed to prepare page", Cause: err}
	}

	return p, nil
}

// listenForRequests installs the fetch interception handler. Each paused
// request is resolved in its own goroutine so the event loop never blocks.
func (p *Page) listenForRequests(bl *blocklist.Blocklist) {
	chromedp.ListenTarget(p.ctx, func(ev interface{}) {
		event, ok := ev.(*fetch.EventRequestPaused)
		if !ok {
			return
		}

		atomic.AddInt64(&p.handlerCount, 1)
		go func(event *fetch.EventRequestPaused) {
			defer atomic.AddInt64(&p.handlerCount, -1)

			cmdCtx, cancel := context.WithTimeout(p.ctx, interceptTimeout)
			defer cancel()

			c := chromedp.FromContext(cmdCtx)
			executor := cdp.WithExecutor(cmdCtx, c.Target)

			if p.shouldBlock(bl, event) {
				if err := fetch.FailRequest(event.RequestID, network.ErrorReasonAborted).Do(executor); err != nil {
					p.log.Debug().Str("url", event.Request.URL).Err(err).Msg("failed to abort request")
				}
				return
			}

			if err := fetch.ContinueRequest(event.RequestID).Do(executor); err != nil {
				p.log.Debug().Str("url", event.Request.URL).Err(err).Msg("failed to continue request")
			}
		}(event)
	})
}

func (p *Page) shouldBlock(bl *blocklist.Blocklist, event *fetch.EventRequestPaused) bool {
	if blockedResourceTypes[event.ResourceType] {
		return true
	}
	if bl == nil || !hostCheckedResourceTypes[event.ResourceType] {
		return false
	}
	u, err := url.Parse(event.Request.URL)
	if err != nil {
		return false
	}
	return bl.Blocked(u.Host)
}

// setSessionCookie installs the authenticated session cookie before any
// navigation happens.
func setSessionCookie(value string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		return network.SetCookie(sessionCookieName, value).
			WithDomain(sessionCookieDomain).
			WithPath("/").
			WithHTTPOnly(true).
			WithSecure(true).
			Do(ctx)
	}
}

// Context returns the tab context for running chromedp actions.
func (p *Page) Context() context.Context {
	return p.ctx
}

// Run executes chromedp actions against this page.
func (p *Page) Run(actions ...chromedp.Action) error {
	return chromedp.Run(p.ctx, actions...)
}

// Close waits briefly for in-flight interception handlers to drain, then
// cancels the tab. Close is idempotent.
func (p *Page) Close() error {
	if p.cancel == nil {
		return nil
	}

	deadline := time.Now().Add(interceptTimeout)
	for atomic.LoadInt64(&p.handlerCount) > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	p.cancel()
	p.cancel = nil
	return nil
}
