package scraper

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/linkedin-scraper/internal/browser"
)

// loginURL is where an unauthenticated visitor ends up. A valid session
// cookie makes LinkedIn redirect away from it immediately.
const loginURL = "https://www.linkedin.com/login"

// networkQuietWindow is how long the wire must stay silent before the page
// counts as settled.
const networkQuietWindow = 500 * time.Millisecond

// verifySession navigates the page to the login URL, waits for network
// activity to settle, and inspects where the browser lands. The redirect away
// from the login page is driven by calls that fire after DOM-ready, so a
// body-ready wait alone reads a stale location. Staying on a login or
// checkpoint page means the cookie no longer authenticates.
func (s *Scraper) verifySession(page *browser.Page) error {
	navCtx, cancel := context.WithTimeout(page.Context(), s.opts.Timeout)
	defer cancel()

	var finalURL string
	err := chromedp.Run(navCtx,
		chromedp.Navigate(loginURL),
		chromedp.WaitReady("body"),
		waitNetworkIdle(networkQuietWindow),
		chromedp.Location(&finalURL),
	)
	if err != nil {
		return &SetupError{Message: "failed to verify session", Cause: err}
	}

	s.log.Debug().Str("final_url", finalURL).Msg("session check navigation finished")

	if isAuthWall(finalURL) {
		return &SessionExpiredError{Message: "login page reached, session cookie is invalid or expired"}
	}
	return nil
}

// networkIdleTracker counts in-flight requests from CDP network events and
// reports when the wire has been quiet long enough.
type networkIdleTracker struct {
	inflight int64
	activity chan struct{}
}

func newNetworkIdleTracker() *networkIdleTracker {
	return &networkIdleTracker{activity: make(chan struct{}, 1)}
}

func (t *networkIdleTracker) handle(ev interface{}) {
	switch ev.(type) {
	case *network.EventRequestWillBeSent:
		atomic.AddInt64(&t.inflight, 1)
	case *network.EventLoadingFinished, *network.EventLoadingFailed:
		atomic.AddInt64(&t.inflight, -1)
	default:
		return
	}
	select {
	case t.activity <- struct{}{}:
	default:
	}
}

// wait blocks until no request has started or finished for quiet and nothing
// is in flight, or until the context ends.
func (t *networkIdleTracker) wait(ctx context.Context, quiet time.Duration) error {
	timer := time.NewTimer(quiet)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.activity:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(quiet)
		case <-timer.C:
			if atomic.LoadInt64(&t.inflight) <= 0 {
				return nil
			}
			timer.Reset(quiet)
		}
	}
}

// waitNetworkIdle waits until network activity settles, bounded by the
// action's context.
func waitNetworkIdle(quiet time.Duration) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		tracker := newNetworkIdleTracker()

		listenCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		chromedp.ListenTarget(listenCtx, tracker.handle)

		return tracker.wait(ctx, quiet)
	}
}

// isAuthWall reports whether a landing URL is a login or checkpoint page.
func isAuthWall(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := u.Path
	return strings.HasPrefix(path, "/login") ||
		strings.HasPrefix(path, "/checkpoint") ||
		strings.HasPrefix(path, "/uas/login") ||
		strings.HasPrefix(path, "/authwall")
}
