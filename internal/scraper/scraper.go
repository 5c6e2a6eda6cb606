package scraper

import (
	"context"
	"strings"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/linkedin-scraper/internal/blocklist"
	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/profile"
)

// profileDomain must appear in every profile URL passed to Run.
const profileDomain = "linkedin.com/"

// Scraper scrapes public profile data through an authenticated browser
// session. It is not safe for concurrent use; one scrape runs at a time.
type Scraper struct {
	opts    Options
	log     zerolog.Logger
	manager *browser.Manager
	ready   bool
}

// New validates the options and returns an unstarted Scraper. The browser
// does not launch until Setup runs.
func New(opts Options) (*Scraper, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	bl, err := blocklist.Load()
	if err != nil {
		return nil, &ConfigurationError{Message: "failed to load blocklist", Cause: err}
	}

	log := opts.Logger.With().Str("component", "scraper").Logger()
	return &Scraper{
		opts: opts,
		log:  log,
		manager: browser.NewManager(browser.Config{
			Headless:  opts.Headless,
			UserAgent: opts.UserAgent,
			Timeout:   opts.Timeout,
			Blocklist: bl,
			Logger:    opts.Logger,
		}),
	}, nil
}

// Setup launches the browser and verifies that the session cookie still
// authenticates. A failed launch or an expired session tears the partial
// browser down before the error is returned.
func (s *Scraper) Setup(ctx context.Context) error {
	if s.ready {
		return nil
	}

	if err := s.manager.Start(ctx); err != nil {
		return &SetupError{Message: "failed to start browser", Cause: err}
	}

	page, err := s.manager.NewPage(ctx, s.opts.SessionCookieValue)
	if err != nil {
		s.teardown()
		return &SetupError{Message: "failed to open session check page", Cause: err}
	}

	if err := s.verifySession(page); err != nil {
		s.teardown()
		return err
	}

	if err := s.manager.ClosePage(); err != nil {
		s.log.Warn().Err(err).Msg("failed to close session check page")
	}

	s.ready = true
	s.log.Info().Msg("session verified, scraper ready")
	return nil
}

// Run scrapes one profile URL and returns the normalized result. Any error
// after setup tears the whole browser down before returning. With KeepAlive
// set the browser survives a successful run for the next one.
func (s *Scraper) Run(ctx context.Context, profileURL string) (*profile.Result, error) {
	if !s.ready {
		return nil, &SetupError{Message: "setup has not been run"}
	}
	if strings.TrimSpace(profileURL) == "" {
		return nil, &ConfigurationError{Message: "no profile URL given"}
	}
	if !strings.Contains(profileURL, profileDomain) {
		return nil, &ConfigurationError{Message: "profile URL is not a linkedin.com URL"}
	}

	runID := uuid.NewString()
	log := s.log.With().Str("run_id", runID).Str("url", profileURL).Logger()
	log.Info().Msg("starting scrape")

	page, err := s.manager.NewPage(ctx, s.opts.SessionCookieValue)
	if err != nil {
		s.teardown()
		return nil, &SetupError{Message: "failed to open page", Cause: err}
	}

	navCtx, cancel := context.WithTimeout(page.Context(), s.opts.Timeout)
	err = chromedp.Run(navCtx,
		chromedp.Navigate(profileURL),
		chromedp.WaitReady("body"),
	)
	cancel()
	if err != nil {
		s.teardown()
		return nil, &NavigationError{Message: "failed to load profile page", URL: profileURL, Cause: err}
	}

	loadCtx, cancelLoad := context.WithTimeout(page.Context(), s.opts.Timeout)
	html, err := s.loadContent(loadCtx)
	cancelLoad()
	if err != nil {
		s.teardown()
		return nil, &NavigationError{Message: "failed to load profile content", URL: profileURL, Cause: err}
	}

	raw, err := profile.Extract(html, profileURL)
	if err != nil {
		s.teardown()
		return nil, err
	}
	result := profile.Normalize(raw)

	if err := s.manager.ClosePage(); err != nil {
		log.Warn().Err(err).Msg("failed to close page after scrape")
	}
	if !s.opts.KeepAlive {
		log.Debug().Msg("keep-alive disabled, closing browser")
		if err := s.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close browser after scrape")
		}
	}

	log.Info().
		Int("experiences", len(result.Experiences)).
		Int("education", len(result.Education)).
		Int("volunteer_experiences", len(result.VolunteerExperiences)).
		Int("skills", len(result.Skills)).
		Msg("scrape finished")
	return result, nil
}

// Close shuts the browser down. Safe to call repeatedly and on a scraper
// that never finished setup.
func (s *Scraper) Close() error {
	s.ready = false
	return s.manager.Close()
}

// teardown closes everything after a mid-run failure. The original error
// always wins; teardown problems are only logged.
func (s *Scraper) teardown() {
	s.ready = false
	if err := s.manager.Close(); err != nil {
		s.log.Warn().Err(err).Msg("teardown failed")
	}
}
