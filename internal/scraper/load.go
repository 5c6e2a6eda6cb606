package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	scrollStep     = 500
	scrollInterval = 100 * time.Millisecond

	// settleDelay separates the two expansion passes. The per-section clicks
	// trigger a re-render; querying the generic expanders too early can hit
	// detached nodes.
	settleDelay = 500 * time.Millisecond
)

// seeMoreSelectors expand the collapsed profile sections, in page order.
var seeMoreSelectors = []string{
	`#line-clamp-show-more-button`,
	`.pv-profile-section.pv-about-section button.pv-profile-section__see-more-inline`,
	`#experience-section button.pv-profile-section__see-more-inline`,
	`#education-section button.pv-profile-section__see-more-inline`,
	`.pv-profile-section.volunteering-section button.pv-profile-section__see-more-inline`,
	`.pv-skill-categories-section button.pv-skills-section__additional-skills`,
}

// clickAllInlineExpanders clicks every generic inline "see more" toggle that
// is still collapsed after the per-section pass.
const clickAllInlineExpanders = `
(() => {
	const buttons = document.querySelectorAll('button.inline-show-more-text__button[aria-expanded="false"], button.inline-show-more-text__button:not([aria-expanded])');
	buttons.forEach(b => b.click());
	return buttons.length;
})()
`

// expandOutcome records what happened to one expander button.
type expandOutcome struct {
	Selector string
	Status   string
}

// evalFunc runs a script in the page and unmarshals its result into res.
// Indirection keeps the pass logic testable without a browser.
type evalFunc func(ctx context.Context, script string, res any) error

func chromedpEvaluate(ctx context.Context, script string, res any) error {
	return chromedp.Evaluate(script, res).Do(ctx)
}

// autoScroll scrolls the page in fixed steps until the accumulated distance
// reaches the document height, re-reading the height every tick so content
// appended by lazy loading extends the walk. The caller's context bounds the
// whole walk.
func autoScroll() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		return runAutoScroll(ctx, chromedpEvaluate, scrollInterval)
	}
}

func runAutoScroll(ctx context.Context, eval evalFunc, interval time.Duration) error {
	scrolled := 0
	for {
		var height int
		if err := eval(ctx, `document.body.scrollHeight`, &height); err != nil {
			return fmt.Errorf("failed to read scroll height: %w", err)
		}
		if scrolled >= height {
			return nil
		}

		if err := eval(ctx, fmt.Sprintf(`window.scrollBy(0, %d)`, scrollStep), nil); err != nil {
			return fmt.Errorf("failed to scroll: %w", err)
		}
		scrolled += scrollStep

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// expandSections clicks each section expander once, waits out the re-render,
// then clicks the generic inline expanders. A missing or failing button never
// aborts loading; outcomes accumulate for logging.
func expandSections(outcomes *[]expandOutcome) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		return runExpandPasses(ctx, chromedpEvaluate, settleDelay, outcomes)
	}
}

func runExpandPasses(ctx context.Context, eval evalFunc, settle time.Duration, outcomes *[]expandOutcome) error {
	for _, selector := range seeMoreSelectors {
		var clicked bool
		script := fmt.Sprintf(`(() => { const b = document.querySelector(%q); if (!b) return false; b.click(); return true; })()`, selector)
		if err := eval(ctx, script, &clicked); err != nil {
			*outcomes = append(*outcomes, expandOutcome{Selector: selector, Status: "failed"})
			continue
		}
		if clicked {
			*outcomes = append(*outcomes, expandOutcome{Selector: selector, Status: "clicked"})
		} else {
			*outcomes = append(*outcomes, expandOutcome{Selector: selector, Status: "missing"})
		}
	}

	// Let the re-render triggered by the first pass finish before the second
	// pass queries the DOM.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(settle):
	}

	var expanded int
	if err := eval(ctx, clickAllInlineExpanders, &expanded); err == nil && expanded > 0 {
		*outcomes = append(*outcomes, expandOutcome{Selector: "inline-show-more-text", Status: fmt.Sprintf("clicked %d", expanded)})
	}
	return nil
}

// loadContent scrolls the page, expands its collapsed sections, and captures
// the rendered document. The passed context carries the stage deadline.
func (s *Scraper) loadContent(ctx context.Context) (string, error) {
	outcomes := make([]expandOutcome, 0, len(seeMoreSelectors))

	var html string
	err := chromedp.Run(ctx,
		autoScroll(),
		expandSections(&outcomes),
		autoScroll(),
		chromedp.OuterHTML("html", &html),
	)

	for _, o := range outcomes {
		s.log.Debug().Str("selector", o.Selector).Str("status", o.Status).Msg("section expander")
	}
	if err != nil {
		return "", fmt.Errorf("failed to load page content: %w", err)
	}
	return html, nil
}
