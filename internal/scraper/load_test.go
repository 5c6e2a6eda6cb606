package scraper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evalCall struct {
	script string
	at     time.Time
}

func TestRunExpandPasses_InlinePassAfterSettle(t *testing.T) {
	calls := make([]evalCall, 0)
	eval := func(_ context.Context, script string, res any) error {
		calls = append(calls, evalCall{script: script, at: time.Now()})
		switch v := res.(type) {
		case *bool:
			// only the experience section expander exists
			*v = strings.Contains(script, "#experience-section")
		case *int:
			*v = 3
		}
		return nil
	}

	outcomes := make([]expandOutcome, 0)
	settle := 30 * time.Millisecond
	err := runExpandPasses(context.Background(), eval, settle, &outcomes)
	require.NoError(t, err)

	require.Len(t, calls, len(seeMoreSelectors)+1)
	inline := calls[len(calls)-1]
	assert.Contains(t, inline.script, "inline-show-more-text__button")

	lastSection := calls[len(calls)-2]
	assert.GreaterOrEqual(t, inline.at.Sub(lastSection.at), settle)

	statuses := map[string]string{}
	for _, o := range outcomes {
		statuses[o.Selector] = o.Status
	}
	assert.Equal(t, "clicked", statuses[`#experience-section button.pv-profile-section__see-more-inline`])
	assert.Equal(t, "missing", statuses[`#line-clamp-show-more-button`])
	assert.Equal(t, "clicked 3", statuses["inline-show-more-text"])
}

func TestRunExpandPasses_CancelledBeforeSecondPass(t *testing.T) {
	calls := make([]evalCall, 0)
	eval := func(_ context.Context, script string, _ any) error {
		calls = append(calls, evalCall{script: script})
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := make([]expandOutcome, 0)
	err := runExpandPasses(ctx, eval, time.Hour, &outcomes)
	assert.ErrorIs(t, err, context.Canceled)

	// the inline pass never ran
	require.Len(t, calls, len(seeMoreSelectors))
	for _, call := range calls {
		assert.NotContains(t, call.script, "inline-show-more-text__button")
	}
}

func TestRunAutoScroll_StopsAtDocumentHeight(t *testing.T) {
	scrolls := 0
	eval := func(_ context.Context, script string, res any) error {
		if h, ok := res.(*int); ok {
			*h = 1000
			return nil
		}
		scrolls++
		return nil
	}

	err := runAutoScroll(context.Background(), eval, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, scrolls)
}

func TestRunAutoScroll_BoundedByContext(t *testing.T) {
	scrolled := 0
	eval := func(_ context.Context, script string, res any) error {
		if h, ok := res.(*int); ok {
			// the page keeps growing faster than the walk
			*h = scrolled + 100000
			return nil
		}
		scrolled += scrollStep
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := runAutoScroll(ctx, eval, 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
