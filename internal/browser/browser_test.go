package browser

import (
	"context"
	"testing"
	"time"

	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-scraper/internal/blocklist"
)

func TestManager_NewPageWithoutStart(t *testing.T) {
	m := NewManager(Config{Logger: zerolog.Nop()})

	page, err := m.NewPage(context.Background(), "cookie")
	assert.Nil(t, page)

	var pageErr *PageError
	require.ErrorAs(t, err, &pageErr)
}

func TestManager_NotRunningInitially(t *testing.T) {
	m := NewManager(Config{Logger: zerolog.Nop()})
	assert.False(t, m.Running())
}

func TestManager_KeepsLaunchTimeout(t *testing.T) {
	m := NewManager(Config{Timeout: 10 * time.Second, Logger: zerolog.Nop()})
	assert.Equal(t, 10*time.Second, m.cfg.Timeout)
}

func TestManager_CloseIdempotent(t *testing.T) {
	m := NewManager(Config{Logger: zerolog.Nop()})
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}

func TestPage_ShouldBlock(t *testing.T) {
	bl, err := blocklist.Load()
	require.NoError(t, err)

	p := &Page{log: zerolog.Nop()}

	tests := []struct {
		name     string
		url      string
		resource network.ResourceType
		expected bool
	}{
		{"image blocked by type", "https://media.licdn.com/photo.jpg", network.ResourceTypeImage, true},
		{"font blocked by type", "https://static.licdn.com/f.woff2", network.ResourceTypeFont, true},
		{"media blocked by type", "https://media.licdn.com/v.mp4", network.ResourceTypeMedia, true},
		{"beacon blocked by type", "https://www.linkedin.com/li/track", network.ResourceTypePing, true},
		{"stylesheet never blocked", "https://www.google-analytics.com/style.css", network.ResourceTypeStylesheet, false},
		{"document on allowed host", "https://www.linkedin.com/in/someone/", network.ResourceTypeDocument, false},
		{"script on tracker host", "https://www.google-analytics.com/analytics.js", network.ResourceTypeScript, true},
		{"xhr on tracker host", "https://api.mixpanel.com/track", network.ResourceTypeXHR, true},
		{"fetch on allowed host", "https://www.linkedin.com/voyager/api/me", network.ResourceTypeFetch, false},
		{"script on allowed host", "https://static-exp1.licdn.com/sc/h/main.js", network.ResourceTypeScript, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &fetch.EventRequestPaused{
				Request:      &network.Request{URL: tt.url},
				ResourceType: tt.resource,
			}
			assert.Equal(t, tt.expected, p.shouldBlock(bl, event))
		})
	}
}

func TestPage_ShouldBlockNilBlocklist(t *testing.T) {
	p := &Page{log: zerolog.Nop()}
	event := &fetch.EventRequestPaused{
		Request:      &network.Request{URL: "https://www.google-analytics.com/analytics.js"},
		ResourceType: network.ResourceTypeScript,
	}
	assert.False(t, p.shouldBlock(nil, event))
}

func TestPage_CloseIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Page{ctx: ctx, cancel: cancel, log: zerolog.Nop()}

	assert.NoError(t, p.Close())
	assert.NoError(t, p.Close())
}
