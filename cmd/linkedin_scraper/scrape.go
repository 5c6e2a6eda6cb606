package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-scraper/internal/observability"
	"github.com/jonathan/linkedin-scraper/internal/schemas"
	"github.com/jonathan/linkedin-scraper/internal/scraper"
	"github.com/jonathan/linkedin-scraper/internal/store"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape one or more profile URLs",
	Long:  "Scrapes each given profile URL through an authenticated browser session and writes the structured result as JSON to stdout or a file.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScrape,
}

var (
	scrapeCookie      string
	scrapeTimeout     time.Duration
	scrapeHeadless    bool
	scrapeKeepAlive   bool
	scrapeUserAgent   string
	scrapeOutPath     string
	scrapeDatabaseURL string
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeCookie, "cookie", "c", "", "li_at session cookie value (overrides LI_AT_COOKIE env var)")
	scrapeCmd.Flags().DurationVar(&scrapeTimeout, "timeout", scraper.DefaultTimeout, "Navigation timeout")
	scrapeCmd.Flags().BoolVar(&scrapeHeadless, "headless", true, "Run the browser headless")
	scrapeCmd.Flags().BoolVar(&scrapeKeepAlive, "keep-alive", false, "Keep the browser alive between URLs")
	scrapeCmd.Flags().StringVar(&scrapeUserAgent, "user-agent", "", "Override the browser user agent")
	scrapeCmd.Flags().StringVarP(&scrapeOutPath, "out", "o", "", "Write results to this file instead of stdout")
	scrapeCmd.Flags().StringVar(&scrapeDatabaseURL, "database-url", "", "Also store results in this PostgreSQL database (or DATABASE_URL env var)")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, args []string) error {
	log := newLogger()

	cookie := scrapeCookie
	if cookie == "" {
		cookie = os.Getenv("LI_AT_COOKIE")
	}
	if cookie == "" {
		return fmt.Errorf("session cookie required: set --cookie flag or LI_AT_COOKIE environment variable")
	}

	opts := scraper.DefaultOptions()
	opts.SessionCookieValue = cookie
	opts.Timeout = scrapeTimeout
	opts.Headless = scrapeHeadless
	opts.UserAgent = scrapeUserAgent
	opts.Logger = log
	// Reuse the browser across URLs; the final teardown happens below.
	if len(args) > 1 {
		opts.KeepAlive = true
	} else {
		opts.KeepAlive = scrapeKeepAlive
	}

	s, err := scraper.New(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close scraper")
		}
	}()

	ctx := context.Background()

	var db *store.Store
	databaseURL := scrapeDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		db, err = store.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to result store: %w", err)
		}
		defer db.Close()
	}

	if err := s.Setup(ctx); err != nil {
		return err
	}

	results := make([]json.RawMessage, 0, len(args))
	for _, profileURL := range args {
		result, err := s.Run(ctx, profileURL)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := schemas.ValidateResult(data); err != nil {
			return fmt.Errorf("scraped document failed schema validation: %w", err)
		}
		results = append(results, data)

		if verbose {
			observability.NewPrinter(os.Stderr).PrintResult(result)
		}

		if db != nil {
			id, err := db.SaveResult(ctx, result)
			if err != nil {
				return fmt.Errorf("failed to store result for %s: %w", profileURL, err)
			}
			log.Info().Str("id", id.String()).Str("url", profileURL).Msg("result stored")
		}
	}

	return writeResults(results)
}

// writeResults emits a single document for one URL and a JSON array for
// several.
func writeResults(results []json.RawMessage) error {
	var output []byte
	if len(results) == 1 {
		output = results[0]
	} else {
		var err error
		output, err = json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
	}
	output = append(output, '\n')

	if scrapeOutPath == "" {
		_, err := os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(scrapeOutPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", scrapeOutPath, err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Results written to %s\n", scrapeOutPath)
	return nil
}
