package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-scraper/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently stored scrapes",
	RunE:  runHistory,
}

var (
	historyDatabaseURL string
	historyLimit       int
)

func init() {
	historyCmd.Flags().StringVar(&historyDatabaseURL, "database-url", "", "PostgreSQL database URL (or DATABASE_URL env var)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of scrapes to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL required: set --database-url flag or DATABASE_URL environment variable")
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to result store: %w", err)
	}
	defer db.Close()

	records, err := db.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No stored scrapes.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCRAPED AT\tNAME\tURL\tID")
	for _, rec := range records {
		name := ""
		if rec.FullName != nil {
			name = *rec.FullName
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.ScrapedAt.Format("2006-01-02 15:04"), name, rec.URL, rec.ID)
	}
	return w.Flush()
}
