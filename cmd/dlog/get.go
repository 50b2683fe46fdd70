package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yzke/dlog/internal/config"
	"github.com/yzke/dlog/internal/domain"
	"github.com/yzke/dlog/internal/pathutil"
	"github.com/yzke/dlog/internal/store"
)

func getCmd(cfg *config.Config) *cobra.Command {
	var (
		num       int
		recursive bool
		tag       string
		date      string
		search    string
	)

	cmd := &cobra.Command{
		Use:   "get [path]",
		Short: "Retrieve log entries",
		Long: `Show log entries for a directory, newest first. Defaults to the
current directory and the configured entry limit; use -n 0 for all
matches and -r to include subdirectories.

The -t filter matches whole tags only ("test" does not match
"testing"); use -s for substring search over content and tags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			} else {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("current directory: %w", err)
				}
				target = wd
			}

			if date != "" {
				if _, err := time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", domain.ErrInvalidInput, date)
				}
			}

			dir, err := pathutil.Normalize(target)
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			entries, err := s.Fetch(store.Filter{
				Dir:       dir,
				Recursive: recursive,
				Tag:       tag,
				Date:      date,
				Keyword:   search,
				Limit:     num,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No logs found.")
				return nil
			}

			for _, e := range entries {
				renderEntry(out, e, recursive)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&num, "num", "n", cfg.DefaultLimit, "show the latest N entries, 0 for all")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "include subdirectories")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "filter by tag (whole-token match)")
	cmd.Flags().StringVar(&date, "date", "", "filter by date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "keyword search over content and tags")
	return cmd
}
