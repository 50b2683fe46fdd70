package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the database and clean up vanished directories",
		Long: `Create the dlog database if it does not exist, then look for
entries whose directory no longer exists on disk and offer to delete
them. Running init on an existing database is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			success(out, "Database initialized at %s", dbPath)

			dirs, err := s.DistinctDirectories()
			if err != nil {
				return err
			}

			var orphaned []string
			for _, dir := range dirs {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					orphaned = append(orphaned, dir)
				}
			}

			if len(orphaned) == 0 {
				success(out, "All log directories are in sync with the filesystem.")
				return nil
			}

			logger.Warn("some log directories no longer exist", "count", len(orphaned))
			fmt.Fprintln(out, "The following directories with logs no longer exist:")
			for _, dir := range orphaned {
				fmt.Fprintf(out, "- %s\n", dir)
			}

			if !confirm(cmd.InOrStdin(), out, "Permanently delete all logs from these directories?") {
				fmt.Fprintln(out, "Cancelled. No logs were deleted.")
				return nil
			}

			count, err := s.DeleteByDirectories(orphaned)
			if err != nil {
				return err
			}

			success(out, "Deleted %d log entries from vanished directories.", count)
			return nil
		},
	}
}
