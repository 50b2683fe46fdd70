package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yzke/dlog/internal/domain"
	"github.com/yzke/dlog/internal/idspec"
	"github.com/yzke/dlog/internal/pathutil"
	"github.com/yzke/dlog/internal/store"
)

func delCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "del [id-list]",
		Short: "Delete entries by id or by directory tree",
		Long: `Delete log entries. Ids accept singles, comma lists and ranges
(3 / 3,5,8 / 7-9 / 3,7-9,12). With -r every entry under the current
directory tree is deleted instead. Both forms ask for confirmation
before touching anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if recursive && len(args) > 0 {
				return fmt.Errorf("%w: -r cannot be combined with an id list", domain.ErrInvalidInput)
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			var ids []int64
			switch {
			case recursive:
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("current directory: %w", err)
				}
				dir, err := pathutil.Normalize(wd)
				if err != nil {
					return err
				}

				entries, err := s.Fetch(store.Filter{Dir: dir, Recursive: true})
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Fprintln(out, "No logs found in this directory or subdirectories.")
					return nil
				}

				fmt.Fprintf(out, "Found %d log(s) to delete under %s:\n", len(entries), dir)
				for _, e := range entries {
					fmt.Fprintf(out, "- [%d] %s\n", e.ID, e.Time().Local().Format("2006-01-02"))
					ids = append(ids, e.ID)
				}
			case len(args) == 1:
				ids, err = idspec.Parse(args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("%w: provide log ids or use --recursive", domain.ErrInvalidInput)
			}

			if len(ids) == 0 {
				fmt.Fprintln(out, "No valid log ids to delete.")
				return nil
			}

			fmt.Fprintf(out, "About to permanently delete log ids %v.\n", ids)
			if !confirm(cmd.InOrStdin(), out, "Confirm deletion?") {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}

			count, err := s.DeleteByIDs(ids)
			if err != nil {
				return err
			}

			success(out, "Deleted %d log(s).", count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "delete everything under the current directory tree")
	return cmd
}
