package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yzke/dlog/internal/config"
	"github.com/yzke/dlog/internal/pathutil"
)

func logCmd(cfg *config.Config) *cobra.Command {
	var message, tags string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a new entry for the current directory",
		Long: `Record a log entry tied to the current working directory.
Without -m the default editor opens for longer notes; an entry left
empty is discarded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := message
			if content == "" {
				var err error
				content, err = editContent(cfg, "")
				if err != nil {
					return err
				}
			}

			if strings.TrimSpace(content) == "" {
				logger.Warn("empty log, skipped")
				return nil
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("current directory: %w", err)
			}
			dir, err := pathutil.Normalize(wd)
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := s.Append(dir, content, tags)
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Log #%d recorded.", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "log content, skips the editor")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma-separated tags")
	return cmd
}
