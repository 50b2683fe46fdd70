package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yzke/dlog/internal/config"
	"github.com/yzke/dlog/internal/domain"
	"github.com/yzke/dlog/internal/store"
)

func fixCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fix <id>",
		Short: "Edit an entry's content in your editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, args[0])
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			oldContent, err := s.GetContent(id)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("log #%d: %w", id, domain.ErrNotFound)
			}
			if err != nil {
				return err
			}

			newContent, err := editContent(cfg, oldContent)
			if err != nil {
				return err
			}

			err = applyEdit(s, id, oldContent, newContent)
			if errors.Is(err, domain.ErrNoChange) {
				// Distinguished outcome, not a failure: nothing was
				// lost, nothing needs persisting.
				fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				return nil
			}
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Log #%d updated.", id)
			return nil
		},
	}
}

// applyEdit persists the edited content unless it is equivalent to
// what is already stored (trimmed comparison).
func applyEdit(s *store.Store, id int64, oldContent, newContent string) error {
	if strings.TrimSpace(newContent) == strings.TrimSpace(oldContent) {
		return domain.ErrNoChange
	}
	return s.UpdateContent(id, newContent)
}
