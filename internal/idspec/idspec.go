// Package idspec parses the compact id notation accepted by the del
// command: single ids, comma lists, inclusive dash ranges, and any mix
// of the three ("3,5-7,10").
package idspec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yzke/dlog/internal/domain"
)

// Parse expands spec into an ascending, deduplicated list of ids.
// Empty segments from stray commas are skipped; an entirely empty spec
// yields an empty list, which callers treat as nothing to delete.
func Parse(spec string) ([]int64, error) {
	seen := make(map[int64]struct{})

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			start, end, err := parseRange(part)
			if err != nil {
				return nil, err
			}
			for id := start; id <= end; id++ {
				seen[id] = struct{}{}
			}
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, part)
		}
		seen[id] = struct{}{}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func parseRange(part string) (int64, int64, error) {
	startStr, endStr, _ := strings.Cut(part, "-")
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)

	if startStr == "" || endStr == "" {
		return 0, 0, fmt.Errorf("%w: invalid range %q", domain.ErrInvalidInput, part)
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, startStr)
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, endStr)
	}

	if start > end {
		return 0, 0, fmt.Errorf("%w: range start %d greater than end %d", domain.ErrInvalidInput, start, end)
	}
	return start, end, nil
}
