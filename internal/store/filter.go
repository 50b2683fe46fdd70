package store

import "strings"

// Filter describes one retrieval query over the logs table. Dir is
// required and must already be normalized (see pathutil.Normalize);
// the remaining predicates are optional and combine with AND.
type Filter struct {
	Dir       string
	Recursive bool
	Tag       string // exact tag token
	Date      string // YYYY-MM-DD, validated by the caller
	Keyword   string // case-insensitive substring over content and tags
	Limit     int    // 0 means unbounded
}

// build assembles the parameterized SELECT for the filter. Predicates
// accumulate as (clause, args) pairs so user input never touches the
// query text itself.
func (f Filter) build() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Recursive {
		// The stored directory never ends with a separator, so the
		// wildcard carries its own: "/a" matches "/a" and "/a/b" but
		// never the sibling "/ab". Root is the one normalized form
		// that does end with a separator, hence the trim.
		conds = append(conds, "(directory = ? OR directory LIKE ? || '/%')")
		args = append(args, f.Dir, strings.TrimSuffix(f.Dir, "/"))
	} else {
		conds = append(conds, "directory = ?")
		args = append(args, f.Dir)
	}

	if f.Tag != "" {
		// Whole-token match within the comma-separated tags field:
		// the sole tag, first, middle, or last.
		conds = append(conds, "(tags = ? OR tags LIKE ? || ',%' OR tags LIKE '%,' || ? || ',%' OR tags LIKE '%,' || ?)")
		args = append(args, f.Tag, f.Tag, f.Tag, f.Tag)
	}

	if f.Date != "" {
		conds = append(conds, "date(timestamp) = ?")
		args = append(args, f.Date)
	}

	if f.Keyword != "" {
		conds = append(conds, "(content LIKE '%' || ? || '%' OR tags LIKE '%' || ? || '%')")
		args = append(args, f.Keyword, f.Keyword)
	}

	query := "SELECT id, timestamp, directory, content, tags FROM logs WHERE " +
		strings.Join(conds, " AND ") +
		" ORDER BY timestamp DESC, id DESC"

	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	return query, args
}
