// Package render turns fetched video records into terminal tables.
package render

import (
	"fmt"
	"strings"

	"github.com/vidtools/yt-extract/internal/domain"
)

// Column maps a stable column id to a header label and a value extractor.
type Column struct {
	ID      string
	Label   string
	Extract func(domain.Video) string
}

// registry order defines the default column order.
var registry = []Column{
	{ID: "id", Label: "id", Extract: func(v domain.Video) string { return v.ID }},
	{ID: "title", Label: "title", Extract: func(v domain.Video) string { return v.Title }},
	{ID: "publication_date", Label: "publication date", Extract: func(v domain.Video) string { return domain.FormatDate(v.PublishedAt) }},
	{ID: "channel_title", Label: "channel title", Extract: func(v domain.Video) string { return v.ChannelTitle }},
	{ID: "view_count", Label: "view count", Extract: func(v domain.Video) string { return v.ViewCount }},
	{ID: "like_count", Label: "like count", Extract: func(v domain.Video) string { return v.LikeCount }},
	{ID: "comment_count", Label: "comment count", Extract: func(v domain.Video) string { return v.CommentCount }},
	{ID: "duration", Label: "duration", Extract: func(v domain.Video) string { return domain.FormatDuration(v.Duration) }},
}

// DefaultColumns returns the full column id list in default order.
func DefaultColumns() []string {
	out := make([]string, len(registry))
	for i, c := range registry {
		out[i] = c.ID
	}
	return out
}

// Resolve maps column ids to their Column definitions. Unknown ids are
// skipped; a selection that resolves to nothing is an error.
func Resolve(columnIDs []string) ([]Column, error) {
	byID := make(map[string]Column, len(registry))
	for _, c := range registry {
		byID[c.ID] = c
	}

	out := make([]Column, 0, len(columnIDs))
	for _, id := range columnIDs {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no known columns in selection %v", columnIDs)
	}
	return out, nil
}
