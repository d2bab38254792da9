package youtube

import "github.com/vidtools/yt-extract/internal/domain"

// Wire types for the videos.list response. Only the fields this tool renders
// are decoded; everything else in the payload is ignored.

type listResponse struct {
	Items []item `json:"items"`
}

type item struct {
	ID             string          `json:"id"`
	Snippet        *snippet        `json:"snippet"`
	ContentDetails *contentDetails `json:"contentDetails"`
	Statistics     *statistics     `json:"statistics"`
}

type snippet struct {
	Title        string `json:"title"`
	PublishedAt  string `json:"publishedAt"`
	ChannelTitle string `json:"channelTitle"`
}

type contentDetails struct {
	Duration string `json:"duration"`
}

type statistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

func (it item) toVideo() domain.Video {
	v := domain.Video{
		ID:           it.ID,
		ViewCount:    "0",
		LikeCount:    "0",
		CommentCount: "0",
	}
	if it.Snippet != nil {
		v.Title = it.Snippet.Title
		v.PublishedAt = it.Snippet.PublishedAt
		v.ChannelTitle = it.Snippet.ChannelTitle
	}
	if it.ContentDetails != nil {
		v.Duration = it.ContentDetails.Duration
	}
	if it.Statistics != nil {
		if it.Statistics.ViewCount != "" {
			v.ViewCount = it.Statistics.ViewCount
		}
		if it.Statistics.LikeCount != "" {
			v.LikeCount = it.Statistics.LikeCount
		}
		if it.Statistics.CommentCount != "" {
			v.CommentCount = it.Statistics.CommentCount
		}
	}
	return v
}
