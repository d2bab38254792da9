package domain

// Domain contains core models shared between the API client and rendering.

// Video is one videos.list resource flattened to the fields this tool renders.
// Counter fields keep the decimal-string form the API returns; "0" when the
// API omits them (e.g. comments disabled).
type Video struct {
	ID           string
	Title        string
	ChannelTitle string
	PublishedAt  string
	ViewCount    string
	LikeCount    string
	CommentCount string
	Duration     string
}
