package domain

// Comment mirrors an upstream post_comments row. The text lives under the
// wire key "comment"; rating is mandatory upstream.
type Comment struct {
	ID      int       `json:"id"`
	PostID  int       `json:"post_id"`
	UserID  int       `json:"user_id"`
	Content string    `json:"comment"`
	Rating  float64   `json:"rating"`
	Date    Timestamp `json:"comment_date"`
}

type CommentInput struct {
	PostID  int
	UserID  int
	Content string
	Rating  float64
}

// HistoryEntry is one view-history item as the upstream returns it: the
// joined post record plus the view timestamp. Deleted posts drop out of the
// join upstream.
type HistoryEntry struct {
	Post     ListingSummary `json:"post"`
	ViewedAt Timestamp      `json:"viewed_at"`
}
