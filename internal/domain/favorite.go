package domain

type Favorite struct {
	UserID  int       `json:"user_id"`
	PostID  int       `json:"post_id"`
	AddedAt Timestamp `json:"added_at"`
}
