package domain

type User struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	ContactNumber string    `json:"contact_number"`
	AvatarURL     string    `json:"avatar_url"`
	CreatedAt     Timestamp `json:"created_at"`
}

type SignupInput struct {
	Email         string
	Password      string
	FullName      string
	ContactNumber string
}

// UserUpdate carries a profile edit. The upstream demands the account
// password on every update, so Password is mandatory.
type UserUpdate struct {
	UserID        int
	Password      string
	FullName      string
	ContactNumber string
	AvatarURL     string
}

type UserStats struct {
	PostsCount     int `json:"posts_count"`
	CommentsCount  int `json:"comments_count"`
	FavoritesCount int `json:"favorites_count"`
	HistoryCount   int `json:"history_count"`
}
