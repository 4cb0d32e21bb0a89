package domain

// UserSession is the signed-in identity carried by the session cookie. It is
// the single session-context object injected into handlers; no other code
// reads identity cookies directly.
type UserSession struct {
	SID      string `json:"sid"`
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
}
