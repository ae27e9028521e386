package entity

// Player is whoever holds a live session: a named user or a guest keyed by a session cookie.
type Player struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Guest    bool   `json:"guest"`
}

func NewGuestPlayer(sessionID string) *Player {
	return &Player{ID: sessionID, Guest: true}
}

func NewUserPlayer(userID, username string) *Player {
	return &Player{ID: userID, Username: username}
}

func (that *Player) IsGuest() bool {
	return that == nil || that.Guest
}
