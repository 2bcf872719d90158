package session

// UserData represents the artisan information stored in the session
type UserData struct {
	ID        int64
	Username  string
	Email     string
	FullName  string
	CraftType string
}
