package model

// User is the backend's view of the signed-in account.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

type SessionStatus string

const (
	SessionIdle          SessionStatus = "idle"
	SessionLoading       SessionStatus = "loading"
	SessionAuthenticated SessionStatus = "authenticated"
	SessionError         SessionStatus = "error"
)

// Session is the snapshot published by the auth service. The token never
// leaves the process.
type Session struct {
	Status SessionStatus `json:"status"`
	User   *User         `json:"user,omitempty"`
	Token  string        `json:"-"`
	Error  string        `json:"error,omitempty"`
}

func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}
