package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session adalah pasangan kredensial yang disimpan di perangkat. Role hanya
// bermakna selama Token terisi.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (s Session) IsLoggedIn() bool {
	return s.Token != ""
}
