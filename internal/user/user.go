package user

// User is a registered shopper. PasswordHash is a bcrypt hash and is
// never returned to clients.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// Public is the shape exposed by the auth endpoints.
type Public struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() Public {
	return Public{ID: u.ID, Name: u.Name, Email: u.Email}
}
