package admin

// Admin is a back-office account. Accounts are provisioned by the
// setup-admin command, never through the API.
type Admin struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Public is the shape exposed by the admin auth endpoints.
type Public struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (a Admin) Public() Public {
	return Public{ID: a.ID, Username: a.Username}
}

// Stats are simple collection sizes, recomputed on every call.
type Stats struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
}
