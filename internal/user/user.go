package user

// RoleUser is the default role every account carries. Registration always
// assigns it regardless of what the payload claims.
const RoleUser = "ROLE_USER"

type User struct {
	ID        int      `json:"id"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	APIToken  string   `json:"apiToken,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// sanitizeUser strips credential material for read responses. The password
// hash never leaves the server; the api token is only returned by the
// registration and login endpoints.
func sanitizeUser(user User) User {
	user.Password = ""
	user.APIToken = ""
	return user
}
