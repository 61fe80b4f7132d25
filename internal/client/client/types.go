package client

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
}

type SignupResult struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type MeResult struct {
	User User `json:"user"`
}

type HealthResult struct {
	Status string `json:"status"`
}
