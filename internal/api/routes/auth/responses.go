package auth

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
} // @name User

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
} // @name AuthResponse
