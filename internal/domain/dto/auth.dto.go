package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserView struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}
