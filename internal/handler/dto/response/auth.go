package response

import (
	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	IsActive bool      `json:"isActive"`
}

func FromLoginResult(result *queries.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: result.Token,
		User:  FromAuthorizedUser(&result.User),
	}
}

func FromAuthorizedUser(view *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		Name:     view.Name,
		IsActive: view.IsActive,
	}
}
