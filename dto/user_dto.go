package dto

type RegisterUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}
