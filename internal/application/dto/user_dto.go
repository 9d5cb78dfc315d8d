package dto

// CreateAccountRequest entrada para crear una cuenta.
type CreateAccountRequest struct {
	Email          string `json:"email" validate:"required"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture"`
}

// PromoteUserRequest entrada para cambiar el rol de un usuario. Role vacío = admin.
type PromoteUserRequest struct {
	Email string `json:"email" validate:"required"`
	Role  string `json:"role"`
}
