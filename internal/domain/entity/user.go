package entity

import "time"

// Roles conocidos. El rol es un string libre; estos son los valores por defecto.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una cuenta. Email siempre en minúsculas una vez persistido.
type User struct {
	ID             string
	Email          string
	Role           string
	ProfilePicture string
	CreatedAt      time.Time
}
