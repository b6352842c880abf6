package users

import "time"

// Estados de cuenta. Hoy solo existe "registrado"; el campo queda
// numérico porque el contrato del API expone userStatus como número.
const StatusRegistered = 1

// User representa una cuenta. PasswordHash guarda SIEMPRE el hash
// bcrypt, nunca la contraseña en claro.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	UserStatus   int
	SignupCode   string

	CreatedAt time.Time
}
