package dto

// LoginRequest credenciales para POST /api/auth/login.
// El contrato usa username (la variante {email,password} de algunas vistas
// del frontend original no es la autoritativa; ver DESIGN.md).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest alta de cuenta para POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse respuesta del login: identidad plana más el bearer token.
// El backend puede devolverla en el nivel superior o envuelta en "data".
type AuthResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
