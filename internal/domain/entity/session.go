package entity

// UserInfo identidad mínima que viaja dentro de la sesión del cliente.
// Es exactamente lo que el backend devuelve en el login y lo que se
// serializa bajo la clave "user" del almacén persistente.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Session registro en memoria del estado de autenticación del cliente.
// Invariante: autenticada si y solo si Token y User están ambos presentes;
// el Session Manager los escribe y limpia siempre juntos.
type Session struct {
	Token string
	User  *UserInfo
}

// IsAuthenticated reporta si la sesión está autenticada (token y usuario presentes).
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Role devuelve el rol de la sesión, o cadena vacía si no hay usuario.
func (s Session) Role() Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
