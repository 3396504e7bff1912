package domain

// Session credenciales de la sesión activa del cliente. Vive en el storage
// local entre ejecuciones; a lo sumo una sesión activa por cliente.
// El token es opaco: lo emite y valida íntegramente el backend.
type Session struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// LoggedIn indica si hay un token presente. No valida nada más: la validez
// real del token la decide la gateway en cada request.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
