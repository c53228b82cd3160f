package entity

// UserRecord usuario emitido por el colaborador de autenticación (simulado, sin verificación real).
type UserRecord struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
