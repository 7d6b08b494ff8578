package entity

import "time"

// User representa un usuario del sistema. No se borra físicamente; se desactiva con Active=false.
type User struct {
	ID           int64
	FullName     string
	Email        string
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Active       bool
	Roles        RoleSet
	CreatedAt    time.Time
}

// Identity identidad autenticada extraída del token (id, email y roles ya decodificados).
type Identity struct {
	UserID int64
	Email  string
	Roles  RoleSet
}
