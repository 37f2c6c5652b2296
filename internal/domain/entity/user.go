package entity

import "time"

// User representa un usuario del sistema. Password guarda siempre el hash bcrypt.
type User struct {
	ID        int64
	Name      string
	LastName  string
	Phone     string
	Email     string
	Password  string
	RoleID    int64
	CreatedAt time.Time
}

// UserChanges campos opcionales de una actualización parcial (nil = no cambia).
// PasswordHash ya viene hasheado desde el caso de uso.
type UserChanges struct {
	Name         *string
	LastName     *string
	Phone        *string
	Email        *string
	PasswordHash *string
	RoleID       *int64
}
