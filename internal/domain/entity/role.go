package entity

// Role agrupa usuarios. No se consulta para decisiones de autorización.
type Role struct {
	ID   int64
	Name string
}
