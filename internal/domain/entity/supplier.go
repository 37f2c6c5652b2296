package entity

import "time"

// Supplier proveedor de materiales.
type Supplier struct {
	ID        int64
	Name      string
	LastName  string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// SupplierChanges actualización parcial de un proveedor.
type SupplierChanges struct {
	Name     *string
	LastName *string
	Phone    *string
	Email    *string
}
