package entity

import "time"

// Roles de usuario.
const (
	RoleManager = "MANAGER" // ve todas las bodegas
	RoleStaff   = "STAFF"   // limitado a su bodega asignada
)

// User usuario de la aplicación. Los STAFF tienen bodega asignada;
// los MANAGER no (WarehouseID vacío = acceso global).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	WarehouseID  string // vacío para MANAGER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
