package entity

import "time"

// Roles válidos para un AccessGrant (y rol base de User).
const (
	RoleOwner    = "owner"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// AccessGrant vincula un usuario con un restaurante bajo un rol.
// Como máximo existe un grant por par (UserID, RestaurantID); un nuevo grant
// para el mismo par reemplaza al anterior (redención de invitaciones).
type AccessGrant struct {
	UserID       string
	RestaurantID string
	Role         string
	GrantedAt    time.Time
}

// ValidRole indica si el rol es uno de los tres conocidos.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleManager || role == RoleEmployee
}

// CanManageInventory indica si el rol permite mutar inventario y recibos.
func CanManageInventory(role string) bool {
	return role == RoleOwner || role == RoleManager
}

// CanAdministerRestaurant indica si el rol permite editar/eliminar el
// restaurante, gestionar accesos y emitir invitaciones.
func CanAdministerRestaurant(role string) bool {
	return role == RoleOwner
}
