package entity

import "time"

// Roles válidos para User. Conjunto cerrado: cada rol tiene exactamente un
// perfil asociado (Wholesaler, LocalSeller o Salesman).
const (
	RoleWholesaler  = "WHOLESALER"
	RoleLocalSeller = "LOCAL_SELLER"
	RoleSalesman    = "SALESMAN"
)

// ValidRole indica si s es uno de los roles del sistema.
func ValidRole(s string) bool {
	return s == RoleWholesaler || s == RoleLocalSeller || s == RoleSalesman
}

// User representa la identidad registrada: credenciales más exactamente un rol.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        string
	Role         string // WHOLESALER, LOCAL_SELLER, SALESMAN
	IsActive     bool   // la desactivación es administrativa; los tokens ya emitidos no se revocan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
