package entity

// Perfiles 1:1 con User según el rol. Se crean atómicamente junto con el User
// durante el registro; nunca más de uno, nunca cero para una identidad con rol.

// Wholesaler perfil de mayorista: dueño de un catálogo de productos.
type Wholesaler struct {
	ID           string
	UserID       string
	BusinessName string
	Address      string
	GSTNumber    string
	IsActive     bool
}

// LocalSeller perfil de vendedor local: ve catálogos de mayoristas con suscripción aprobada.
type LocalSeller struct {
	ID        string
	UserID    string
	ShopName  string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// Salesman perfil de comercial: trabaja una región para un mayorista existente.
type Salesman struct {
	ID           string
	UserID       string
	WholesalerID string
	Region       string
}
