package dto

import "time"

// RegisterRequest entrada para registro. Los campos específicos de rol solo
// aplican al rol indicado: businessName/gstNumber para WHOLESALER, shopName y
// coordenadas para LOCAL_SELLER, wholesalerId/region para SALESMAN.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=WHOLESALER LOCAL_SELLER SALESMAN"`

	// WHOLESALER
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	GSTNumber    string `json:"gst_number"`

	// LOCAL_SELLER
	ShopName  string   `json:"shop_name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// SALESMAN
	WholesalerID string `json:"wholesaler_id"`
	Region       string `json:"region"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y datos básicos de la identidad.
type LoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}
