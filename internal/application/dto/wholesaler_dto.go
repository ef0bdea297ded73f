package dto

// WholesalerResponse salida pública de un perfil de mayorista.
type WholesalerResponse struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	GSTNumber    string `json:"gst_number,omitempty"`
	IsActive     bool   `json:"is_active"`
}
