package models

// Client statuses accepted by the backend.
const (
	ClientNew      = "nuevo"
	ClientActive   = "activo"
	ClientInactive = "inactivo"
	ClientBlocked  = "bloqueado"
)

// ValidClientStatus reports whether s is one of the enumerated client states.
func ValidClientStatus(s string) bool {
	switch s {
	case ClientNew, ClientActive, ClientInactive, ClientBlocked:
		return true
	}
	return false
}

// Client is a customer record in the admin dashboard.
type Client struct {
	ID                  string   `json:"id"`
	Name                string   `json:"nombre"`
	Email               string   `json:"email"`
	Phone               string   `json:"telefono"`
	Address             string   `json:"direccion,omitempty"`
	RegisteredAt        string   `json:"fechaRegistro"`
	Status              string   `json:"estado"`
	VIP                 bool     `json:"vip"`
	ReservationCount    int      `json:"numReservas"`
	LastReservation     string   `json:"ultimaReserva,omitempty"`
	PreferredCategories []string `json:"categoriasPreferidas,omitempty"`
	Preferences         string   `json:"preferencias,omitempty"`
	Notes               string   `json:"notas,omitempty"`
}

// ClientFilter narrows a listing.
type ClientFilter struct {
	Status string
	Search string
}
