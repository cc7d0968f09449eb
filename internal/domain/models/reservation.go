package models

// Reservation statuses accepted by the backend.
const (
	ReservationPending   = "pendiente"
	ReservationConfirmed = "confirmada"
	ReservationCompleted = "completada"
	ReservationCancelled = "cancelada"
)

// ValidReservationStatus reports whether s is one of the enumerated
// reservation states.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Reservation holds one booking of an excursion. Client and excursion
// names are denormalized copies; the ids are authoritative.
type Reservation struct {
	ID            string  `json:"id"`
	Date          string  `json:"fecha"`
	Time          string  `json:"hora"`
	ClientName    string  `json:"clienteNombre"`
	ClientID      string  `json:"clienteId"`
	ExcursionName string  `json:"excursionNombre"`
	ExcursionID   string  `json:"excursionId"`
	Email         string  `json:"email"`
	Phone         string  `json:"telefono"`
	Adults        int     `json:"adultos"`
	Children      int     `json:"ninos"`
	TotalPrice    float64 `json:"precioTotal"`
	Status        string  `json:"estado"`
	MeetingPoint  string  `json:"puntoEncuentro,omitempty"`
	Comments      string  `json:"comentarios,omitempty"`
}

// ReservationFilter narrows a listing by status and/or date range
// (inclusive, YYYY-MM-DD).
type ReservationFilter struct {
	Status   string
	DateFrom string
	DateTo   string
}

// People returns the total head count.
func (r Reservation) People() int {
	return r.Adults + r.Children
}
