package models

// ExcursionStatus values accepted by the backend.
const (
	ExcursionActive   = "activa"
	ExcursionInactive = "inactiva"
)

// Excursion is the catalog entry shown on the public site and managed
// from the admin dashboard. Wire names follow the backend's Spanish API.
type Excursion struct {
	ID               string   `json:"id"`
	Name             string   `json:"nombre"`
	ShortDescription string   `json:"descripcionCorta"`
	LongDescription  string   `json:"descripcionLarga"`
	Price            float64  `json:"precio"`
	PreviousPrice    float64  `json:"precioAnterior,omitempty"`
	Location         string   `json:"ubicacion"`
	Duration         string   `json:"duracion"`
	MaxPeople        int      `json:"maxPersonas"`
	Featured         bool     `json:"destacada"`
	Category         string   `json:"categoria"`
	Status           string   `json:"estado"`
	MeetingPoint     string   `json:"puntoEncuentro"`
	Includes         []string `json:"incluye,omitempty"`
	Excludes         []string `json:"noIncluye,omitempty"`
	Schedules        []string `json:"horarios,omitempty"`
	Image            string   `json:"imagen,omitempty"`
	Gallery          []string `json:"galeria,omitempty"`
}

// ExcursionFilter narrows a listing. Zero values mean "not set" and are
// omitted from the query string.
type ExcursionFilter struct {
	Category string
	Location string
	Status   string
}

// Discounted reports whether the excursion carries a previous price worth
// displaying as a discount.
func (e Excursion) Discounted() bool {
	return e.PreviousPrice > e.Price && e.Price > 0
}
