package models

// GalleryImage is one entry of the site gallery. Order defines the
// display position; duplicates are tolerated and sorted stably.
type GalleryImage struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion,omitempty"`
	Category    string   `json:"categoria,omitempty"`
	Featured    bool     `json:"destacada"`
	Active      bool     `json:"activa"`
	UploadedAt  string   `json:"fechaSubida"`
	Order       int      `json:"orden"`
	Tags        []string `json:"etiquetas,omitempty"`
	Credits     string   `json:"creditos,omitempty"`
}

// GalleryFilter narrows a listing.
type GalleryFilter struct {
	Category string
	Featured bool
}
