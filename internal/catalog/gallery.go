package catalog

import (
	"sort"

	"backoffice/internal/domain/models"
)

// SortGallery returns the images ordered ascending by orden. Duplicated
// orden values keep their input order (stable), matching how the grid
// tolerates them.
func SortGallery(items []models.GalleryImage) []models.GalleryImage {
	out := make([]models.GalleryImage, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// ActiveGallery keeps only active images, ordered for display.
func ActiveGallery(items []models.GalleryImage) []models.GalleryImage {
	active := make([]models.GalleryImage, 0, len(items))
	for _, img := range items {
		if img.Active {
			active = append(active, img)
		}
	}
	return SortGallery(active)
}
