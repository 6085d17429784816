package repository

import gallerydomain "sellshot-backend/internal/gallery/domain"

// GalleryRepository defines the interface for gallery persistence. The whole
// ordered collection is read and written as one unit, mirroring the single
// storage slot the web client used.
type GalleryRepository interface {
	List(userID string) ([]gallerydomain.Item, error)
	Save(userID string, items []gallerydomain.Item) error
}
