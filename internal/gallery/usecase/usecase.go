package usecase

import gallerydomain "sellshot-backend/internal/gallery/domain"

// GalleryUsecase manages the ordered collection of produced images.
type GalleryUsecase interface {
	// Append assigns the item an id and prepends it, most recent first.
	Append(userID string, item gallerydomain.Item) (gallerydomain.Item, error)

	// Remove deletes exactly the item with the given id; the relative
	// order of the remaining items is unchanged.
	Remove(userID, id string) error

	// List returns the current ordered collection.
	List(userID string) ([]gallerydomain.Item, error)

	// Get returns a single item by id, or nil when absent.
	Get(userID, id string) (*gallerydomain.Item, error)
}
