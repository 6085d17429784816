package repository

import (
	gallerydomain "sellshot-backend/internal/gallery/domain"
	"sellshot-backend/pkg/store"
)

const galleryKey = "gallery"

// storeGalleryRepository implements GalleryRepository on the key-value store.
type storeGalleryRepository struct {
	store store.Store
}

// NewStoreGalleryRepository creates a store-backed GalleryRepository.
func NewStoreGalleryRepository(s store.Store) GalleryRepository {
	return &storeGalleryRepository{store: s}
}

func (r *storeGalleryRepository) List(userID string) ([]gallerydomain.Item, error) {
	var items []gallerydomain.Item
	found, err := r.store.Get(userID, galleryKey, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return []gallerydomain.Item{}, nil
	}
	return items, nil
}

func (r *storeGalleryRepository) Save(userID string, items []gallerydomain.Item) error {
	return r.store.Set(userID, galleryKey, items)
}
