package usecase

import (
	gallerydomain "sellshot-backend/internal/gallery/domain"
	"sellshot-backend/internal/gallery/repository"
)

// galleryUsecase implements GalleryUsecase
type galleryUsecase struct {
	galleryRepo repository.GalleryRepository
}

// NewGalleryUsecase creates a new instance of galleryUsecase
func NewGalleryUsecase(galleryRepo repository.GalleryRepository) GalleryUsecase {
	return &galleryUsecase{
		galleryRepo: galleryRepo,
	}
}

func (u *galleryUsecase) Append(userID string, item gallerydomain.Item) (gallerydomain.Item, error) {
	items, err := u.galleryRepo.List(userID)
	if err != nil {
		return gallerydomain.Item{}, err
	}

	if item.ID == "" {
		item.ID = gallerydomain.NewItemID()
	}

	items = append([]gallerydomain.Item{item}, items...)
	if err := u.galleryRepo.Save(userID, items); err != nil {
		return gallerydomain.Item{}, err
	}
	return item, nil
}

func (u *galleryUsecase) Remove(userID, id string) error {
	items, err := u.galleryRepo.List(userID)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return u.galleryRepo.Save(userID, kept)
}

func (u *galleryUsecase) List(userID string) ([]gallerydomain.Item, error) {
	return u.galleryRepo.List(userID)
}

func (u *galleryUsecase) Get(userID, id string) (*gallerydomain.Item, error) {
	items, err := u.galleryRepo.List(userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}
