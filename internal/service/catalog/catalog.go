package catalog

import (
	"context"
	"errors"

	"github.com/jrammler/storefront/internal/carousel"
	"github.com/jrammler/storefront/internal/entity"
)

var ImageNotFoundError = errors.New("Gallery image with given index not found")

type ContentStorage interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetGallery(ctx context.Context) ([]entity.GalleryImage, error)
}

type CatalogService struct {
	storage  ContentStorage
	pageSize int
}

func NewCatalogService(storage ContentStorage, pageSize int) *CatalogService {
	if pageSize < 1 {
		pageSize = 1
	}
	return &CatalogService{
		storage:  storage,
		pageSize: pageSize,
	}
}

// Categories returns the given page of the category carousel. Out-of-range
// pages wrap around.
func (s *CatalogService) Categories(ctx context.Context, page int) (carousel.Page[entity.Category], error) {
	categories, err := s.storage.GetCategories(ctx)
	if err != nil {
		return carousel.Page[entity.Category]{}, err
	}
	return carousel.Slice(categories, carousel.Paged(len(categories), s.pageSize), page), nil
}

func (s *CatalogService) Products(ctx context.Context) ([]entity.Product, error) {
	return s.storage.GetProducts(ctx)
}

func (s *CatalogService) Gallery(ctx context.Context) ([]entity.GalleryImage, error) {
	return s.storage.GetGallery(ctx)
}

// Lightbox returns the single-image window opened at index.
func (s *CatalogService) Lightbox(ctx context.Context, index int) (carousel.Page[entity.GalleryImage], error) {
	images, err := s.storage.GetGallery(ctx)
	if err != nil {
		return carousel.Page[entity.GalleryImage]{}, err
	}
	if index < 0 || index >= len(images) {
		return carousel.Page[entity.GalleryImage]{}, ImageNotFoundError
	}
	return carousel.Slice(images, carousel.Single(len(images)), index), nil
}
