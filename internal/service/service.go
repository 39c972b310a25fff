package service

import (
	"context"
	"errors"
	"time"

	"github.com/jrammler/storefront/internal/backend"
	"github.com/jrammler/storefront/internal/carousel"
	"github.com/jrammler/storefront/internal/entity"
	"github.com/jrammler/storefront/internal/service/auth"
	"github.com/jrammler/storefront/internal/service/catalog"
	"github.com/jrammler/storefront/internal/service/dashboard"
	"github.com/jrammler/storefront/internal/service/testimonial"
	"github.com/jrammler/storefront/internal/service/user"
	"github.com/jrammler/storefront/internal/storage"
)

type CatalogService interface {
	Categories(ctx context.Context, page int) (carousel.Page[entity.Category], error)
	Products(ctx context.Context) ([]entity.Product, error)
	Gallery(ctx context.Context) ([]entity.GalleryImage, error)
	Lightbox(ctx context.Context, index int) (carousel.Page[entity.GalleryImage], error)
}

type TestimonialService interface {
	Window(ctx context.Context, start int) carousel.Page[entity.Testimonial]
}

type UserService interface {
	EditForm(ctx context.Context, id int, current entity.Account) (user.RoleForm, error)
	Submit(ctx context.Context, id int, current entity.Account, role string) (user.RoleForm, error)
}

type DashboardService interface {
	Dashboard(ctx context.Context) (*dashboard.Dashboard, error)
}

type AuthService interface {
	LoginUser(ctx context.Context, username, password string) (string, *time.Time, error)
	LogoutUser(ctx context.Context, sessionToken string)
	GetSessionUser(ctx context.Context, sessionToken string) (entity.Account, error)
}

type RegisterService interface {
	Register(ctx context.Context, req backend.RegisterRequest) error
}

type Service struct {
	CatalogService     CatalogService
	TestimonialService TestimonialService
	UserService        UserService
	DashboardService   DashboardService
	AuthService        AuthService
	RegisterService    RegisterService
}

// NewService wires every service to the content storage and the backend client.
func NewService(sto storage.Storage, client *backend.Client, sessionSecret string, categoryPageSize int) (*Service, error) {
	authService, err := auth.NewAuthService(sto, sessionSecret)
	if err != nil {
		return nil, err
	}
	userService := user.NewUserService(client, func(err error) bool {
		return errors.Is(err, backend.ErrNotFound)
	})
	return &Service{
		CatalogService:     catalog.NewCatalogService(sto, categoryPageSize),
		TestimonialService: testimonial.NewTestimonialService(client),
		UserService:        userService,
		DashboardService:   dashboard.NewDashboardService(sto, userService),
		AuthService:        authService,
		RegisterService:    client,
	}, nil
}
