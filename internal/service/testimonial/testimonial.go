package testimonial

import (
	"context"
	"log/slog"

	"github.com/jrammler/storefront/internal/carousel"
	"github.com/jrammler/storefront/internal/entity"
)

// WindowSize is how many testimonials are shown at once.
const WindowSize = 3

type ReviewLister interface {
	ListReviews(ctx context.Context) ([]entity.Testimonial, error)
}

type TestimonialService struct {
	reviews ReviewLister
}

func NewTestimonialService(reviews ReviewLister) *TestimonialService {
	return &TestimonialService{
		reviews: reviews,
	}
}

// Load fetches the testimonials once. Failures are logged and produce an
// empty list, never an error.
func (s *TestimonialService) Load(ctx context.Context) []entity.Testimonial {
	reviews, err := s.reviews.ListReviews(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch testimonials", "error", err)
		return nil
	}
	return reviews
}

// Window loads the testimonials and returns the rotating window starting at start.
func (s *TestimonialService) Window(ctx context.Context, start int) carousel.Page[entity.Testimonial] {
	reviews := s.Load(ctx)
	return carousel.Slice(reviews, carousel.Rotating(len(reviews), WindowSize), start)
}
