package dashboard

import (
	"context"
	"log/slog"

	"github.com/jrammler/storefront/internal/entity"
	"golang.org/x/sync/errgroup"
)

type ContentStorage interface {
	GetStats(ctx context.Context) ([]entity.StatCard, error)
	GetSales(ctx context.Context) ([]entity.ChartPoint, error)
}

type UserLister interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
}

type Dashboard struct {
	Stats []entity.StatCard
	Sales []entity.ChartPoint
	Users []entity.User
	// UsersUnavailable is set when the backend could not list users.
	UsersUnavailable bool
}

type DashboardService struct {
	storage ContentStorage
	users   UserLister
}

func NewDashboardService(storage ContentStorage, users UserLister) *DashboardService {
	return &DashboardService{
		storage: storage,
		users:   users,
	}
}

func (s *DashboardService) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		stats, err := s.storage.GetStats(egCtx)
		d.Stats = stats
		return err
	})
	eg.Go(func() error {
		sales, err := s.storage.GetSales(egCtx)
		d.Sales = sales
		return err
	})
	eg.Go(func() error {
		users, err := s.users.ListUsers(egCtx)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to list users for dashboard", "error", err)
			d.UsersUnavailable = true
			return nil
		}
		d.Users = users
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

// MaxSale is the largest value in the sales series, used to scale the chart.
func (d *Dashboard) MaxSale() float64 {
	var highest float64
	for _, p := range d.Sales {
		if p.Value > highest {
			highest = p.Value
		}
	}
	return highest
}
