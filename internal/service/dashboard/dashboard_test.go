package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrammler/storefront/internal/entity"
)

type mockStorage struct {
	stats []entity.StatCard
	sales []entity.ChartPoint
	err   error
}

func (m *mockStorage) GetStats(ctx context.Context) ([]entity.StatCard, error) {
	return m.stats, m.err
}

func (m *mockStorage) GetSales(ctx context.Context) ([]entity.ChartPoint, error) {
	return m.sales, nil
}

type mockUsers struct {
	users []entity.User
	err   error
}

func (m *mockUsers) ListUsers(ctx context.Context) ([]entity.User, error) {
	return m.users, m.err
}

func TestDashboard(t *testing.T) {
	storage := &mockStorage{
		stats: []entity.StatCard{{Label: "Orders", Value: "120", Change: "+4%"}},
		sales: []entity.ChartPoint{{Label: "Jan", Value: 10}, {Label: "Feb", Value: 25}},
	}
	users := &mockUsers{users: []entity.User{{ID: 1, Name: "Ann", Role: entity.RoleAdmin}}}

	d, err := NewDashboardService(storage, users).Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	expected := &Dashboard{Stats: storage.stats, Sales: storage.sales, Users: users.users}
	if diff := cmp.Diff(expected, d); diff != "" {
		t.Errorf("Dashboard mismatch (-want +got):\n%s", diff)
	}
	if d.MaxSale() != 25 {
		t.Errorf("Expected max sale 25, got %v", d.MaxSale())
	}
}

func TestDashboardUsersUnavailable(t *testing.T) {
	d, err := NewDashboardService(&mockStorage{}, &mockUsers{err: errors.New("down")}).Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Expected backend failure to degrade, got %v", err)
	}
	if !d.UsersUnavailable || d.Users != nil {
		t.Errorf("Expected unavailable users table, got %+v", d)
	}
}

func TestDashboardStorageError(t *testing.T) {
	storageErr := errors.New("not loaded")
	_, err := NewDashboardService(&mockStorage{err: storageErr}, &mockUsers{}).Dashboard(context.Background())
	if !errors.Is(err, storageErr) {
		t.Errorf("Expected storage error, got %v", err)
	}
}
