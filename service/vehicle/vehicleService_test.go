// service/vehicle/vehicle_service_test.go
package vehiclesvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	vehiclesvc "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/vehicle"
)

type repoMock struct {
	createFn  func(ctx context.Context, v *model.Vehicle) (int64, error)
	listFn    func(ctx context.Context) ([]model.Vehicle, error)
	getFn     func(ctx context.Context, id int64) (*model.Vehicle, error)
	updateFn  func(ctx context.Context, v *model.Vehicle) (bool, error)
	deleteFn  func(ctx context.Context, id int64) (bool, error)
	hasOpenFn func(ctx context.Context, id int64) (bool, error)
}

func (m *repoMock) Create(ctx context.Context, v *model.Vehicle) (int64, error) {
	return m.createFn(ctx, v)
}
func (m *repoMock) List(ctx context.Context) ([]model.Vehicle, error) { return m.listFn(ctx) }
func (m *repoMock) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, v *model.Vehicle) (bool, error) {
	return m.updateFn(ctx, v)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error) { return m.deleteFn(ctx, id) }
func (m *repoMock) HasOpenTransactions(ctx context.Context, id int64) (bool, error) {
	return m.hasOpenFn(ctx, id)
}

func TestCreate_Validation(t *testing.T) {
	s := vehiclesvc.New(&repoMock{})
	cases := []model.Vehicle{
		{Name: "", Brand: "Toyota", DailyRate: 100000, Stock: 1},
		{Name: "Avanza", Brand: "", DailyRate: 100000, Stock: 1},
		{Name: "Avanza", Brand: "Toyota", DailyRate: 0, Stock: 1},
		{Name: "Avanza", Brand: "Toyota", DailyRate: 100000, Stock: -1},
	}
	for i := range cases {
		if _, err := s.Create(context.Background(), &cases[i]); !errors.Is(err, vehiclesvc.ErrInvalidPayload) {
			t.Fatalf("case %d: got %v, want ErrInvalidPayload", i, err)
		}
	}
}

func TestCreate_DefaultsStatus(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, v *model.Vehicle) (int64, error) {
			if v.Status != model.VehicleStatusAvailable {
				return 0, errors.New("status not defaulted")
			}
			return 42, nil
		},
	}
	s := vehiclesvc.New(m)
	id, err := s.Create(context.Background(), &model.Vehicle{
		Name: "Avanza", Brand: "Toyota", DailyRate: 350000, Stock: 2,
	})
	if err != nil || id != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", id, err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, v *model.Vehicle) (bool, error) { return false, nil },
	}
	s := vehiclesvc.New(m)
	err := s.Update(context.Background(), &model.Vehicle{
		ID: 99, Name: "Avanza", Brand: "Toyota", DailyRate: 350000, Stock: 2,
	})
	if !errors.Is(err, vehiclesvc.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDelete_OpenRentalsBlock(t *testing.T) {
	m := &repoMock{
		hasOpenFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		deleteFn: func(ctx context.Context, id int64) (bool, error) {
			t.Fatal("delete must not run with open rentals")
			return false, nil
		},
	}
	s := vehiclesvc.New(m)
	if err := s.Delete(context.Background(), 7); !errors.Is(err, vehiclesvc.ErrHasOpenRentals) {
		t.Fatalf("got %v, want ErrHasOpenRentals", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{
		hasOpenFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		deleteFn:  func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	s := vehiclesvc.New(m)
	if err := s.Delete(context.Background(), 7); !errors.Is(err, vehiclesvc.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Vehicle, error) { return nil, nil },
		getFn:  func(ctx context.Context, id int64) (*model.Vehicle, error) { return &model.Vehicle{}, nil },
	}
	s := vehiclesvc.New(m)

	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := s.Detail(context.Background(), 99); err != nil {
		t.Fatalf("Detail error: %v", err)
	}
}
