package vehiclesvc

import (
	"context"
	"errors"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	vehiclerepo "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/repository/vehicle"
)

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrNotFound       = errors.New("vehicle not found")
	ErrHasOpenRentals = errors.New("vehicle has open rentals")
)

type Repo interface {
	Create(ctx context.Context, v *model.Vehicle) (int64, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Get(ctx context.Context, id int64) (*model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	HasOpenTransactions(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, v *model.Vehicle) (int64, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Detail(ctx context.Context, id int64) (*model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

var _ Repo = (vehiclerepo.Repo)(nil)

func New(r Repo) Service { return &service{r: r} }

func validate(v *model.Vehicle) error {
	if v.Name == "" || v.Brand == "" || v.DailyRate <= 0 || v.Stock < 0 {
		return ErrInvalidPayload
	}
	return nil
}

func (s *service) Create(ctx context.Context, v *model.Vehicle) (int64, error) {
	if err := validate(v); err != nil {
		return 0, err
	}
	if v.Status == "" {
		v.Status = model.VehicleStatusAvailable
	}
	return s.r.Create(ctx, v)
}

func (s *service) List(ctx context.Context) ([]model.Vehicle, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Vehicle, error) {
	return s.r.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, v *model.Vehicle) error {
	if err := validate(v); err != nil {
		return err
	}
	ok, err := s.r.Update(ctx, v)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete refuses while any transaction other than Selesai still points at
// the vehicle, so the report join never dangles.
func (s *service) Delete(ctx context.Context, id int64) error {
	open, err := s.r.HasOpenTransactions(ctx, id)
	if err != nil {
		return err
	}
	if open {
		return ErrHasOpenRentals
	}
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
