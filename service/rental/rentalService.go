package rental

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	trepo "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/repository/transaction"
)

// errors used by controllers

type ErrCode string

const (
	ErrNoStock         ErrCode = "NO_STOCK"
	ErrVehicleNotFound ErrCode = "VEHICLE_NOT_FOUND"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrBadTransition   ErrCode = "BAD_TRANSITION"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// repository shapes reused on the wire
type (
	ReportRow  = trepo.ReportRow
	HistoryRow = trepo.HistoryRow
)

type Repo interface {
	Report(ctx context.Context) ([]ReportRow, error)
	ListByUser(ctx context.Context, userID int64) ([]HistoryRow, error)

	Insert(ctx context.Context, tx *sql.Tx, t *model.Transaction) (int64, error)
	GetStatusForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.TransactionStatus, int64, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id int64, status model.TransactionStatus) error
}

type StockRepo interface {
	Get(ctx context.Context, id int64) (*model.Vehicle, error)
	DecrementStock(ctx context.Context, tx *sql.Tx, id int64) (bool, error)
	IncrementStock(ctx context.Context, tx *sql.Tx, id int64) error
}

type Service interface {
	// Book: insert a Pending transaction and take one unit of stock, as a
	// single database transaction.
	Book(ctx context.Context, userID, vehicleID int64, renterName, phone string, start, end time.Time) (int64, error)

	// SetStatus: admin-driven transition; moving into Selesai returns the
	// unit to stock exactly once.
	SetStatus(ctx context.Context, id int64, status model.TransactionStatus) error

	// Report: all transactions newest-first with their vehicle snapshot.
	Report(ctx context.Context) ([]ReportRow, error)

	// HistoryFor: one user's rentals with computed cost.
	HistoryFor(ctx context.Context, userID int64) ([]HistoryRow, error)
}

// Cost is the rental price for the date range. Whole-day difference,
// floored at one day so same-day rentals still pay a full day.
func Cost(start, end time.Time, dailyRate int64) int64 {
	days := int64(end.Sub(start) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days * dailyRate
}

// ----- Service implementation -----

type service struct {
	db *sql.DB
	tr Repo
	vr StockRepo
}

func New(db *sql.DB, tr Repo, vr StockRepo) Service {
	return &service{db: db, tr: tr, vr: vr}
}

func (s *service) Book(ctx context.Context, userID, vehicleID int64, renterName, phone string, start, end time.Time) (id int64, err error) {
	v, err := s.vr.Get(ctx, vehicleID)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, makeErr(ErrVehicleNotFound)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// stok = stok - 1 only while stok > 0; losing the race reads as sold out
	ok, err := s.vr.DecrementStock(ctx, tx, vehicleID)
	if err != nil {
		return 0, err
	}
	if !ok {
		err = makeErr(ErrNoStock)
		return 0, err
	}

	id, err = s.tr.Insert(ctx, tx, &model.Transaction{
		UserID:     userID,
		VehicleID:  vehicleID,
		RenterName: renterName,
		Phone:      phone,
		StartDate:  start,
		EndDate:    end,
		Status:     model.StatusPending,
	})
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *service) SetStatus(ctx context.Context, id int64, status model.TransactionStatus) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	cur, vehicleID, err := s.tr.GetStatusForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if !model.CanTransition(cur, status) {
		return makeErr(ErrBadTransition)
	}

	if err = s.tr.UpdateStatus(ctx, tx, id, status); err != nil {
		return err
	}

	// The row lock above plus the terminal Selesai state make the
	// increment fire at most once per transaction.
	if status == model.StatusSelesai {
		if err = s.vr.IncrementStock(ctx, tx, vehicleID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *service) Report(ctx context.Context) ([]ReportRow, error) {
	return s.tr.Report(ctx)
}

func (s *service) HistoryFor(ctx context.Context, userID int64) ([]HistoryRow, error) {
	rows, err := s.tr.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TotalCost = Cost(rows[i].StartDate, rows[i].EndDate, rows[i].DailyRate)
	}
	return rows, nil
}
