package vehiclerepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
)

type Repo interface {
	Create(ctx context.Context, v *model.Vehicle) (int64, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Get(ctx context.Context, id int64) (*model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	HasOpenTransactions(ctx context.Context, id int64) (bool, error)

	// tx-scoped stock mutators used by the booking workflow
	DecrementStock(ctx context.Context, tx *sql.Tx, id int64) (bool, error)
	IncrementStock(ctx context.Context, tx *sql.Tx, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, v *model.Vehicle) (int64, error) {
	const q = `
INSERT INTO mobil (nama_mobil, merk, harga_sewa, stok, foto_url, deskripsi, status)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q,
		v.Name, v.Brand, v.DailyRate, v.Stock, v.PhotoURL, v.Desc, v.Status,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) List(ctx context.Context) ([]model.Vehicle, error) {
	const q = `
	SELECT id, nama_mobil, merk, harga_sewa, stok, foto_url, deskripsi, status
	FROM mobil
	ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.DailyRate, &v.Stock, &v.PhotoURL, &v.Desc, &v.Status); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	const q = `
SELECT id, nama_mobil, merk, harga_sewa, stok, foto_url, deskripsi, status
FROM mobil
WHERE id=$1`
	var v model.Vehicle
	err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.Brand, &v.DailyRate, &v.Stock, &v.PhotoURL, &v.Desc, &v.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repo) Update(ctx context.Context, v *model.Vehicle) (bool, error) {
	const q = `
UPDATE mobil
SET nama_mobil=$2, merk=$3, harga_sewa=$4, stok=$5, foto_url=$6, deskripsi=$7
WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, v.ID, v.Name, v.Brand, v.DailyRate, v.Stock, v.PhotoURL, v.Desc)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM mobil WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) HasOpenTransactions(ctx context.Context, id int64) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1 FROM transaksi
	WHERE mobil_id=$1 AND status_transaksi <> 'Selesai')`
	var open bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&open); err != nil {
		return false, err
	}
	return open, nil
}

func (r *repo) DecrementStock(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	// Guard: only decrement while units remain. Zero rows affected means
	// the fleet entry is gone or sold out; the caller aborts the tx.
	const q = `
			UPDATE mobil
			SET stok = stok - 1
			WHERE id = $1
			AND stok > 0`
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) IncrementStock(ctx context.Context, tx *sql.Tx, id int64) error {
	const q = `
			UPDATE mobil
			SET stok = stok + 1
			WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}
