// repository/transaction/repo.go
package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
)

// ReportRow is one admin-report line: a transaction joined with the
// vehicle it references.
type ReportRow struct {
	ID           int64                   `json:"id"`
	UserID       int64                   `json:"user_id"`
	VehicleID    int64                   `json:"mobil_id"`
	RenterName   string                  `json:"nama_penyewa"`
	Phone        string                  `json:"nomor_wa"`
	StartDate    time.Time               `json:"tgl_mulai"`
	EndDate      time.Time               `json:"tgl_selesai"`
	Status       model.TransactionStatus `json:"status_transaksi"`
	CreatedAt    time.Time               `json:"created_at"`
	VehicleName  string                  `json:"nama_mobil"`
	VehicleBrand string                  `json:"merk"`
	DailyRate    int64                   `json:"harga_sewa"`
}

// HistoryRow is a customer's view of one rental. TotalCost is computed by
// the service, not stored.
type HistoryRow struct {
	ID          int64                   `json:"id"`
	VehicleID   int64                   `json:"mobil_id"`
	VehicleName string                  `json:"nama_mobil"`
	StartDate   time.Time               `json:"tgl_mulai"`
	EndDate     time.Time               `json:"tgl_selesai"`
	Status      model.TransactionStatus `json:"status_transaksi"`
	DailyRate   int64                   `json:"harga_sewa"`
	TotalCost   int64                   `json:"total_biaya"`
}

type Repo interface {
	Report(ctx context.Context) ([]ReportRow, error)
	ListByUser(ctx context.Context, userID int64) ([]HistoryRow, error)

	Insert(ctx context.Context, tx *sql.Tx, t *model.Transaction) (int64, error)
	GetStatusForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.TransactionStatus, int64, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id int64, status model.TransactionStatus) error
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Report(ctx context.Context) ([]ReportRow, error) {
	const q = `
			SELECT
			t.id               AS id,
			t.user_id          AS user_id,
			t.mobil_id         AS mobil_id,
			t.nama_penyewa     AS nama_penyewa,
			t.nomor_wa         AS nomor_wa,
			t.tgl_mulai        AS tgl_mulai,
			t.tgl_selesai      AS tgl_selesai,
			t.status_transaksi AS status_transaksi,
			t.created_at       AS created_at,
			m.nama_mobil       AS nama_mobil,
			m.merk             AS merk,
			m.harga_sewa       AS harga_sewa
			FROM transaksi t
			JOIN mobil m ON m.id = t.mobil_id
			ORDER BY t.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReportRow
	for rows.Next() {
		var row ReportRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.VehicleID, &row.RenterName, &row.Phone,
			&row.StartDate, &row.EndDate, &row.Status, &row.CreatedAt,
			&row.VehicleName, &row.VehicleBrand, &row.DailyRate,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]HistoryRow, error) {
	const q = `
			SELECT
			t.id               AS id,
			t.mobil_id         AS mobil_id,
			m.nama_mobil       AS nama_mobil,
			t.tgl_mulai        AS tgl_mulai,
			t.tgl_selesai      AS tgl_selesai,
			t.status_transaksi AS status_transaksi,
			m.harga_sewa       AS harga_sewa
			FROM transaksi t
			JOIN mobil m ON m.id = t.mobil_id
			WHERE t.user_id = $1
			ORDER BY t.created_at DESC, t.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryRow
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(
			&h.ID, &h.VehicleID, &h.VehicleName,
			&h.StartDate, &h.EndDate, &h.Status, &h.DailyRate,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, t *model.Transaction) (int64, error) {
	const q = `
		INSERT INTO transaksi (user_id, mobil_id, nama_penyewa, nomor_wa, tgl_mulai, tgl_selesai, status_transaksi)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	if err := tx.QueryRowContext(ctx, q,
		t.UserID, t.VehicleID, t.RenterName, t.Phone, t.StartDate, t.EndDate, t.Status,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) GetStatusForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.TransactionStatus, int64, error) {
	const q = `
		SELECT status_transaksi, mobil_id
		FROM transaksi
		WHERE id = $1
		FOR UPDATE`
	var status model.TransactionStatus
	var vehicleID int64
	err := tx.QueryRowContext(ctx, q, id).Scan(&status, &vehicleID)
	return status, vehicleID, err
}

func (r *repo) UpdateStatus(ctx context.Context, tx *sql.Tx, id int64, status model.TransactionStatus) error {
	const q = `
		UPDATE transaksi
		SET status_transaksi = $2
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, status)
	return err
}
