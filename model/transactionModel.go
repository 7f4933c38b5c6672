// model/transaction.go
package model

import "time"

type TransactionStatus string

const (
	StatusPending TransactionStatus = "Pending"
	StatusDisewa  TransactionStatus = "Disewa"
	StatusSelesai TransactionStatus = "Selesai"
)

// transitions is the allowed status graph. Pending may jump straight to
// Selesai (walk-in returns handled at the desk); Selesai is terminal.
var transitions = map[TransactionStatus][]TransactionStatus{
	StatusPending: {StatusDisewa, StatusSelesai},
	StatusDisewa:  {StatusSelesai},
	StatusSelesai: {},
}

// ParseStatus maps the raw path segment to a known status.
func ParseStatus(s string) (TransactionStatus, bool) {
	switch TransactionStatus(s) {
	case StatusPending, StatusDisewa, StatusSelesai:
		return TransactionStatus(s), true
	}
	return "", false
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to TransactionStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	VehicleID  int64             `json:"mobil_id"`
	RenterName string            `json:"nama_penyewa"`
	Phone      string            `json:"nomor_wa"`
	StartDate  time.Time         `json:"tgl_mulai"`
	EndDate    time.Time         `json:"tgl_selesai"`
	Status     TransactionStatus `json:"status_transaksi"`
	CreatedAt  time.Time         `json:"created_at"`
}
