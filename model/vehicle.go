// model/vehicle.go
package model

// Vehicle is one fleet entry in the mobil table. Stok counts rentable
// units and is only mutated through the booking workflow or admin edits.
type Vehicle struct {
	ID        int64  `json:"id"`
	Name      string `json:"nama_mobil"`
	Brand     string `json:"merk"`
	DailyRate int64  `json:"harga_sewa"`
	Stock     int64  `json:"stok"`
	PhotoURL  string `json:"foto_url"`
	Desc      string `json:"deskripsi"`
	Status    string `json:"status"`
}

const VehicleStatusAvailable = "Tersedia"
