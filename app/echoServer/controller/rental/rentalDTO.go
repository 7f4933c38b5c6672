package rental

// BookReq is the customer booking form. Dates are yyyy-mm-dd strings,
// parsed in the controller.
type BookReq struct {
	VehicleID int64  `json:"mobil_id" form:"mobil_id" validate:"required,gt=0"`
	Phone     string `json:"nomor_wa" form:"nomor_wa" validate:"required"`
	StartDate string `json:"tgl_mulai" form:"tgl_mulai" validate:"required"`
	EndDate   string `json:"tgl_selesai" form:"tgl_selesai" validate:"required"`
}
