package vehicle

// VehicleReq mirrors the admin fleet form. Numeric fields arrive as
// strings and are parsed defensively; a garbled harga/stok must come back
// as a 400, not a panic.
type VehicleReq struct {
	Name     string `json:"nama" form:"nama" validate:"required"`
	Brand    string `json:"merk" form:"merk" validate:"required"`
	Price    string `json:"harga" form:"harga" validate:"required"`
	Stock    string `json:"stok" form:"stok" validate:"required"`
	PhotoURL string `json:"foto_url" form:"foto_url"`
	Desc     string `json:"deskripsi" form:"deskripsi"`
}
