package vehicle

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	vehiclesvc "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/vehicle"
)

type Controller struct {
	Svc vehiclesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET / and GET /customer/dashboard
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("vehicle list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"mobil": rows})
}

func (h *Controller) bindVehicle(c echo.Context) (*model.Vehicle, error) {
	var req VehicleReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := h.V.Struct(req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	price, err := strconv.ParseInt(req.Price, 10, 64)
	if err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"message": "harga must be numeric"})
	}
	stock, err := strconv.ParseInt(req.Stock, 10, 64)
	if err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"message": "stok must be numeric"})
	}
	return &model.Vehicle{
		Name:      req.Name,
		Brand:     req.Brand,
		DailyRate: price,
		Stock:     stock,
		PhotoURL:  req.PhotoURL,
		Desc:      req.Desc,
	}, nil
}

// GET /admin/mobil/tambah  (admin)
func (h *Controller) CreatePage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "submit nama, merk, harga, stok, foto_url, deskripsi"})
}

// GET /admin/mobil/edit/:id  (admin) — current data for the edit form
func (h *Controller) EditPage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("vehicle detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /admin/mobil/tambah  (admin)
func (h *Controller) Create(c echo.Context) error {
	v, err := h.bindVehicle(c)
	if v == nil {
		return err
	}
	if _, err := h.Svc.Create(c.Request().Context(), v); err != nil {
		if errors.Is(err, vehiclesvc.ErrInvalidPayload) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("vehicle create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	// Mobil berhasil ditambahkan
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// POST /admin/mobil/edit/:id  (admin)
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	v, err := h.bindVehicle(c)
	if v == nil {
		return err
	}
	v.ID = id
	if err := h.Svc.Update(c.Request().Context(), v); err != nil {
		switch {
		case errors.Is(err, vehiclesvc.ErrInvalidPayload):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		case errors.Is(err, vehiclesvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		default:
			h.Log.Error("vehicle update error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// GET /admin/mobil/hapus/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, vehiclesvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		case errors.Is(err, vehiclesvc.ErrHasOpenRentals):
			return c.JSON(http.StatusConflict, echo.Map{"message": "vehicle has open rentals"})
		default:
			h.Log.Error("vehicle delete error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}
