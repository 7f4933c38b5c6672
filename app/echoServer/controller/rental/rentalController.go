package rental

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	rs "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/rental"
	vehiclesvc "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/vehicle"
)

const dateLayout = "2006-01-02"

type Controller struct {
	Svc      rs.Service
	Vehicles vehiclesvc.Service
	V        *validator.Validate
	Log      *slog.Logger
}

// GET /admin/dashboard
func (h *Controller) AdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	mobs, err := h.Vehicles.List(ctx)
	if err != nil {
		h.Log.Error("dashboard vehicles", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	laps, err := h.Svc.Report(ctx)
	if err != nil {
		h.Log.Error("dashboard report", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"mobil": mobs, "laporan": laps})
}

// GET /admin/transaksi/update/:id/:status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	status, ok := model.ParseStatus(c.Param("status"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
	}

	if err := h.Svc.SetStatus(c.Request().Context(), id, status); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "transaksi not found"})
		case rs.ErrBadTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": "illegal status transition"})
		default:
			h.Log.Error("status update", "err", err, "id", id, "status", status)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	// Transaksi diupdate
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// POST /customer/book
func (h *Controller) Book(c echo.Context) error {
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "tgl_mulai must be yyyy-mm-dd"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "tgl_selesai must be yyyy-mm-dd"})
	}

	uid, _ := c.Get("user_id").(int64)
	renter, _ := c.Get("username").(string)

	if _, err := h.Svc.Book(c.Request().Context(), uid, req.VehicleID, renter, req.Phone, start, end); err != nil {
		switch rs.Code(err) {
		case rs.ErrVehicleNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "mobil not found"})
		case rs.ErrNoStock:
			// Stok mobil habis
			return c.JSON(http.StatusConflict, echo.Map{"message": "stok mobil habis"})
		default:
			h.Log.Error("booking", "err", err, "user_id", uid, "mobil_id", req.VehicleID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	// Booking berhasil
	return c.Redirect(http.StatusFound, "/customer/dashboard")
}

// GET /customer/riwayat
func (h *Controller) MyHistory(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.HistoryFor(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"transaksi": rows})
}
