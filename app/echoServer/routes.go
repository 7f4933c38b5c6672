package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/controller/auth"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/controller/rental"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/controller/vehicle"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/jwtx"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
)

type C struct {
	Auth      *auth.Controller
	Vehicle   *vehicle.Controller
	Rental    *rental.Controller
	JWTSecret string
}

func sessionJWT(secret, loginPath string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + jwtx.SessionCookie,
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, loginPath)
		},
	})
}

func Register(e *echo.Echo, c C) {
	// Public
	e.GET("/", c.Vehicle.List)
	e.POST("/register", c.Auth.Register)
	e.GET("/register", c.Auth.RegisterPage)
	e.GET("/login/admin", c.Auth.LoginAdminPage)
	e.POST("/login/admin", c.Auth.LoginAdmin)
	e.GET("/login/customer", c.Auth.LoginCustomerPage)
	e.POST("/login/customer", c.Auth.LoginCustomer)
	e.GET("/logout", c.Auth.Logout)

	// Admin
	admin := e.Group("/admin")
	admin.Use(sessionJWT(c.JWTSecret, "/login/admin"))
	admin.Use(RequireRole(model.RoleAdmin, "/login/admin"))

	admin.GET("/dashboard", c.Rental.AdminDashboard)
	admin.GET("/transaksi/update/:id/:status", c.Rental.UpdateStatus)
	admin.GET("/mobil/tambah", c.Vehicle.CreatePage)
	admin.POST("/mobil/tambah", c.Vehicle.Create)
	admin.GET("/mobil/edit/:id", c.Vehicle.EditPage)
	admin.POST("/mobil/edit/:id", c.Vehicle.Update)
	admin.GET("/mobil/hapus/:id", c.Vehicle.Delete)

	// Customer
	cust := e.Group("/customer")
	cust.Use(sessionJWT(c.JWTSecret, "/login/customer"))
	cust.Use(RequireRole(model.RoleCustomer, "/login/customer"))

	cust.GET("/dashboard", c.Vehicle.List)
	cust.GET("/riwayat", c.Rental.MyHistory)
	cust.POST("/book", c.Rental.Book)
}
