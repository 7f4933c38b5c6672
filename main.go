// Package main autodrive rental API.
//
// @title           AutoDrive Rental API
// @version         1.0
// @description     car rental service (fleet, bookings, accounts).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer"
	authctrl "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/controller/auth"
	rentalctrl "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/controller/rental"
	vehiclectrl "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/controller/vehicle"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/validation"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/config"
	trxrepo "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/repository/transaction"
	userrepo "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/repository/user"
	vehiclerepo "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/repository/vehicle"
	authsvc "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/auth"
	rentalsvc "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/rental"
	vehiclesvc "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/vehicle"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	vr := vehiclerepo.New(db)
	tr := trxrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	vs := vehiclesvc.New(vr)
	rs := rentalsvc.New(db, tr, vr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	vehicleC := &vehiclectrl.Controller{Svc: vs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Vehicles: vs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Vehicle: vehicleC,
		Rental:  rentalC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
