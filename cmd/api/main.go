package main

import (
	"autoshop-backend/internal/bootstrap"

	"go.uber.org/fx"
)

// @title        Auto Shop Warranty API
// @version      1.0
// @description  Vehicle, service and warranty management for the shop backend
// @BasePath     /api
func main() {
	fx.New(bootstrap.Modules()).Run()
}
