package controller

import "github.com/labstack/echo/v4"

type StockController interface {
	ListStocks(c echo.Context) error
	CreateStock(c echo.Context) error
	UpdateStock(c echo.Context) error
	DeleteStock(c echo.Context) error

	ListVentes(c echo.Context) error
	CreateVente(c echo.Context) error
	DeleteVente(c echo.Context) error
}
