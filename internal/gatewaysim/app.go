// Package gatewaysim is an in-memory stand-in for the HRMS gateway. It speaks
// the same wire contract as the real server (envelope, validation messages,
// cascade semantics) so the client can be developed and tested against it.
package gatewaysim

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type App struct {
	Echo  *echo.Echo
	state *state
}

func NewApp() *App {
	a := &App{
		Echo:  echo.New(),
		state: newState(),
	}
	a.Echo.HideBanner = true

	a.registerMiddlewares()
	a.registerRoutes()
	return a
}

func (a *App) registerMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) registerRoutes() {
	api := a.Echo.Group("/api")

	api.GET("/", a.rootHandler)
	api.GET("/health/", a.healthHandler)

	api.GET("/employees/", a.listEmployeesHandler)
	api.POST("/employees/", a.createEmployeeHandler)
	api.GET("/employees/:id/", a.getEmployeeHandler)
	api.DELETE("/employees/:id/", a.deleteEmployeeHandler)

	api.GET("/attendance/", a.listAttendanceHandler)
	api.POST("/attendance/", a.createAttendanceHandler)
	api.GET("/attendance/summary/", a.attendanceSummaryHandler)
	api.GET("/attendance/:id/", a.getAttendanceHandler)
	api.PUT("/attendance/:id/", a.updateAttendanceHandler)
	api.DELETE("/attendance/:id/", a.deleteAttendanceHandler)
	api.GET("/attendance/employee/:employee_pk/", a.employeeAttendanceHandler)
}

func (a *App) rootHandler(c echo.Context) error {
	return c.JSON(200, map[string]interface{}{
		"success": true,
		"message": "Welcome to HRMS Lite API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"employees":  "/api/employees/",
			"attendance": "/api/attendance/",
			"health":     "/api/health/",
		},
	})
}

func (a *App) healthHandler(c echo.Context) error {
	return c.JSON(200, map[string]interface{}{
		"success": true,
		"status":  "healthy",
		"message": "HRMS Lite API is running",
	})
}

func (a *App) Run(port string) error {
	return a.Echo.Start(":" + port)
}
