// Package web serves the keep-alive endpoints some hosting platforms need.
package web

import (
	"net/http"

	"avien/utils"

	"github.com/labstack/echo/v4"
)

// StartHealthServer serves / and /healthz in the background.
func StartHealthServer(port string) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Bot is running.")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	go func() {
		utils.Log.Infow("health server listening", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			utils.Log.Errorw("health server stopped", "err", err)
		}
	}()
}
