package main

import (
	_ "time/tzdata"

	"trm/internal/app"

	"github.com/sirupsen/logrus"
)

// @title TRM API
// @version 1.0
// @description Colombian representative market rate (COP per USD): current value, history, lookups and conversions.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("application stopped")
	}
}
