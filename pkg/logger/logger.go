// Package logger builds the shared zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// New returns a production logger, or a human-friendly development one
// when APP_ENV=development.
func New() *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("APP_ENV") == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
