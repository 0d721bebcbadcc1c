package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the production logger used by every component.
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
