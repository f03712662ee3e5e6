package utils

import "go.uber.org/zap"

// NewLogger builds a sugared zap logger; development mode gets the
// human-readable console encoder.
func NewLogger(env string) (*zap.SugaredLogger, error) {
	var z *zap.Logger
	var err error
	if env == "development" {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return z.Sugar(), nil
}
