//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/cory-johannsen/arena/internal/app"
	"github.com/cory-johannsen/arena/internal/config"
)

func initializeApp(cfg config.Config, stdio app.Stdio) (*app.App, func(), error) {
	wire.Build(app.ProviderSet)
	return nil, nil, nil
}
