//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/google/wire"
	"github.com/yola1107/kratos/v2"
	"github.com/yola1107/kratos/v2/log"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
	"github.com/ArthurJoras/spanish-truco-game/internal/data"
	"github.com/ArthurJoras/spanish-truco-game/internal/server"
	"github.com/ArthurJoras/spanish-truco-game/internal/service"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, *conf.Room, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(server.ProviderSet, data.ProviderSet, biz.ProviderSet, service.ProviderSet, newApp))
}
