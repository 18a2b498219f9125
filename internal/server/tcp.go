package server

import (
	"time"

	"github.com/google/wire"
	"github.com/yola1107/kratos/v2/middleware/recovery"
	"github.com/yola1107/kratos/v2/transport/tcp"

	v1 "github.com/ArthurJoras/spanish-truco-game/api/truco/v1"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
	"github.com/ArthurJoras/spanish-truco-game/internal/service"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(NewTCPServer)

// NewTCPServer new a TCP server.
func NewTCPServer(c *conf.Server, svc *service.Service) *tcp.Server {
	var opts = []tcp.ServerOption{
		tcp.Middleware(
			recovery.Recovery(),
		),
	}
	if c.TCP.Network != "" {
		opts = append(opts, tcp.Network(c.TCP.Network))
	}
	if c.TCP.Addr != "" {
		opts = append(opts, tcp.Address(c.TCP.Addr))
	}
	if c.TCP.Timeout > 0 {
		opts = append(opts, tcp.Timeout(time.Duration(c.TCP.Timeout)*time.Second))
	}
	srv := tcp.NewServer(opts...)
	v1.RegisterTrucoTCPServer(srv, svc)
	return srv
}
