package data

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"github.com/yola1107/kratos/v2/log"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
	"github.com/ArthurJoras/spanish-truco-game/pkg/xredis"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewDataRepo, NewRedis)

type dataRepo struct {
	data *Data
	log  *log.Helper
}

// NewDataRepo .
func NewDataRepo(data *Data, logger log.Logger) biz.DataRepo {
	return &dataRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// Data .
type Data struct {
	redis *redis.Client
}

// NewData .
func NewData(c *conf.Data, logger log.Logger, redis *redis.Client) (*Data, func(), error) {
	cleanup := func() {
		log.Info("closing the data resources")
		if redis != nil {
			_ = redis.Close()
		}
	}

	return &Data{redis: redis}, cleanup, nil
}

func NewRedis(c *conf.Data) *redis.Client {
	rdb := xredis.NewClient(
		xredis.WithAddress(c.Redis.Addr),
		xredis.WithPassword(c.Redis.Password),
		xredis.WithDB(int(c.Redis.DB)),
	)
	return rdb
}
