package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/yola1107/kratos/v2/library/xgo"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
	"github.com/ArthurJoras/spanish-truco-game/pkg/xredis"
)

var (
	errRedisNil = errors.New("redis no exist player")
)

var allBaseDataFields = []string{
	xredis.PlayerUIDField,
	xredis.PlayerNickNameField,
	xredis.PlayerMatchesField,
	xredis.PlayerWinsField,
	xredis.PlayerPointsWonField,
	xredis.PlayerPointsLostField,
	xredis.PlayerLastSeenField,
}

func (r *dataRepo) SavePlayer(ctx context.Context, base *player.BaseData) error {
	key := xredis.PlayerKey(conf.GameID, base.UID)
	return r.data.redis.HMSet(ctx, key, toRedisMap(base)).Err()
}

func (r *dataRepo) ExistPlayer(ctx context.Context, uid int64) bool {
	key := xredis.PlayerKey(conf.GameID, uid)
	v, err := r.data.redis.Exists(ctx, key).Result()
	return v != 0 && err == nil
}

func (r *dataRepo) LoadPlayer(ctx context.Context, uid int64) (*player.BaseData, error) {
	key := xredis.PlayerKey(conf.GameID, uid)

	v, err := r.data.redis.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, errRedisNil
	}

	values, err := r.data.redis.HMGet(ctx, key, allBaseDataFields...).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errRedisNil
	}
	return fromRedisData(uid, addList(allBaseDataFields, values)), nil
}

// NextUID 分配新玩家ID
func (r *dataRepo) NextUID(ctx context.Context) (int64, error) {
	return r.data.redis.Incr(ctx, xredis.AllocKey(conf.GameID)).Result()
}

func addList(keys []string, values []any) map[string]string {
	p := map[string]string{}
	for i, v := range values {
		p[keys[i]] = fmt.Sprintf("%v", v)
	}
	return p
}

func fromRedisData(uid int64, data map[string]string) *player.BaseData {
	b := &player.BaseData{}

	b.UID = xgo.StrToInt64(data[xredis.PlayerUIDField])
	b.NickName = data[xredis.PlayerNickNameField]
	b.Matches = xgo.StrToInt32(data[xredis.PlayerMatchesField])
	b.Wins = xgo.StrToInt32(data[xredis.PlayerWinsField])
	b.PointsWon = xgo.StrToInt32(data[xredis.PlayerPointsWonField])
	b.PointsLost = xgo.StrToInt32(data[xredis.PlayerPointsLostField])
	b.LastSeen = xgo.StrToInt64(data[xredis.PlayerLastSeenField])

	b.UID = uid
	return b
}

// toRedisMap 转为 Redis hash 的 map[string]string
func toRedisMap(b *player.BaseData) map[string]string {
	m := make(map[string]string)
	m[xredis.PlayerUIDField] = xgo.Int64ToStr(b.UID)
	m[xredis.PlayerNickNameField] = b.NickName
	m[xredis.PlayerMatchesField] = xgo.Int32ToStr(b.Matches)
	m[xredis.PlayerWinsField] = xgo.Int32ToStr(b.Wins)
	m[xredis.PlayerPointsWonField] = xgo.Int32ToStr(b.PointsWon)
	m[xredis.PlayerPointsLostField] = xgo.Int32ToStr(b.PointsLost)
	m[xredis.PlayerLastSeenField] = xgo.Int64ToStr(b.LastSeen)
	return m
}
