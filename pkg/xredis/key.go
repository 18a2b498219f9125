package xredis

import "fmt"

// Redis 字段常量
const (
	PlayerUIDField        = "uid"
	PlayerNickNameField   = "nick_name"
	PlayerMatchesField    = "matches"
	PlayerWinsField       = "wins"
	PlayerPointsWonField  = "points_won"
	PlayerPointsLostField = "points_lost"
	PlayerLastSeenField   = "last_seen"
)

// PlayerKey 玩家档案的hash键
func PlayerKey(gameID int, uid int64) string {
	return fmt.Sprintf("truco:%d:player:%d", gameID, uid)
}

// AllocKey 玩家ID分配器
func AllocKey(gameID int) string {
	return fmt.Sprintf("truco:%d:uid:alloc", gameID)
}
