package conf

import (
	"flag"
	"os"
)

const Name = "truco"
const Version = "v0.0.1"
const GameID = 140

var ServerID = "" // 房间服ID

func init() {
	flag.StringVar(&ServerID, "sid", os.Getenv("HOSTNAME"), "specify the server ID.")
}

// 房间阶段
const (
	RoomStWait    = 0 // 等待玩家
	RoomStPlaying = 1 // 对局中
	RoomStOver    = 2 // 比赛结束
)

var RoomStageNames = map[int32]string{
	RoomStWait:    "等待",
	RoomStPlaying: "对局中",
	RoomStOver:    "结束",
}

func RoomStageName(s int32) string {
	return RoomStageNames[s]
}

const (
	RetireTimeout = 5 // 比赛结束后延迟回收房间 (s)
)
