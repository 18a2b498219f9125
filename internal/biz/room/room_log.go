package room

import (
	"fmt"
	"strings"

	"github.com/yola1107/kratos/v2/library/log/file"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
)

const logDirPath = "%s/log_cache/%s/room_%d.log"

type Log struct {
	c      *conf.LogCache
	roomID int32
	logger *file.Log
}

func NewRoomLog(roomID int32, c *conf.LogCache) *Log {
	return &Log{
		c:      c,
		roomID: roomID,
		logger: file.NewFileLog(fmt.Sprintf(logDirPath, c.Path, conf.Name, roomID)),
	}
}

func (l *Log) Close() error {
	return l.logger.Sync()
}

// write 写入到房间日志文件
func (l *Log) write(msg string, args ...interface{}) {
	if !l.c.Open {
		return
	}
	l.logger.WriteLog(msg, args...)
}

func (l *Log) userEnter(p *player.Player, sitCnt int32) {
	l.write("[进入房间] 玩家:%+v 房间人数(%d) ", p.Desc(), sitCnt)
}

func (l *Log) userExit(p *player.Player, sitCnt int32, lastSeat int32) {
	l.write("[离开房间] 玩家:%+v 房间人数(%d) lastSeat(%d) ", p.Desc(), sitCnt, lastSeat)
}

// 玩家离线
func (l *Log) offline(p *player.Player) {
	l.write("【玩家断线】玩家:%+v ", p.Desc())
}

func (l *Log) begin(matchID string, seats []*player.Player, mano int32) {
	logs := []string{fmt.Sprintf("[比赛开始] match=%s mano=%d", matchID, mano)}
	for _, p := range seats {
		if p == nil {
			continue
		}
		logs = append(logs, fmt.Sprintf("玩家:%+v 状态:%v", p.Desc(), p.GetStatus()))
	}
	l.write(strings.Join(logs, "\r\n"))
}

func (l *Log) playCard(p *player.Player, index int32, trick int) {
	l.write("[玩家出牌] 玩家:%+v. index=%d, trick=%d", p.Desc(), index, trick)
}

func (l *Log) declare(p *player.Player, kind string, value int32) {
	l.write("[玩家喊注] 玩家:%+v. kind=%s, value=%d", p.Desc(), kind, value)
}

func (l *Log) respond(p *player.Player, kind string, resp, value int32) {
	l.write("[喊注应答] 玩家:%+v. kind=%s, resp=%d, value=%d", p.Desc(), kind, resp, value)
}

func (l *Log) forfeit(p *player.Player, points int32) {
	l.write("[玩家认输] 玩家:%+v. 对方得分=%d", p.Desc(), points)
}

func (l *Log) abandon(p *player.Player) {
	l.write("[对局中离场判负] 玩家:%+v ", p.Desc())
}

func (l *Log) dealResult(winner, points, scoreA, scoreB int32) {
	l.write("[一手结算] winner=%d points=%d 比分=%d:%d", winner, points, scoreA, scoreB)
}

func (l *Log) end(winner int32, scoreA, scoreB int32) {
	l.write("[比赛结束] winner=%d 比分=%d:%d", winner, scoreA, scoreB)
	l.write("\r\n\r\n\r\n")
}
