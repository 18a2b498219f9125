package player

import (
	"fmt"
)

// 玩家状态枚举
const (
	StFree   Status = iota // 空闲
	StSit                  // 入座
	StGaming               // 对局中
)

// Status 表示玩家当前的状态
type Status int32

// String 返回状态的字符串表示
func (s Status) String() string {
	switch s {
	case StFree:
		return "Free"
	case StSit:
		return "Sit"
	case StGaming:
		return "Gaming"
	default:
		return fmt.Sprintf("%d", s)
	}
}

// GameData 存储玩家在对局中的动态信息
type GameData struct {
	RoomID    int32  // 所在房间号
	Seat      int32  // 座位号 0/1
	status    Status // 玩家状态
	isOffline bool   // 是否离线
}

// Reset 清除玩家的对局状态（不清除座位与房间）
func (p *Player) Reset() {
	p.gameData.status = StSit
	p.gameData.isOffline = false
}

// ExitReset 玩家离房时调用，清除座位与房间信息
func (p *Player) ExitReset() {
	p.gameData.status = StFree
	p.gameData.isOffline = false
	p.gameData.Seat = -1
	p.gameData.RoomID = -1
}

// Desc 打印当前玩家的关键状态（调试用）
func (p *Player) Desc() string {
	return fmt.Sprintf("(%d %q R:%d C:%d St:%s)",
		p.GetPlayerID(), p.GetNickName(), p.GetRoomID(), p.GetSeat(), p.GetStatus().String())
}

// ---- Game Data Accessors ----

func (p *Player) SetRoomID(roomID int32) {
	p.gameData.RoomID = roomID
}

func (p *Player) GetRoomID() int32 {
	return p.gameData.RoomID
}

func (p *Player) SetSeat(seat int32) {
	p.gameData.Seat = seat
}

func (p *Player) GetSeat() int32 {
	return p.gameData.Seat
}

func (p *Player) SetOffline(v bool) {
	p.gameData.isOffline = v
}

func (p *Player) IsOffline() bool {
	return p.gameData.isOffline
}

func (p *Player) GetStatus() Status {
	return p.gameData.status
}

func (p *Player) SetSit() {
	p.gameData.status = StSit
}

func (p *Player) SetGaming() {
	p.gameData.status = StGaming
}

func (p *Player) IsGaming() bool {
	return p.gameData.status == StGaming
}

func (p *Player) InRoom() bool {
	return p.gameData.RoomID >= 0
}
