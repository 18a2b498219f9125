package room

import (
	"fmt"
	"sync"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
	"github.com/ArthurJoras/spanish-truco-game/internal/model"
)

const seatNum = 2

type Room struct {
	ID   int32
	Name string

	repo Repo
	c    *conf.Room

	mu        sync.Mutex
	stage     int32 // conf.RoomSt*
	seats     [seatNum]*player.Player
	sitCnt    int32
	game      *model.Game
	matchID   string // 本场比赛ID
	mLog      *Log
	retireJob int64 // 延迟回收任务ID 0表示未挂起
}

func NewRoom(id int32, name string, c *conf.Room, repo Repo) *Room {
	r := &Room{
		ID:    id,
		Name:  name,
		repo:  repo,
		c:     c,
		stage: conf.RoomStWait,
		mLog:  NewRoomLog(id, c.LogCache),
	}
	return r
}

func (r *Room) Desc() string {
	return fmt.Sprintf("(R:%d %q SitCnt:%d St:%s)",
		r.ID, r.Name, r.sitCnt, conf.RoomStageName(r.stage))
}

func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sitCnt <= 0
}

func (r *Room) IsFull() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sitCnt >= seatNum
}

// Info 房间列表项
func (r *Room) Info() (id int32, name string, players int32, playing bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ID, r.Name, r.sitCnt, r.stage == conf.RoomStPlaying
}

// ThrowInto 入座 返回座位号 失败返回-1
func (r *Room) ThrowInto(p *player.Player) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stage != conf.RoomStWait {
		return -1
	}
	for k, v := range r.seats {
		if v != nil {
			continue
		}

		// 房间信息
		r.seats[k] = p
		r.sitCnt++

		// 玩家信息
		p.SetRoomID(r.ID)
		p.SetSeat(int32(k))
		p.SetSit()

		r.mLog.userEnter(p, r.sitCnt)
		r.pushRoomEvent(p, int32(k))
		return int32(k)
	}
	return -1
}

// ThrowOff 离座 返回离座后房间是否为空
func (r *Room) ThrowOff(p *player.Player) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.throwOff(p)
}

func (r *Room) throwOff(p *player.Player) bool {
	seat := p.GetSeat()
	if seat < 0 || seat >= seatNum || r.seats[seat] != p {
		return r.sitCnt <= 0
	}

	// 对局中离开判负
	if r.stage == conf.RoomStPlaying && r.game != nil && !r.game.Over() {
		r.abandon(p)
	}

	r.seats[seat] = nil
	r.sitCnt--
	r.mLog.userExit(p, r.sitCnt, seat)
	p.ExitReset()

	r.notifyLeft(p)
	return r.sitCnt <= 0
}

func (r *Room) Playing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage == conf.RoomStPlaying
}

// Close 回收前清理
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.retireJob > 0 {
		r.repo.GetTimer().Cancel(r.retireJob)
		r.retireJob = 0
	}
	r.game = nil
	r.stage = conf.RoomStOver
	_ = r.mLog.Close()
}

// Seats 当前座位快照
func (r *Room) Seats() []*player.Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*player.Player, 0, seatNum)
	for _, p := range r.seats {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) other(seat int32) *player.Player {
	return r.seats[(seat+1)%seatNum]
}
