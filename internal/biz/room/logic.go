package room

import (
	"time"

	"github.com/google/uuid"
	"github.com/yola1107/kratos/v2/errors"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
	"github.com/ArthurJoras/spanish-truco-game/internal/model"
)

// startMatch 开赛 调用方持锁
func (r *Room) startMatch() {
	r.stage = conf.RoomStPlaying
	r.game = model.NewGame(model.NewGameCards())
	r.matchID = uuid.NewString()

	for _, p := range r.seats {
		if p == nil {
			continue
		}
		p.SetGaming()
	}

	r.mLog.begin(r.matchID, r.seats[:], r.game.Mano())
	r.notifyStart()
	r.pushGameState()
}

// forfeitLocked 主动认输 调用方持锁
func (r *Room) forfeitLocked(p *player.Player) *errors.Error {
	seat := p.GetSeat()
	ev, code := r.game.Forfeit(seat)
	if code != model.OK {
		return gameErr(code)
	}

	r.mLog.forfeit(p, ev.Points)
	r.afterEvent(ev)
	return nil
}

// abandon 对局中离房/掉线判负 调用方持锁
func (r *Room) abandon(p *player.Player) {
	seat := p.GetSeat()
	winner := (seat + 1) % seatNum

	r.stage = conf.RoomStOver
	r.mLog.abandon(p)

	r.settleProfiles(winner)
	r.pushMatchOver(winner)
	r.scheduleRetire()
}

// afterEvent 处理一次操作产生的结算事件 调用方持锁
func (r *Room) afterEvent(ev model.Event) {
	if ev.DealEnded && ev.PointsTo != model.SeatNone {
		r.mLog.dealResult(ev.PointsTo, ev.Points, r.game.Score(0), r.game.Score(1))
		r.pushDealResult(ev)
	}
	if ev.MatchEnded {
		r.finishMatch()
		return
	}
	r.pushGameState()
}

// finishMatch 比赛结束结算 调用方持锁
func (r *Room) finishMatch() {
	winner := r.game.MatchWinner()
	r.stage = conf.RoomStOver

	r.mLog.end(winner, r.game.Score(0), r.game.Score(1))
	r.settleProfiles(winner)
	r.pushMatchOver(winner)
	r.scheduleRetire()
}

// settleProfiles 更新并落地双方档案 调用方持锁
func (r *Room) settleProfiles(winner int32) {
	for k, p := range r.seats {
		if p == nil {
			continue
		}
		seat := int32(k)
		won := seat == winner
		my, opp := int32(0), int32(0)
		if r.game != nil {
			my, opp = r.game.Score(seat), r.game.Score((seat+1)%seatNum)
		}
		p.RecordMatch(won, my, opp)
		p.Reset()
		r.repo.SaveProfile(p)
	}
}

// scheduleRetire 比赛结束后延迟回收房间 调用方持锁
func (r *Room) scheduleRetire() {
	delay := time.Duration(r.c.Game.RetireDelay) * time.Second
	r.retireJob = r.repo.GetTimer().Once(delay, func() {
		r.repo.RetireRoom(r.ID)
	})
}
