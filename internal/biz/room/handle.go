package room

import (
	"github.com/yola1107/kratos/v2/errors"

	v1 "github.com/ArthurJoras/spanish-truco-game/api/truco/v1"
	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/conf"
	"github.com/ArthurJoras/spanish-truco-game/internal/model"
	"github.com/ArthurJoras/spanish-truco-game/pkg/codes"
)

// gameErr 局内错误码转协议错误
func gameErr(c model.ErrCode) *errors.Error {
	switch c {
	case model.OK:
		return nil
	case model.ErrMatchOver:
		return codes.ErrMatchOver
	case model.ErrNotYourTurn:
		return codes.ErrNotYourTurn
	case model.ErrBetPending:
		return codes.ErrBetPending
	case model.ErrInvalidIndex:
		return codes.ErrInvalidIndex
	case model.ErrBetUsed:
		return codes.ErrBetUsed
	case model.ErrBetTiming:
		return codes.ErrBetTiming
	case model.ErrNoPendingBet:
		return codes.ErrNoPendingBet
	case model.ErrRespondSelf:
		return codes.ErrRespondSelf
	case model.ErrNoFlor:
		return codes.ErrNoFlor
	case model.ErrBadResponse:
		return codes.ErrBadResponse
	default:
		return codes.ErrFail
	}
}

func toResponse(v int32) (model.Response, bool) {
	switch v {
	case v1.RespAccept:
		return model.Accept, true
	case v1.RespDecline:
		return model.Decline, true
	case v1.RespRaiseA:
		return model.RaiseA, true
	case v1.RespRaiseB:
		return model.RaiseB, true
	}
	return 0, false
}

// OnStartMatch 双人齐备后开赛
func (r *Room) OnStartMatch(p *player.Player) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stage == conf.RoomStPlaying {
		return codes.ErrMatchRunning
	}
	if r.stage != conf.RoomStWait || r.sitCnt < seatNum {
		return codes.ErrRoomNotReady
	}

	r.startMatch()
	return nil
}

// OnScene 重推当前牌局快照
func (r *Room) OnScene(p *player.Player) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	r.pushGameStateTo(p)
	return nil
}

func (r *Room) OnPlayCard(p *player.Player, index int32) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	seat := p.GetSeat()
	ev, code := r.game.PlayCard(seat, int(index))
	if code != model.OK {
		return gameErr(code)
	}

	r.mLog.playCard(p, index, r.game.TrickIndex())
	r.afterEvent(ev)
	return nil
}

func (r *Room) OnTruco(p *player.Player) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	seat := p.GetSeat()
	if code := r.game.Truco(seat); code != model.OK {
		return gameErr(code)
	}

	r.mLog.declare(p, "truco", r.game.TrucoOffer())
	r.pushDeclaration(seat, v1.BetTruco, r.game.TrucoOffer(), -1)
	r.pushGameState()
	return nil
}

func (r *Room) OnRespondTruco(p *player.Player, resp int32) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	mresp, ok := toResponse(resp)
	if !ok {
		return codes.ErrBadResponse
	}
	seat := p.GetSeat()
	ev, code := r.game.RespondTruco(seat, mresp)
	if code != model.OK {
		return gameErr(code)
	}

	r.mLog.respond(p, "truco", resp, r.game.TrucoOffer())
	r.pushDeclaration(seat, v1.BetTruco, r.game.TrucoOffer(), resp)
	r.afterEvent(ev)
	return nil
}

func (r *Room) OnEnvido(p *player.Player) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	seat := p.GetSeat()
	if code := r.game.Envido(seat); code != model.OK {
		return gameErr(code)
	}

	r.mLog.declare(p, "envido", r.game.EnvidoValue())
	r.pushDeclaration(seat, v1.BetEnvido, r.game.EnvidoValue(), -1)
	r.pushGameState()
	return nil
}

func (r *Room) OnRespondEnvido(p *player.Player, resp int32) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	mresp, ok := toResponse(resp)
	if !ok {
		return codes.ErrBadResponse
	}
	seat := p.GetSeat()
	ev, code := r.game.RespondEnvido(seat, mresp)
	if code != model.OK {
		return gameErr(code)
	}

	r.mLog.respond(p, "envido", resp, r.game.EnvidoValue())
	r.pushDeclaration(seat, v1.BetEnvido, r.game.EnvidoValue(), resp)
	r.afterEvent(ev)
	return nil
}

func (r *Room) OnFlor(p *player.Player) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	seat := p.GetSeat()
	ev, code := r.game.Flor(seat)
	if code != model.OK {
		return gameErr(code)
	}

	r.mLog.declare(p, "flor", r.game.FlorValue())
	r.pushDeclaration(seat, v1.BetFlor, r.game.FlorValue(), -1)
	r.afterEvent(ev)
	return nil
}

func (r *Room) OnRespondFlor(p *player.Player, resp int32) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	mresp, ok := toResponse(resp)
	if !ok {
		return codes.ErrBadResponse
	}
	seat := p.GetSeat()
	ev, code := r.game.RespondFlor(seat, mresp)
	if code != model.OK {
		return gameErr(code)
	}

	r.mLog.respond(p, "flor", resp, r.game.FlorValue())
	r.pushDeclaration(seat, v1.BetFlor, r.game.FlorValue(), resp)
	r.afterEvent(ev)
	return nil
}

// OnForfeit 认输（ir al mazo）
func (r *Room) OnForfeit(p *player.Player) *errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return codes.ErrMatchNotBegun
	}
	return r.forfeitLocked(p)
}

// OnOffline 玩家掉线 对局中视为离房
func (r *Room) OnOffline(p *player.Player) (emptied bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.SetOffline(true)
	r.mLog.offline(p)
	return r.throwOff(p)
}
