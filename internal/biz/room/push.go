package room

import (
	v1 "github.com/ArthurJoras/spanish-truco-game/api/truco/v1"
	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/internal/model"
)

func (r *Room) send(p *player.Player, ops int32, msg any) {
	if p == nil || p.GetSessionID() == "" {
		return
	}
	r.repo.Send(p.GetSessionID(), ops, msg)
}

// pushGameState 给双方各推一份视角归一化的快照
func (r *Room) pushGameState() {
	for _, p := range r.seats {
		if p != nil {
			r.pushGameStateTo(p)
		}
	}
}

func (r *Room) pushGameStateTo(p *player.Player) {
	seat := p.GetSeat()
	v := r.game.View(seat)
	r.send(p, v1.PushGameState, &v1.GameStatePush{
		RoomID:           r.ID,
		Seat:             seat,
		MyScore:          v.MyScore,
		OppScore:         v.OppScore,
		Trick:            v.Trick,
		MyTurn:           v.MyTurn,
		IsMano:           v.IsMano,
		Stake:            v.Stake,
		TrucoOffer:       v.TrucoOffer,
		EnvidoValue:      v.EnvidoValue,
		FlorValue:        v.FlorValue,
		Hand:             v.Hand,
		Played:           v.Played[:],
		CanTruco:         v.CanTruco,
		CanEnvido:        v.CanEnvido,
		CanFlor:          v.CanFlor,
		AwaitingResponse: v.AwaitingResponse,
	})
}

// pushDeclaration 喊注/应答通知 resp为-1表示首喊
func (r *Room) pushDeclaration(by, bet, value, resp int32) {
	for k, p := range r.seats {
		if p == nil {
			continue
		}
		r.send(p, v1.PushDeclaration, &v1.DeclarationPush{
			Bet:      bet,
			Value:    value,
			Mine:     int32(k) == by,
			Response: resp,
		})
	}
}

func (r *Room) pushDealResult(ev model.Event) {
	for k, p := range r.seats {
		if p == nil {
			continue
		}
		seat := int32(k)
		r.send(p, v1.PushDealResult, &v1.DealResultPush{
			IWon:     seat == ev.PointsTo,
			Points:   ev.Points,
			MyScore:  r.game.Score(seat),
			OppScore: r.game.Score((seat + 1) % seatNum),
		})
	}
}

func (r *Room) pushMatchOver(winner int32) {
	winnerID := int64(0)
	if winner >= 0 && winner < seatNum && r.seats[winner] != nil {
		winnerID = r.seats[winner].GetPlayerID()
	}
	for k, p := range r.seats {
		if p == nil {
			continue
		}
		seat := int32(k)
		my, opp := int32(0), int32(0)
		if r.game != nil {
			my, opp = r.game.Score(seat), r.game.Score((seat+1)%seatNum)
		}
		r.send(p, v1.PushMatchOver, &v1.MatchOverPush{
			WinnerID: winnerID,
			IWon:     seat == winner,
			MyScore:  my,
			OppScore: opp,
		})
	}
}

// pushRoomEvent 有人进房 通知双方
func (r *Room) pushRoomEvent(joined *player.Player, seat int32) {
	for _, p := range r.seats {
		if p == nil {
			continue
		}
		r.send(p, v1.PushRoomEvent, &v1.RoomEventPush{
			Event:    v1.RoomEventJoin,
			UserID:   joined.GetPlayerID(),
			NickName: joined.GetNickName(),
		})
	}
}

func (r *Room) notifyLeft(left *player.Player) {
	for _, p := range r.seats {
		if p == nil {
			continue
		}
		r.send(p, v1.PushRoomEvent, &v1.RoomEventPush{
			Event:    v1.RoomEventLeave,
			UserID:   left.GetPlayerID(),
			NickName: left.GetNickName(),
		})
	}
}

func (r *Room) notifyStart() {
	for _, p := range r.seats {
		if p == nil {
			continue
		}
		r.send(p, v1.PushRoomEvent, &v1.RoomEventPush{Event: v1.RoomEventStart})
	}
}
