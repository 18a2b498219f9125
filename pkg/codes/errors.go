package codes

import (
	"github.com/yola1107/kratos/v2/errors"
)

var (
	ErrFail            = errors.New(1, "", "Failed")
	ErrServerFull      = errors.New(2, "", "server full")
	ErrTokenFail       = errors.New(10, "", "token fail")
	ErrSessionNotFound = errors.New(11, "", "session not found")
	ErrPlayerNotFound  = errors.New(12, "", "player not found")
	ErrRoomNotFound    = errors.New(13, "", "room not found")
	ErrRoomFull        = errors.New(14, "", "room full")
	ErrNotEnoughRoom   = errors.New(15, "", "not enough room")
	ErrExitRoomFail    = errors.New(16, "", "exit room fail")
	ErrEnterRoomFail   = errors.New(17, "", "enter room fail")
	ErrAlreadyInRoom   = errors.New(19, "", "player already exists in room")
	ErrNotInRoom       = errors.New(20, "", "player not in room")
	ErrRoomNotReady    = errors.New(21, "", "room not ready to start")
	ErrMatchRunning    = errors.New(22, "", "match already running")

	// 牌局内错误 与局内错误码一一对应
	ErrMatchOver     = errors.New(30, "", "match is over")
	ErrNotYourTurn   = errors.New(31, "", "not your turn")
	ErrBetPending    = errors.New(32, "", "bet response pending")
	ErrInvalidIndex  = errors.New(33, "", "invalid card index")
	ErrBetUsed       = errors.New(34, "", "bet already called")
	ErrBetTiming     = errors.New(35, "", "bet not allowed now")
	ErrNoPendingBet  = errors.New(36, "", "no pending bet")
	ErrRespondSelf   = errors.New(37, "", "cannot respond own bet")
	ErrNoFlor        = errors.New(38, "", "no flor in hand")
	ErrBadResponse   = errors.New(39, "", "bad bet response")
	ErrMatchNotBegun = errors.New(40, "", "match not begun")
)
