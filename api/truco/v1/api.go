package v1

// GameCommand 协议命令字
type GameCommand = int32

// 客户端请求
const (
	CmdConnect GameCommand = iota + 1001
	CmdCreateRoom
	CmdJoinRoom
	CmdLeaveRoom
	CmdRoomList
	CmdStartMatch
	CmdScene
	CmdPlayCard
	CmdTruco
	CmdRespondTruco
	CmdEnvido
	CmdRespondEnvido
	CmdFlor
	CmdRespondFlor
	CmdForfeit
)

// 服务端推送
const (
	PushGameState GameCommand = iota + 2001
	PushDeclaration
	PushDealResult
	PushMatchOver
	PushRoomEvent
)

// 喊注应答码
const (
	RespAccept  int32 = 0
	RespDecline int32 = 1
	RespRaiseA  int32 = 2 // retruco / real envido
	RespRaiseB  int32 = 3 // vale cuatro / falta envido
)

// 喊注类型（声明通知用）
const (
	BetTruco  int32 = 1
	BetEnvido int32 = 2
	BetFlor   int32 = 3
)

// 房间事件
const (
	RoomEventJoin  int32 = 1 // 有人进房
	RoomEventLeave int32 = 2 // 有人离房
	RoomEventStart int32 = 3 // 比赛开始
)

type ConnectReq struct {
	UserID   int64  `json:"userId,omitempty"` // 重连时带上自己的ID
	NickName string `json:"nickName,omitempty"`
}

type ConnectRsp struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg,omitempty"`
	UserID int64  `json:"userId"`
	RoomID int32  `json:"roomId"` // 0表示不在任何房间
}

type CreateRoomReq struct {
	Name string `json:"name"`
}

type CreateRoomRsp struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg,omitempty"`
	RoomID int32  `json:"roomId"`
}

type JoinRoomReq struct {
	RoomID int32 `json:"roomId"`
}

type JoinRoomRsp struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg,omitempty"`
	RoomID int32  `json:"roomId"`
	Seat   int32  `json:"seat"`
}

type LeaveRoomReq struct{}

type LeaveRoomRsp struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

type RoomListReq struct{}

type RoomInfo struct {
	RoomID  int32  `json:"roomId"`
	Name    string `json:"name"`
	Players int32  `json:"players"`
	Playing bool   `json:"playing"`
}

type RoomListRsp struct {
	Code  int32       `json:"code"`
	Msg   string      `json:"msg,omitempty"`
	Rooms []*RoomInfo `json:"rooms"`
}

type StartMatchReq struct{}

type StartMatchRsp struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

type SceneReq struct{}

type SceneRsp struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

type PlayCardReq struct {
	Index int32 `json:"index"` // 手牌索引 0起
}

type PlayCardRsp struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

type BetReq struct{}

type BetRsp struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

type RespondBetReq struct {
	Response int32 `json:"response"`
}

type ForfeitReq struct{}

type ForfeitRsp struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

/*
	推送
*/

// GameStatePush 视角归一化的牌局快照
type GameStatePush struct {
	RoomID int32 `json:"roomId"`
	Seat   int32 `json:"seat"`

	MyScore  int32 `json:"myScore"`
	OppScore int32 `json:"oppScore"`

	Trick  int32 `json:"trick"`
	MyTurn bool  `json:"myTurn"`
	IsMano bool  `json:"isMano"`

	Stake       int32 `json:"stake"`
	TrucoOffer  int32 `json:"trucoOffer,omitempty"`
	EnvidoValue int32 `json:"envidoValue,omitempty"`
	FlorValue   int32 `json:"florValue,omitempty"`

	Hand   []int32 `json:"hand"`
	Played []int32 `json:"played"` // 每墩两格 偶数位自己 奇数位对方

	CanTruco         bool `json:"canTruco"`
	CanEnvido        bool `json:"canEnvido"`
	CanFlor          bool `json:"canFlor"`
	AwaitingResponse bool `json:"awaitingResponse"`
}

// DeclarationPush 喊注发生的轻量通知 先于状态推送
type DeclarationPush struct {
	Bet      int32 `json:"bet"`      // BetTruco/BetEnvido/BetFlor
	Value    int32 `json:"value"`    // 当前档位
	Mine     bool  `json:"mine"`     // 是否自己喊的
	Response int32 `json:"response"` // 应答时带应答码 -1表示首喊
}

// DealResultPush 一手牌的结算
type DealResultPush struct {
	IWon     bool  `json:"iWon"`
	Points   int32 `json:"points"`
	MyScore  int32 `json:"myScore"`
	OppScore int32 `json:"oppScore"`
}

// MatchOverPush 比赛结束
type MatchOverPush struct {
	WinnerID int64 `json:"winnerId"`
	IWon     bool  `json:"iWon"`
	MyScore  int32 `json:"myScore"`
	OppScore int32 `json:"oppScore"`
}

// RoomEventPush 房间人员/状态变化
type RoomEventPush struct {
	Event    int32  `json:"event"`
	UserID   int64  `json:"userId,omitempty"`
	NickName string `json:"nickName,omitempty"`
}
