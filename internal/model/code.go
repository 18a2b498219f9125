package model

// ErrCode 引擎校验错误码 0为成功
type ErrCode = int32

const (
	OK              ErrCode = iota
	ErrMatchOver            // 比赛已结束
	ErrNotYourTurn          // 未轮到操作
	ErrBetPending           // 有喊注等待应答
	ErrInvalidIndex         // 手牌索引无效
	ErrBetUsed              // 本手牌已喊过该注
	ErrBetTiming            // 不满足喊注时机
	ErrNoPendingBet         // 没有待应答的喊注
	ErrRespondSelf          // 不能应答自己的喊注
	ErrNoFlor               // 没有flor不能喊
	ErrBadResponse          // 无效应答
)
