package model

// View 以某一座位视角归一化的牌局快照 不含对方手牌
type View struct {
	MyScore  int32 `json:"myScore"`
	OppScore int32 `json:"oppScore"`

	Trick  int32 `json:"trick"`  // 当前墩 0..2
	MyTurn bool  `json:"myTurn"` // 是否轮到我
	IsMano bool  `json:"isMano"` // 我是否本手先手

	Stake       int32 `json:"stake"`
	TrucoOffer  int32 `json:"trucoOffer,omitempty"`
	EnvidoValue int32 `json:"envidoValue,omitempty"`
	FlorValue   int32 `json:"florValue,omitempty"`

	Hand []int32 `json:"hand"`
	// 本手已出的牌 每墩两格 偶数位自己 奇数位对方 0为未出
	Played [MaxTricks * 2]int32 `json:"played"`

	CanTruco  bool `json:"canTruco"`
	CanEnvido bool `json:"canEnvido"`
	CanFlor   bool `json:"canFlor"`

	// 对方喊注等待我方应答
	AwaitingResponse bool `json:"awaitingResponse"`
}

// View 生成seat视角的牌局快照 纯投影 不修改状态
func (g *Game) View(seat int32) *View {
	opp := opponent(seat)
	v := &View{
		MyScore:     g.score[seat],
		OppScore:    g.score[opp],
		Trick:       int32(g.trick),
		MyTurn:      g.turn == seat,
		IsMano:      g.mano == seat,
		Stake:       g.stake,
		TrucoOffer:  g.trucoOffer,
		EnvidoValue: g.envidoValue,
		FlorValue:   g.florValue,
		Hand:        g.Hand(seat),
		CanTruco:    g.CanTruco(seat) == OK,
		CanEnvido:   g.CanEnvido(seat) == OK,
		CanFlor:     g.CanFlor(seat) == OK,
	}

	for i := 0; i < MaxTricks; i++ {
		t := &g.tricks[i]
		if t.Played[seat] {
			v.Played[i*2] = t.Cards[seat]
		}
		if t.Played[opp] {
			v.Played[i*2+1] = t.Cards[opp]
		}
	}

	// retruco/vale4会换喊注人 以最后加注者判断应答方
	v.AwaitingResponse = (g.truco.Pending && g.truco.Raiser != seat) ||
		(g.envidoBet.Pending && g.envidoBet.Raiser != seat) ||
		(g.florBet.Pending && g.florBet.Raiser != seat)

	return v
}
