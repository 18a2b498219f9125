package model

const (
	SeatA    int32 = 0  // 座位A
	SeatB    int32 = 1  // 座位B
	SeatNone int32 = -1 // 无
	SeatTie  int32 = 2  // 平局

	HandSize      = 3  // 每人发三张
	MaxTricks     = 3  // 每手牌三墩
	VictoryPoints = 15 // 胜利分数
)

// Response 喊注应答
type Response int32

const (
	Accept Response = iota // 接受
	Decline                // 拒绝
	RaiseA                 // 加注一档 retruco / real envido
	RaiseB                 // 加注到顶 vale cuatro / falta envido
)

// Trick 一墩：双方各出一张
type Trick struct {
	Cards  [2]int32
	Played [2]bool
	Winner int32 // SeatNone未结算 SeatTie平
}

// Bet 喊注状态
type Bet struct {
	Called  bool  // 本手牌是否已喊过
	Pending bool  // 是否等待应答
	Raiser  int32 // 最后喊/加注的座位
}

// Event 一次操作引发的结算
type Event struct {
	Points     int32 // 结算分数
	PointsTo   int32 // 得分座位 SeatNone表示无结算
	DealEnded  bool  // 本手牌是否结束
	MatchEnded bool  // 比赛是否结束
}

// Game 一场两人比赛的完整状态机
type Game struct {
	cards *GameCards

	hands  [2][]int32 // 手牌
	envido [2]int32   // 缓存envido点数
	flor   [2]bool    // 缓存是否有flor

	tricks [3]Trick
	trick  int   // 当前墩索引
	mano   int32 // 本手牌先手座位
	turn   int32 // 当前操作座位

	score [2]int32 // 累计分数

	stake       int32 // 当前墩注（已接受的）
	trucoOffer  int32 // truco待应答的档位
	envidoValue int32 // envido档位 2/3/4
	florValue   int32 // flor固定3

	truco     Bet
	envidoBet Bet
	florBet   Bet

	over   bool
	winner int32
}

// NewGame 创建比赛并发第一手牌
func NewGame(cards *GameCards) *Game {
	g := &Game{
		cards:  cards,
		mano:   SeatA,
		turn:   SeatA,
		stake:  1,
		winner: SeatNone,
	}
	g.dealCards()
	return g
}

func opponent(seat int32) int32 { return 1 - seat }

func (g *Game) dealCards() {
	g.cards.Shuffle()
	for seat := SeatA; seat <= SeatB; seat++ {
		g.hands[seat] = g.cards.DispatchCards(HandSize)
		g.envido[seat] = EnvidoPoints(g.hands[seat])
		g.flor[seat] = HasFlor(g.hands[seat])
	}
}

// newDeal 开新一手牌：先手互换 状态重置 重新发牌
func (g *Game) newDeal() {
	g.tricks = [3]Trick{}
	for i := range g.tricks {
		g.tricks[i].Winner = SeatNone
	}
	g.trick = 0
	g.stake = 1
	g.trucoOffer = 0
	g.envidoValue = 0
	g.florValue = 0
	g.truco = Bet{Raiser: SeatNone}
	g.envidoBet = Bet{Raiser: SeatNone}
	g.florBet = Bet{Raiser: SeatNone}

	g.mano = opponent(g.mano)
	g.turn = g.mano
	g.dealCards()
}

func (g *Game) betPending() bool {
	return g.truco.Pending || g.envidoBet.Pending || g.florBet.Pending
}

// award 计分并检查比赛是否结束
func (g *Game) award(seat, points int32) bool {
	g.score[seat] += points
	if g.score[seat] >= VictoryPoints {
		g.over = true
		g.winner = seat
	}
	return g.over
}

/*
	出牌
*/

// CanPlayCard 校验是否可出牌
func (g *Game) CanPlayCard(seat int32, index int) ErrCode {
	switch {
	case g.over:
		return ErrMatchOver
	case g.turn != seat:
		return ErrNotYourTurn
	case g.betPending():
		return ErrBetPending
	case index < 0 || index >= len(g.hands[seat]):
		return ErrInvalidIndex
	}
	return OK
}

// PlayCard 出牌。双方都已出则结算本墩
func (g *Game) PlayCard(seat int32, index int) (Event, ErrCode) {
	if code := g.CanPlayCard(seat, index); code != OK {
		return Event{PointsTo: SeatNone}, code
	}

	card := g.hands[seat][index]
	g.hands[seat] = append(g.hands[seat][:index], g.hands[seat][index+1:]...)

	t := &g.tricks[g.trick]
	t.Cards[seat] = card
	t.Played[seat] = true

	if t.Played[SeatA] && t.Played[SeatB] {
		return g.resolveTrick(), OK
	}
	g.turn = opponent(seat)
	return Event{PointsTo: SeatNone}, OK
}

// resolveTrick 结算当前墩并推进牌局
func (g *Game) resolveTrick() Event {
	t := &g.tricks[g.trick]
	switch Compare(t.Cards[SeatA], t.Cards[SeatB]) {
	case 1:
		t.Winner = SeatA
		g.turn = SeatA
	case -1:
		t.Winner = SeatB
		g.turn = SeatB
	default:
		t.Winner = SeatTie
		g.turn = g.mano // 平局先手先出
	}
	g.trick++

	if g.trick >= MaxTricks {
		return g.finishDeal()
	}

	winsA, winsB, ties := g.countTricks()
	switch {
	case winsA >= 2 || winsB >= 2:
		return g.finishDeal()
	case g.trick == 2 && ties == 1 && (winsA == 1 || winsB == 1):
		// 一胜一平 两墩即可定胜负
		return g.finishDeal()
	}
	return Event{PointsTo: SeatNone}
}

func (g *Game) countTricks() (winsA, winsB, ties int) {
	for i := 0; i < g.trick; i++ {
		switch g.tricks[i].Winner {
		case SeatA:
			winsA++
		case SeatB:
			winsB++
		case SeatTie:
			ties++
		}
	}
	return
}

// finishDeal 本手牌结束 胜者得当前墩注 平局先手胜
func (g *Game) finishDeal() Event {
	winsA, winsB, _ := g.countTricks()
	winner := g.mano
	if winsA > winsB {
		winner = SeatA
	} else if winsB > winsA {
		winner = SeatB
	}
	return g.settleDeal(winner, g.stake)
}

func (g *Game) settleDeal(winner, points int32) Event {
	ev := Event{Points: points, PointsTo: winner, DealEnded: true}
	if g.award(winner, points) {
		ev.MatchEnded = true
		return ev
	}
	g.newDeal()
	return ev
}

/*
	truco 墩注升级 1->2->3->4
*/

// canDeclareAt 喊注时机：轮到自己 或 对方先出了牌
func (g *Game) canDeclareAt(seat int32) bool {
	t := &g.tricks[g.trick]
	return !(t.Played[seat] && !t.Played[opponent(seat)])
}

// CanTruco 校验能否喊truco 本手只能喊一次 升档走加注链
func (g *Game) CanTruco(seat int32) ErrCode {
	switch {
	case g.over:
		return ErrMatchOver
	case g.truco.Called:
		return ErrBetUsed
	case g.betPending():
		return ErrBetPending
	case g.trick >= MaxTricks:
		return ErrBetTiming
	case !g.canDeclareAt(seat):
		return ErrBetTiming
	}
	return OK
}

// Truco 喊truco 墩注档位2待应答
func (g *Game) Truco(seat int32) ErrCode {
	if code := g.CanTruco(seat); code != OK {
		return code
	}
	g.truco.Called = true
	g.truco.Pending = true
	g.truco.Raiser = seat
	g.trucoOffer = 2
	return OK
}

// RespondTruco 应答truco：接受升档 拒绝送分并结束本手 加注换边
func (g *Game) RespondTruco(seat int32, resp Response) (Event, ErrCode) {
	ev := Event{PointsTo: SeatNone}
	switch {
	case g.over:
		return ev, ErrMatchOver
	case !g.truco.Pending:
		return ev, ErrNoPendingBet
	case seat == g.truco.Raiser:
		return ev, ErrRespondSelf
	}

	switch resp {
	case Accept:
		g.truco.Pending = false
		g.stake = g.trucoOffer
		return ev, OK

	case Decline:
		// 拒绝时喊注方得上一档分数 truco给1 retruco给2 vale4给3
		g.truco.Pending = false
		raiser, points := g.truco.Raiser, g.trucoOffer-1
		ev = Event{Points: points, PointsTo: raiser, DealEnded: true}
		if g.award(raiser, points) {
			ev.MatchEnded = true
			return ev, OK
		}
		g.newDeal()
		return ev, OK

	case RaiseA:
		if g.trucoOffer >= 3 {
			return ev, ErrBadResponse
		}
		g.trucoOffer = 3
		g.truco.Raiser = seat
		return ev, OK

	case RaiseB:
		if g.trucoOffer >= 4 {
			return ev, ErrBadResponse
		}
		g.trucoOffer = 4
		g.truco.Raiser = seat
		return ev, OK
	}
	return ev, ErrBadResponse
}

/*
	envido 手牌点数比拼 2/3/4档 第四档为falta
*/

// canDeclareFirstTrick envido与flor只能在第一墩双方都未出完牌前喊
func (g *Game) canDeclareFirstTrick(seat int32) bool {
	if g.trick > 0 {
		return false
	}
	t := &g.tricks[0]
	if t.Played[SeatA] && t.Played[SeatB] {
		return false
	}
	return g.canDeclareAt(seat)
}

// CanEnvido 校验能否喊envido
func (g *Game) CanEnvido(seat int32) ErrCode {
	switch {
	case g.over:
		return ErrMatchOver
	case g.envidoBet.Called:
		return ErrBetUsed
	case g.betPending():
		return ErrBetPending
	case !g.canDeclareFirstTrick(seat):
		return ErrBetTiming
	}
	return OK
}

// Envido 喊envido 基础档位2
func (g *Game) Envido(seat int32) ErrCode {
	if code := g.CanEnvido(seat); code != OK {
		return code
	}
	g.envidoBet.Called = true
	g.envidoBet.Pending = true
	g.envidoBet.Raiser = seat
	g.envidoValue = 2
	return OK
}

// faltaPoints falta envido分值：15减对方当前分再减1 至少1分
func (g *Game) faltaPoints(raiser int32) int32 {
	points := VictoryPoints - g.score[opponent(raiser)] - 1
	if points < 1 {
		points = 1
	}
	return points
}

// RespondEnvido 应答envido。接受比点 拒绝送分 两者都终结本手的envido
func (g *Game) RespondEnvido(seat int32, resp Response) (Event, ErrCode) {
	ev := Event{PointsTo: SeatNone}
	switch {
	case g.over:
		return ev, ErrMatchOver
	case !g.envidoBet.Pending:
		return ev, ErrNoPendingBet
	case seat == g.envidoBet.Raiser:
		return ev, ErrRespondSelf
	}

	switch resp {
	case Accept:
		g.envidoBet.Pending = false
		points := g.envidoValue
		if g.envidoValue == 4 {
			points = g.faltaPoints(g.envidoBet.Raiser)
		}
		// 比较缓存的envido点数 平局先手胜
		winner := g.mano
		if g.envido[SeatA] > g.envido[SeatB] {
			winner = SeatA
		} else if g.envido[SeatB] > g.envido[SeatA] {
			winner = SeatB
		}
		ev = Event{Points: points, PointsTo: winner}
		ev.MatchEnded = g.award(winner, points)
		return ev, OK

	case Decline:
		g.envidoBet.Pending = false
		raiser, points := g.envidoBet.Raiser, g.envidoValue-1
		ev = Event{Points: points, PointsTo: raiser}
		ev.MatchEnded = g.award(raiser, points)
		return ev, OK

	case RaiseA:
		if g.envidoValue >= 3 {
			return ev, ErrBadResponse
		}
		g.envidoValue = 3
		g.envidoBet.Raiser = seat
		return ev, OK

	case RaiseB:
		if g.envidoValue >= 4 {
			return ev, ErrBadResponse
		}
		g.envidoValue = 4
		g.envidoBet.Raiser = seat
		return ev, OK
	}
	return ev, ErrBadResponse
}

/*
	flor 三张同花 喊出即得固定3分
*/

// CanFlor 校验能否喊flor
func (g *Game) CanFlor(seat int32) ErrCode {
	switch {
	case g.over:
		return ErrMatchOver
	case g.florBet.Called:
		return ErrBetUsed
	case g.betPending():
		return ErrBetPending
	case !g.canDeclareFirstTrick(seat):
		return ErrBetTiming
	case !g.flor[seat]:
		return ErrNoFlor
	}
	return OK
}

// Flor 喊flor 直接得3分 无需对方应答
func (g *Game) Flor(seat int32) (Event, ErrCode) {
	ev := Event{PointsTo: SeatNone}
	if code := g.CanFlor(seat); code != OK {
		return ev, code
	}
	g.florBet.Called = true
	g.florBet.Raiser = seat
	g.florValue = 3
	ev = Event{Points: 3, PointsTo: seat}
	ev.MatchEnded = g.award(seat, 3)
	return ev, OK
}

// RespondFlor 应答flor。无论接受或拒绝都是喊注方得3分
func (g *Game) RespondFlor(seat int32, resp Response) (Event, ErrCode) {
	ev := Event{PointsTo: SeatNone}
	switch {
	case g.over:
		return ev, ErrMatchOver
	case !g.florBet.Pending:
		return ev, ErrNoPendingBet
	case seat == g.florBet.Raiser:
		return ev, ErrRespondSelf
	}

	switch resp {
	case Accept, Decline:
		g.florBet.Pending = false
		raiser := g.florBet.Raiser
		ev = Event{Points: 3, PointsTo: raiser}
		ev.MatchEnded = g.award(raiser, 3)
		return ev, OK
	}
	return ev, ErrBadResponse
}

/*
	认输
*/

// CanForfeit 校验能否认输（去牌堆）
func (g *Game) CanForfeit(int32) ErrCode {
	switch {
	case g.over:
		return ErrMatchOver
	case g.betPending():
		return ErrBetPending
	}
	return OK
}

// Forfeit 认输 对方得当前墩注 本手结束
func (g *Game) Forfeit(seat int32) (Event, ErrCode) {
	if code := g.CanForfeit(seat); code != OK {
		return Event{PointsTo: SeatNone}, code
	}
	return g.settleDeal(opponent(seat), g.stake), OK
}

/*
	只读访问
*/

func (g *Game) Over() bool          { return g.over }
func (g *Game) MatchWinner() int32  { return g.winner }
func (g *Game) Mano() int32         { return g.mano }
func (g *Game) Turn() int32         { return g.turn }
func (g *Game) Stake() int32        { return g.stake }
func (g *Game) TrickIndex() int     { return g.trick }
func (g *Game) TrucoOffer() int32   { return g.trucoOffer }
func (g *Game) EnvidoValue() int32  { return g.envidoValue }
func (g *Game) FlorValue() int32    { return g.florValue }
func (g *Game) TrucoPending() bool  { return g.truco.Pending }
func (g *Game) EnvidoPending() bool { return g.envidoBet.Pending }
func (g *Game) FlorPending() bool   { return g.florBet.Pending }

func (g *Game) Score(seat int32) int32 { return g.score[seat] }

func (g *Game) Hand(seat int32) []int32 {
	hand := make([]int32, len(g.hands[seat]))
	copy(hand, g.hands[seat])
	return hand
}

func (g *Game) HandEnvido(seat int32) int32 { return g.envido[seat] }
func (g *Game) HandFlor(seat int32) bool    { return g.flor[seat] }

func (g *Game) TrickAt(i int) Trick { return g.tricks[i] }
