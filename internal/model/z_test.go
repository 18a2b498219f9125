package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
	牌型/等级测试
*/

func TestPower(t *testing.T) {
	tests := []struct {
		name string
		card int32
		want int32
	}{
		{"剑A最大", NewCard(SuitEspada, 1), 14},
		{"棍A", NewCard(SuitBasto, 1), 13},
		{"剑7", NewCard(SuitEspada, 7), 12},
		{"金币7", NewCard(SuitOro, 7), 11},
		{"任意3", NewCard(SuitCopa, 3), 10},
		{"任意2", NewCard(SuitOro, 2), 9},
		{"圣杯A", NewCard(SuitCopa, 1), 8},
		{"金币A", NewCard(SuitOro, 1), 8},
		{"12", NewCard(SuitBasto, 12), 7},
		{"11", NewCard(SuitEspada, 11), 6},
		{"10", NewCard(SuitOro, 10), 5},
		{"棍7", NewCard(SuitBasto, 7), 4},
		{"圣杯7", NewCard(SuitCopa, 7), 4},
		{"6", NewCard(SuitEspada, 6), 3},
		{"5", NewCard(SuitOro, 5), 2},
		{"4", NewCard(SuitCopa, 4), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Power(tt.card); got != tt.want {
				t.Errorf("Power(%v) = %v, want %v", CardDesc(tt.card), got, tt.want)
			}
		})
	}
}

// 全序校验：40张牌 仅同档位的牌互为平局
func TestCompareTotalOrder(t *testing.T) {
	deck := NewGameCards().DispatchCards(40)
	if len(deck) != 40 {
		t.Fatalf("deck size = %d, want 40", len(deck))
	}
	for _, a := range deck {
		for _, b := range deck {
			got := Compare(a, b)
			pa, pb := Power(a), Power(b)
			want := int32(0)
			if pa > pb {
				want = 1
			} else if pa < pb {
				want = -1
			}
			if got != want {
				t.Fatalf("Compare(%s,%s) = %d, want %d", CardDesc(a), CardDesc(b), got, want)
			}
		}
	}
}

func TestShuffleKeepsDeckComplete(t *testing.T) {
	g := NewGameCards()
	for round := 0; round < 5; round++ {
		g.Shuffle()
		cards := g.DispatchCards(40)
		seen := make(map[int32]struct{}, 40)
		for _, c := range cards {
			if _, ok := seen[c]; ok {
				t.Fatalf("duplicate card %s after shuffle", CardDesc(c))
			}
			if Number(c) == 8 || Number(c) == 9 {
				t.Fatalf("invalid card %s in deck", CardDesc(c))
			}
			seen[c] = struct{}{}
		}
		if len(seen) != 40 {
			t.Fatalf("deck has %d unique cards, want 40", len(seen))
		}
	}
}

/*
	envido / flor
*/

func TestEnvidoPoints(t *testing.T) {
	tests := []struct {
		name string
		hand []int32
		want int32
	}{
		{
			name: "同花7+3加20",
			hand: []int32{NewCard(SuitEspada, 7), NewCard(SuitEspada, 3), NewCard(SuitOro, 12)},
			want: 30,
		},
		{
			name: "无对子取最大单牌",
			hand: []int32{NewCard(SuitEspada, 5), NewCard(SuitBasto, 2), NewCard(SuitOro, 12)},
			want: 5,
		},
		{
			name: "花牌算0分",
			hand: []int32{NewCard(SuitEspada, 12), NewCard(SuitEspada, 11), NewCard(SuitOro, 10)},
			want: 20,
		},
		{
			name: "三张同花全部计入",
			hand: []int32{NewCard(SuitCopa, 7), NewCard(SuitCopa, 6), NewCard(SuitCopa, 1)},
			want: 34,
		},
		{
			name: "全花牌无对子",
			hand: []int32{NewCard(SuitEspada, 12), NewCard(SuitBasto, 11), NewCard(SuitOro, 10)},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnvidoPoints(tt.hand); got != tt.want {
				t.Errorf("EnvidoPoints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasFlor(t *testing.T) {
	tests := []struct {
		name string
		hand []int32
		want bool
	}{
		{"三张同花", []int32{101, 105, 112}, true},
		{"两张同花", []int32{101, 105, 212}, false},
		{"只有两张", []int32{101, 105}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFlor(tt.hand); got != tt.want {
				t.Errorf("HasFlor(%v) = %v, want %v", tt.hand, got, tt.want)
			}
		})
	}
}

/*
	牌局状态机
*/

// 固定牌序：A=[剑A 剑7 圣杯4] B=[棍A 棍3 金币10]
// A envido=28 B envido=24 双方无flor
var fixedDeck = []int32{
	101, 107, 404,
	201, 203, 310,
}

func newFixedGame() *Game {
	return NewGame(NewGameCardsFrom(fixedDeck))
}

func TestNewGameDeal(t *testing.T) {
	g := newFixedGame()
	assert.Equal(t, []int32{101, 107, 404}, g.Hand(SeatA))
	assert.Equal(t, []int32{201, 203, 310}, g.Hand(SeatB))
	assert.Equal(t, int32(28), g.HandEnvido(SeatA))
	assert.Equal(t, int32(24), g.HandEnvido(SeatB))
	assert.False(t, g.HandFlor(SeatA))
	assert.False(t, g.HandFlor(SeatB))
	assert.Equal(t, SeatA, g.Mano())
	assert.Equal(t, SeatA, g.Turn())
	assert.Equal(t, int32(1), g.Stake())
}

func TestPlayCardGuards(t *testing.T) {
	g := newFixedGame()

	_, code := g.PlayCard(SeatB, 0)
	assert.Equal(t, ErrNotYourTurn, code)

	_, code = g.PlayCard(SeatA, 3)
	assert.Equal(t, ErrInvalidIndex, code)

	require.Equal(t, OK, g.Truco(SeatA))
	_, code = g.PlayCard(SeatA, 0)
	assert.Equal(t, ErrBetPending, code)
}

func TestTrickResolution(t *testing.T) {
	g := newFixedGame()

	// A出剑A(14) B出棍A(13) A胜第一墩
	ev, code := g.PlayCard(SeatA, 0)
	require.Equal(t, OK, code)
	assert.False(t, ev.DealEnded)
	assert.Equal(t, SeatB, g.Turn())

	ev, code = g.PlayCard(SeatB, 0)
	require.Equal(t, OK, code)
	assert.False(t, ev.DealEnded)
	assert.Equal(t, SeatA, g.TrickAt(0).Winner)
	assert.Equal(t, SeatA, g.Turn())

	// A出剑7(12) B出棍3(10) A两胜 本手结束得1分 先手换B
	ev, code = g.PlayCard(SeatA, 0)
	require.Equal(t, OK, code)
	ev, code = g.PlayCard(SeatB, 0)
	require.Equal(t, OK, code)
	assert.True(t, ev.DealEnded)
	assert.Equal(t, SeatA, ev.PointsTo)
	assert.Equal(t, int32(1), ev.Points)
	assert.Equal(t, int32(1), g.Score(SeatA))
	assert.False(t, ev.MatchEnded)

	// 新一手：先手互换 重新发牌
	assert.Equal(t, SeatB, g.Mano())
	assert.Equal(t, SeatB, g.Turn())
	assert.Len(t, g.Hand(SeatA), 3)
	assert.Equal(t, int32(1), g.Stake())
}

func TestTrickTieManoLeads(t *testing.T) {
	// A=[剑3 剑2 剑4](flor) B=[棍3 圣杯2 圣杯4]
	deck := []int32{103, 102, 104, 203, 402, 404}
	g := NewGame(NewGameCardsFrom(deck))

	// 第一墩 3对3平局 先手A继续领出
	_, code := g.PlayCard(SeatA, 0)
	require.Equal(t, OK, code)
	_, code = g.PlayCard(SeatB, 0)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatTie, g.TrickAt(0).Winner)
	assert.Equal(t, SeatA, g.Turn())

	// 第二墩 剑2(9)胜圣杯2(9)? 平局 再平
	_, code = g.PlayCard(SeatA, 0)
	require.Equal(t, OK, code)
	ev, code := g.PlayCard(SeatB, 0)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatTie, g.TrickAt(1).Winner)
	assert.False(t, ev.DealEnded)

	// 第三墩 剑4对圣杯4再平 全平 先手A赢本手
	_, code = g.PlayCard(SeatA, 0)
	require.Equal(t, OK, code)
	ev, code = g.PlayCard(SeatB, 0)
	require.Equal(t, OK, code)
	assert.True(t, ev.DealEnded)
	assert.Equal(t, SeatA, ev.PointsTo)
	assert.Equal(t, int32(1), g.Score(SeatA))
}

func TestOneWinOneTieEndsDeal(t *testing.T) {
	// A=[剑A 剑3 剑2](flor但不喊) B=[棍A 棍3 圣杯2]
	deck := []int32{101, 103, 102, 201, 203, 402}
	g := NewGame(NewGameCardsFrom(deck))

	// 第一墩 A剑A胜棍A
	_, _ = g.PlayCard(SeatA, 0)
	_, _ = g.PlayCard(SeatB, 0)
	assert.Equal(t, SeatA, g.TrickAt(0).Winner)

	// 第二墩 3对3平 一胜一平 两墩定胜负
	_, _ = g.PlayCard(SeatA, 0)
	ev, code := g.PlayCard(SeatB, 0)
	require.Equal(t, OK, code)
	assert.True(t, ev.DealEnded)
	assert.Equal(t, SeatA, ev.PointsTo)
}

/*
	truco
*/

func TestTrucoDeclineAwardsOne(t *testing.T) {
	g := newFixedGame()

	require.Equal(t, OK, g.Truco(SeatA))
	assert.True(t, g.TrucoPending())
	assert.Equal(t, int32(2), g.TrucoOffer())

	// 不能应答自己的喊注
	_, code := g.RespondTruco(SeatA, Decline)
	assert.Equal(t, ErrRespondSelf, code)

	ev, code := g.RespondTruco(SeatB, Decline)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatA, ev.PointsTo)
	assert.Equal(t, int32(1), ev.Points)
	assert.True(t, ev.DealEnded)
	assert.Equal(t, int32(1), g.Score(SeatA))

	// 本手结束 已经开了新一手
	assert.Equal(t, SeatB, g.Mano())
	assert.False(t, g.TrucoPending())
}

func TestTrucoAcceptRaisesStake(t *testing.T) {
	g := newFixedGame()

	require.Equal(t, OK, g.Truco(SeatA))
	_, code := g.RespondTruco(SeatB, Accept)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(2), g.Stake())
	assert.False(t, g.TrucoPending())

	// 接受后本手内双方都不能再喊 升档只能在应答时加注
	assert.Equal(t, ErrBetUsed, g.Truco(SeatB))
	assert.Equal(t, ErrBetUsed, g.Truco(SeatA))
}

func TestTrucoEscalatesOnlyViaRaiseChain(t *testing.T) {
	g := newFixedGame()

	// 档位3/4全部走应答链 2 -> retruco 3 -> vale4
	require.Equal(t, OK, g.Truco(SeatA))
	_, code := g.RespondTruco(SeatB, RaiseA)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(3), g.TrucoOffer())

	_, code = g.RespondTruco(SeatA, RaiseB)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(4), g.TrucoOffer())

	_, code = g.RespondTruco(SeatB, Accept)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(4), g.Stake())

	assert.Equal(t, ErrBetUsed, g.Truco(SeatB))
}

func TestTrucoRaiseChain(t *testing.T) {
	g := newFixedGame()

	require.Equal(t, OK, g.Truco(SeatA))
	// B加注retruco 档位3 轮A应答
	_, code := g.RespondTruco(SeatB, RaiseA)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(3), g.TrucoOffer())

	// A拒绝 B得2分
	ev, code := g.RespondTruco(SeatA, Decline)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatB, ev.PointsTo)
	assert.Equal(t, int32(2), ev.Points)
	assert.Equal(t, int32(2), g.Score(SeatB))
}

func TestTrucoRaiseToFourAccept(t *testing.T) {
	g := newFixedGame()

	require.Equal(t, OK, g.Truco(SeatA))
	_, code := g.RespondTruco(SeatB, RaiseB)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(4), g.TrucoOffer())

	_, code = g.RespondTruco(SeatA, Accept)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(4), g.Stake())
}

/*
	envido
*/

func TestEnvidoAccept(t *testing.T) {
	g := newFixedGame()

	require.Equal(t, OK, g.Envido(SeatA))
	assert.Equal(t, int32(2), g.EnvidoValue())

	ev, code := g.RespondEnvido(SeatB, Accept)
	require.Equal(t, OK, code)
	// A envido 28 > B 24
	assert.Equal(t, SeatA, ev.PointsTo)
	assert.Equal(t, int32(2), ev.Points)
	assert.Equal(t, int32(2), g.Score(SeatA))
	assert.False(t, ev.DealEnded) // envido不结束本手

	// 本手内不能再喊envido
	assert.Equal(t, ErrBetUsed, g.Envido(SeatB))
}

func TestEnvidoDecline(t *testing.T) {
	g := newFixedGame()

	require.Equal(t, OK, g.Envido(SeatA))
	ev, code := g.RespondEnvido(SeatB, Decline)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatA, ev.PointsTo)
	assert.Equal(t, int32(1), ev.Points)
}

func TestEnvidoTieManoWins(t *testing.T) {
	// 双方envido相同 先手胜
	// A=[剑7 剑3 圣杯12]=30 B=[棍7 棍3 金币12]=30
	deck := []int32{107, 103, 412, 207, 203, 312}
	g := NewGame(NewGameCardsFrom(deck))
	require.Equal(t, int32(30), g.HandEnvido(SeatA))
	require.Equal(t, int32(30), g.HandEnvido(SeatB))

	require.Equal(t, OK, g.Envido(SeatB))
	ev, code := g.RespondEnvido(SeatA, Accept)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatA, ev.PointsTo) // A是先手
}

func TestEnvidoFaltaPayout(t *testing.T) {
	g := newFixedGame()
	g.score[SeatB] = 10

	// B喊envido A加注到falta B接受
	// falta分值 = 15 - 对方(B)当前分10 - 1 = 4 归envido高者A
	require.Equal(t, OK, g.Envido(SeatB))
	_, code := g.RespondEnvido(SeatA, RaiseB)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(4), g.EnvidoValue())

	ev, code := g.RespondEnvido(SeatB, Accept)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatA, ev.PointsTo)
	assert.Equal(t, int32(4), ev.Points)
	assert.Equal(t, int32(4), g.Score(SeatA))
}

func TestEnvidoFaltaFloorsAtOne(t *testing.T) {
	g := newFixedGame()
	g.score[SeatB] = 14

	// B喊envido A加注falta B接受
	// raiser=A 对方B已14分 15-14-1=0 保底1分
	require.Equal(t, OK, g.Envido(SeatB))
	_, code := g.RespondEnvido(SeatA, RaiseB)
	require.Equal(t, OK, code)

	ev, code := g.RespondEnvido(SeatB, Accept)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(1), ev.Points)
	assert.Equal(t, SeatA, ev.PointsTo) // A envido 28 > 24
	assert.Equal(t, int32(1), g.Score(SeatA))
}

func TestEnvidoOnlyFirstTrick(t *testing.T) {
	g := newFixedGame()

	// 双方各出一张后进入第二墩 envido不可喊
	_, _ = g.PlayCard(SeatA, 2) // 圣杯4
	_, _ = g.PlayCard(SeatB, 2) // 金币10 B胜
	assert.Equal(t, ErrBetTiming, g.Envido(SeatB))
}

/*
	flor
*/

func TestFlorAutoAward(t *testing.T) {
	// A三张剑同花
	deck := []int32{101, 105, 112, 201, 203, 310}
	g := NewGame(NewGameCardsFrom(deck))
	require.True(t, g.HandFlor(SeatA))

	// B无flor不能喊
	assert.Equal(t, ErrNoFlor, g.CanFlor(SeatB))

	ev, code := g.Flor(SeatA)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatA, ev.PointsTo)
	assert.Equal(t, int32(3), ev.Points)
	assert.Equal(t, int32(3), g.Score(SeatA))
	assert.False(t, ev.DealEnded)

	// 本手内不能再喊
	_, code = g.Flor(SeatA)
	assert.Equal(t, ErrBetUsed, code)
}

func TestFlorBlockedWhileEnvidoPending(t *testing.T) {
	deck := []int32{101, 105, 112, 201, 203, 310}
	g := NewGame(NewGameCardsFrom(deck))

	require.Equal(t, OK, g.Envido(SeatB))
	require.True(t, g.EnvidoPending())

	// A虽持flor 也要等envido应答完
	assert.Equal(t, ErrBetPending, g.CanFlor(SeatA))
	_, code := g.Flor(SeatA)
	assert.Equal(t, ErrBetPending, code)

	// 应答后即可喊
	_, code = g.RespondEnvido(SeatA, Decline)
	require.Equal(t, OK, code)
	ev, code := g.Flor(SeatA)
	require.Equal(t, OK, code)
	assert.Equal(t, int32(3), ev.Points)
}

func TestRespondFlorAlwaysPaysCaller(t *testing.T) {
	deck := []int32{101, 105, 112, 201, 203, 310}
	g := NewGame(NewGameCardsFrom(deck))

	// 正常流程flor无应答 构造应答态验证两种应答同样给喊注方3分
	for _, resp := range []Response{Accept, Decline} {
		g.florBet = Bet{Called: true, Pending: true, Raiser: SeatA}
		ev, code := g.RespondFlor(SeatB, resp)
		require.Equal(t, OK, code)
		assert.Equal(t, SeatA, ev.PointsTo)
		assert.Equal(t, int32(3), ev.Points)
	}
	assert.Equal(t, int32(6), g.Score(SeatA))
}

/*
	认输 / 终局
*/

func TestForfeit(t *testing.T) {
	g := newFixedGame()

	require.Equal(t, OK, g.Truco(SeatA))
	_, code := g.RespondTruco(SeatB, Accept)
	require.Equal(t, OK, code)

	// A认输 B得当前墩注2分
	ev, code := g.Forfeit(SeatA)
	require.Equal(t, OK, code)
	assert.Equal(t, SeatB, ev.PointsTo)
	assert.Equal(t, int32(2), ev.Points)
	assert.True(t, ev.DealEnded)
	assert.Equal(t, int32(2), g.Score(SeatB))
}

func TestForfeitBlockedWhilePending(t *testing.T) {
	g := newFixedGame()
	require.Equal(t, OK, g.Truco(SeatA))
	_, code := g.Forfeit(SeatB)
	assert.Equal(t, ErrBetPending, code)
}

func TestMatchOverBlocksActions(t *testing.T) {
	g := newFixedGame()
	g.score[SeatA] = 14

	require.Equal(t, OK, g.Truco(SeatA))
	ev, code := g.RespondTruco(SeatB, Decline)
	require.Equal(t, OK, code)
	assert.True(t, ev.MatchEnded)
	assert.True(t, g.Over())
	assert.Equal(t, SeatA, g.MatchWinner())

	_, code = g.PlayCard(SeatA, 0)
	assert.Equal(t, ErrMatchOver, code)
	assert.Equal(t, ErrMatchOver, g.Truco(SeatB))
}

/*
	视角投影
*/

func TestViewPerspective(t *testing.T) {
	g := newFixedGame()
	g.score[SeatA], g.score[SeatB] = 3, 7

	va := g.View(SeatA)
	vb := g.View(SeatB)

	assert.Equal(t, int32(3), va.MyScore)
	assert.Equal(t, int32(7), va.OppScore)
	assert.Equal(t, int32(7), vb.MyScore)
	assert.Equal(t, int32(3), vb.OppScore)

	assert.True(t, va.MyTurn)
	assert.False(t, vb.MyTurn)
	assert.True(t, va.IsMano)
	assert.False(t, vb.IsMano)

	assert.Equal(t, []int32{101, 107, 404}, va.Hand)
	assert.Equal(t, []int32{201, 203, 310}, vb.Hand)
}

func TestViewPlayedCardsAndAwaiting(t *testing.T) {
	g := newFixedGame()

	_, code := g.PlayCard(SeatA, 0)
	require.Equal(t, OK, code)

	va, vb := g.View(SeatA), g.View(SeatB)
	// 偶数位自己的牌 奇数位对方的牌
	assert.Equal(t, int32(101), va.Played[0])
	assert.Equal(t, int32(0), va.Played[1])
	assert.Equal(t, int32(0), vb.Played[0])
	assert.Equal(t, int32(101), vb.Played[1])

	// B喊truco后 只有A看到等待应答
	require.Equal(t, OK, g.Truco(SeatB))
	va, vb = g.View(SeatA), g.View(SeatB)
	assert.True(t, va.AwaitingResponse)
	assert.False(t, vb.AwaitingResponse)
	assert.False(t, va.CanTruco)
	assert.False(t, vb.CanTruco)

	// retruco换边后 等待应答的是B
	_, code = g.RespondTruco(SeatA, RaiseA)
	require.Equal(t, OK, code)
	va, vb = g.View(SeatA), g.View(SeatB)
	assert.False(t, va.AwaitingResponse)
	assert.True(t, vb.AwaitingResponse)
}

/*
	端到端：固定牌序 全流程对照手工计算
*/

func TestFullMatchTrace(t *testing.T) {
	g := newFixedGame()

	// 第1手 A先手
	// envido: A喊 B接受 A28>B24 A+2
	require.Equal(t, OK, g.Envido(SeatA))
	ev, code := g.RespondEnvido(SeatB, Accept)
	require.Equal(t, OK, code)
	require.Equal(t, int32(2), g.Score(SeatA))

	// truco: A喊 B接受 墩注2
	require.Equal(t, OK, g.Truco(SeatA))
	_, code = g.RespondTruco(SeatB, Accept)
	require.Equal(t, OK, code)
	require.Equal(t, int32(2), g.Stake())

	// 两墩全胜 A+2 比分 4:0
	_, _ = g.PlayCard(SeatA, 0) // 剑A
	_, _ = g.PlayCard(SeatB, 0) // 棍A
	_, _ = g.PlayCard(SeatA, 0) // 剑7
	ev, code = g.PlayCard(SeatB, 0) // 棍3
	require.Equal(t, OK, code)
	require.True(t, ev.DealEnded)
	require.Equal(t, int32(4), g.Score(SeatA))
	require.Equal(t, int32(0), g.Score(SeatB))

	// 第2手 B先手（固定牌序重发同样的牌）
	require.Equal(t, SeatB, g.Mano())
	// truco: B喊 A拒绝 B+1 比分 4:1
	require.Equal(t, OK, g.Truco(SeatB))
	ev, code = g.RespondTruco(SeatA, Decline)
	require.Equal(t, OK, code)
	require.Equal(t, int32(1), g.Score(SeatB))

	// 第3手 A先手
	require.Equal(t, SeatA, g.Mano())
	// envido: A喊 B加注falta A接受
	// falta = 15 - A当前分4 - 1 = 10 A envido高 A+10 比分 14:1
	require.Equal(t, OK, g.Envido(SeatA))
	_, code = g.RespondEnvido(SeatB, RaiseB)
	require.Equal(t, OK, code)
	ev, code = g.RespondEnvido(SeatA, Accept)
	require.Equal(t, OK, code)
	require.Equal(t, int32(10), ev.Points)
	require.Equal(t, int32(14), g.Score(SeatA))

	// truco: A喊 B拒绝 A+1 达到15 比赛结束 A胜
	require.Equal(t, OK, g.Truco(SeatA))
	ev, code = g.RespondTruco(SeatB, Decline)
	require.Equal(t, OK, code)
	assert.True(t, ev.MatchEnded)
	assert.True(t, g.Over())
	assert.Equal(t, SeatA, g.MatchWinner())
	assert.Equal(t, int32(15), g.Score(SeatA))
	assert.Equal(t, int32(1), g.Score(SeatB))
}
