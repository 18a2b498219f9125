package model

import (
	"fmt"

	"github.com/yola1107/kratos/v2/library/xgo"
)

const SuitMask = 100

// 四个花色 西班牙牌
const (
	SuitEspada int32 = iota + 1 // 剑
	SuitBasto                   // 棍
	SuitOro                     // 金币
	SuitCopa                    // 圣杯
)

// 生成一副牌 40张（没有8和9）
var oneDeck = []int32{
	101, 102, 103, 104, 105, 106, 107, 110, 111, 112, // Espada 10
	201, 202, 203, 204, 205, 206, 207, 210, 211, 212, // Basto 10
	301, 302, 303, 304, 305, 306, 307, 310, 311, 312, // Oro 10
	401, 402, 403, 404, 405, 406, 407, 410, 411, 412, // Copa 10
}

// NewCard 创建牌，编码格式：花色*100 + 点数
func NewCard(suit, number int32) int32 {
	return suit*SuitMask + number
}

// Suit 返回花色
func Suit(card int32) int32 {
	return card / SuitMask
}

// Number 返回点数
func Number(card int32) int32 {
	return card % SuitMask
}

func CardDesc(card int32) string {
	return fmt.Sprintf("%d:%d", Suit(card), Number(card))
}

/*
	GameCards 管理牌堆
*/

type GameCards struct {
	index int
	fixed bool // 固定牌序 不洗牌
	cards []int32
}

// NewGameCards 初始化牌堆
func NewGameCards() *GameCards {
	cards := make([]int32, len(oneDeck))
	copy(cards, oneDeck)
	return &GameCards{cards: cards}
}

// NewGameCardsFrom 以固定牌序初始化牌堆（复盘/测试用）
func NewGameCardsFrom(cards []int32) *GameCards {
	return &GameCards{fixed: true, cards: xgo.SliceCopy(cards)}
}

// Shuffle 洗牌并重置索引
func (g *GameCards) Shuffle() {
	g.index = 0
	if g.fixed {
		return
	}
	for i := 0; i < 3; i++ {
		xgo.SliceShuffle(g.cards)
	}
}

// DispatchCards 发牌，返回 n 张牌
func (g *GameCards) DispatchCards(n int) []int32 {
	end := g.index + n
	if end > len(g.cards) {
		end = len(g.cards)
	}
	cards := xgo.SliceCopy(g.cards[g.index:end])
	g.index = end
	return cards
}

// GetCards 获取剩余牌堆
func (g *GameCards) GetCards() []int32 {
	return xgo.SliceCopy(g.cards[g.index:])
}

// GetCardNum 返回剩余牌数
func (g *GameCards) GetCardNum() int32 {
	return int32(len(g.cards) - g.index)
}
