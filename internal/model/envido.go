package model

// envidoValue envido计分值 8/9不存在 10 11 12为0分
func envidoValue(card int32) int32 {
	if n := Number(card); n <= 7 {
		return n
	}
	return 0
}

// EnvidoPoints 计算一手牌的envido点数：
// 同花色>=2张时为该花色牌值和+20，取各花色最大值；
// 无同花色对子时取单张最大牌值。
func EnvidoPoints(hand []int32) int32 {
	var sums, cnts [SuitCopa + 1]int32
	for _, c := range hand {
		sums[Suit(c)] += envidoValue(c)
		cnts[Suit(c)]++
	}

	best := int32(0)
	paired := false
	for s := SuitEspada; s <= SuitCopa; s++ {
		if cnts[s] < 2 {
			continue
		}
		paired = true
		if v := sums[s] + 20; v > best {
			best = v
		}
	}
	if paired {
		return best
	}

	for _, c := range hand {
		if v := envidoValue(c); v > best {
			best = v
		}
	}
	return best
}

// HasFlor 三张同花色为flor（手牌不足三张视为无）
func HasFlor(hand []int32) bool {
	if len(hand) < 3 {
		return false
	}
	suit := Suit(hand[0])
	for _, c := range hand[1:] {
		if Suit(c) != suit {
			return false
		}
	}
	return true
}
