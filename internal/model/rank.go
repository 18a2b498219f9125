package model

// Power 牌的大小等级（西班牙Truco体系，14最大 1最小）
func Power(card int32) int32 {
	suit, number := Suit(card), Number(card)

	// 特殊牌
	switch {
	case number == 1 && suit == SuitEspada:
		return 14 // 剑A
	case number == 1 && suit == SuitBasto:
		return 13 // 棍A
	case number == 7 && suit == SuitEspada:
		return 12 // 剑7
	case number == 7 && suit == SuitOro:
		return 11 // 金币7
	}

	switch number {
	case 3:
		return 10
	case 2:
		return 9
	case 1:
		return 8 // 圣杯A 金币A
	case 12:
		return 7
	case 11:
		return 6
	case 10:
		return 5
	case 7:
		return 4 // 棍7 圣杯7
	case 6:
		return 3
	case 5:
		return 2
	case 4:
		return 1
	}
	return 0
}

// Compare 比较两张牌 1:a大 -1:b大 0:平
func Compare(a, b int32) int32 {
	pa, pb := Power(a), Power(b)
	switch {
	case pa > pb:
		return 1
	case pa < pb:
		return -1
	default:
		return 0
	}
}
