package player

// BaseData 玩家档案
type BaseData struct {
	UID        int64 // 用户ID
	NickName   string
	Matches    int32 // 总比赛场数
	Wins       int32 // 获胜场数
	PointsWon  int32 // 累计赢得分数
	PointsLost int32 // 累计输掉分数
	LastSeen   int64 // 最后在线时间戳
}

func (p *Player) GetPlayerID() int64 {
	return p.baseData.UID
}

func (p *Player) GetNickName() string {
	return p.baseData.NickName
}

// RecordMatch 记录一场比赛结果
func (p *Player) RecordMatch(won bool, pointsWon, pointsLost int32) {
	p.baseData.Matches++
	if won {
		p.baseData.Wins++
	}
	p.baseData.PointsWon += pointsWon
	p.baseData.PointsLost += pointsLost
}
