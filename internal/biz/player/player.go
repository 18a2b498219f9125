package player

type Player struct {
	sessionID string
	gameData  *GameData
	baseData  *BaseData // 私有，不暴露
}

type Raw struct {
	SessionID string
	BaseData  *BaseData
}

func New(raw *Raw) *Player {
	p := &Player{
		sessionID: raw.SessionID,
		gameData:  &GameData{RoomID: -1, Seat: -1},
		baseData:  raw.BaseData,
	}
	return p
}

func (p *Player) SetBaseData(baseData *BaseData) {
	p.baseData = baseData
}

func (p *Player) GetBaseData() *BaseData {
	return p.baseData
}

func (p *Player) GetSessionID() string {
	return p.sessionID
}

func (p *Player) UpdateSession(sessionID string) {
	p.sessionID = sessionID
}

// LogoutGame 断开清理
func (p *Player) LogoutGame() {
	p.sessionID = ""
	p.gameData = nil
	p.baseData = nil
}
