package room

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yola1107/kratos/v2/errors"
	"github.com/yola1107/kratos/v2/log"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
	"github.com/ArthurJoras/spanish-truco-game/pkg/codes"
)

// Manager 房间注册表 按需开房
// 锁序约定：注册表锁在先 房间锁在后
type Manager struct {
	repo Repo

	mu     sync.Mutex
	rooms  map[int32]*Room
	nextID int32
}

func NewManager(repo Repo) *Manager {
	return &Manager{
		repo:  repo,
		rooms: make(map[int32]*Room),
	}
}

func (m *Manager) Start() error { return nil }

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rooms {
		r.Close()
		delete(m.rooms, id)
	}
}

// CreateRoom 建房并入座
func (m *Manager) CreateRoom(p *player.Player, name string) (*Room, *errors.Error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.InRoom() {
		return nil, codes.ErrAlreadyInRoom
	}
	if int32(len(m.rooms)) >= m.repo.GetRoomConfig().MaxRooms {
		return nil, codes.ErrNotEnoughRoom
	}

	m.nextID++
	id := m.nextID
	if name == "" {
		name = fmt.Sprintf("room-%d", id)
	}

	r := NewRoom(id, name, m.repo.GetRoomConfig(), m.repo)
	m.rooms[id] = r

	if seat := r.ThrowInto(p); seat < 0 {
		delete(m.rooms, id)
		r.Close()
		return nil, codes.ErrEnterRoomFail
	}

	log.Infof("room created. %s by %d", r.Desc(), p.GetPlayerID())
	return r, nil
}

// JoinRoom 加入指定房间
func (m *Manager) JoinRoom(p *player.Player, roomID int32) (*Room, int32, *errors.Error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.InRoom() {
		return nil, -1, codes.ErrAlreadyInRoom
	}
	r, ok := m.rooms[roomID]
	if !ok {
		return nil, -1, codes.ErrRoomNotFound
	}

	seat := r.ThrowInto(p)
	if seat < 0 {
		return nil, -1, codes.ErrRoomFull
	}
	return r, seat, nil
}

// LeaveRoom 主动离房 房间空置即回收
func (m *Manager) LeaveRoom(p *player.Player) *errors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[p.GetRoomID()]
	if !ok {
		return codes.ErrNotInRoom
	}
	if emptied := r.ThrowOff(p); emptied {
		m.removeLocked(r)
	}
	return nil
}

func (m *Manager) GetRoom(id int32) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rooms[id]
}

// GetRoomList 房间列表 按ID升序
func (m *Manager) GetRoomList() []*Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Retire 回收房间 清退残留成员
func (m *Manager) Retire(roomID int32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[roomID]
	if !ok {
		return
	}
	m.removeLocked(r)
}

// Offline 会话断开 对局中判负并清退
func (m *Manager) Offline(p *player.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[p.GetRoomID()]
	if !ok {
		return
	}
	if emptied := r.OnOffline(p); emptied {
		m.removeLocked(r)
	}
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rooms)
}

// removeLocked 调用方持注册表锁
func (m *Manager) removeLocked(r *Room) {
	for _, p := range r.Seats() {
		r.ThrowOff(p)
	}
	r.Close()
	delete(m.rooms, r.ID)
	log.Infof("room retired. %s", r.Desc())
}
