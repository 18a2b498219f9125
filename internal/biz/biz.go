package biz

import (
	"context"

	"github.com/google/wire"
	"github.com/yola1107/kratos/v2/log"

	"github.com/ArthurJoras/spanish-truco-game/internal/biz/player"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(NewUsecase)

// DataRepo is a data repo.
type DataRepo interface {
	SavePlayer(ctx context.Context, base *player.BaseData) error
	LoadPlayer(ctx context.Context, uid int64) (*player.BaseData, error)
	ExistPlayer(ctx context.Context, uid int64) bool
	NextUID(ctx context.Context) (int64, error)
}

// Usecase 玩家档案用例
type Usecase struct {
	repo DataRepo
	log  *log.Helper
}

// NewUsecase new a data usecase.
func NewUsecase(repo DataRepo, logger log.Logger) *Usecase {
	return &Usecase{repo: repo, log: log.NewHelper(logger)}
}

// GetDataRepo 获取data
func (uc *Usecase) GetDataRepo() DataRepo {
	return uc.repo
}

// LoadOrCreate 取档 无档则建新档
func (uc *Usecase) LoadOrCreate(ctx context.Context, uid int64, nickName string) (*player.BaseData, error) {
	if uid > 0 && uc.repo.ExistPlayer(ctx, uid) {
		base, err := uc.repo.LoadPlayer(ctx, uid)
		if err == nil {
			if nickName != "" && nickName != base.NickName {
				base.NickName = nickName
			}
			return base, nil
		}
		uc.log.Warnf("load player %d failed: %v", uid, err)
	}

	if uid <= 0 {
		next, err := uc.repo.NextUID(ctx)
		if err != nil {
			return nil, err
		}
		uid = next
	}

	base := &player.BaseData{UID: uid, NickName: nickName}
	if err := uc.repo.SavePlayer(ctx, base); err != nil {
		return nil, err
	}
	return base, nil
}
