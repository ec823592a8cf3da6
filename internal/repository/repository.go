package repository

import (
	"sync"

	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/domain"
)

// Repository 在内存中维护所有已注册的排班问题
// 打分服务不需要持久化，问题的生命周期和进程一致
type Repository struct {
	cfg *config.Config

	mu       sync.RWMutex
	problems map[int64]*domain.Problem
	nextID   int64
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		cfg:      cfg,
		problems: make(map[int64]*domain.Problem),
		nextID:   1,
	}
}
