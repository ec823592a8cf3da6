package repository

import (
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/domain"
)

func (r *Repository) CreateProblem(p *domain.Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.problems) >= r.cfg.Registry.MaxProblems {
		return domain.ErrTooManyProblems
	}

	p.ID = r.nextID
	p.CreatedAt = time.Now()
	r.nextID++
	r.problems[p.ID] = p

	return nil
}

func (r *Repository) GetProblemByID(id int64) (*domain.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.problems[id]
	if !exists {
		return nil, domain.ErrProblemNotFound
	}

	return p, nil
}

func (r *Repository) GetAllProblems() ([]*domain.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	problems := make([]*domain.Problem, 0, len(r.problems))
	for _, p := range r.problems {
		problems = append(problems, p)
	}

	// map 的遍历顺序不固定，按 ID 排序保证返回顺序稳定
	sort.Slice(problems, func(i, j int) bool {
		return problems[i].ID < problems[j].ID
	})

	return problems, nil
}

func (r *Repository) DeleteProblem(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.problems[id]; !exists {
		return domain.ErrProblemNotFound
	}
	delete(r.problems, id)

	return nil
}
