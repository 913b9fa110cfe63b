package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/funcops/funcops/domain"
	"github.com/funcops/funcops/domain/model"
)

// InMemoryDeploymentRepository is a thread-safe in-memory implementation.
type InMemoryDeploymentRepository struct {
	mu    sync.RWMutex
	items map[string]*model.Deployment
	seq   int64
}

func NewInMemoryDeploymentRepository() *InMemoryDeploymentRepository {
	return &InMemoryDeploymentRepository{items: make(map[string]*model.Deployment)}
}

func (r *InMemoryDeploymentRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("dep-%d-%d", time.Now().UnixNano(), r.seq)
}

func (r *InMemoryDeploymentRepository) Create(_ context.Context, d *model.Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == "" {
		d.ID = r.nextID()
	}
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *InMemoryDeploymentRepository) Get(_ context.Context, id string) (*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, model.ErrDeploymentNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *InMemoryDeploymentRepository) List(_ context.Context, stackName string) ([]*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Deployment, 0, len(r.items))
	for _, v := range r.items {
		if stackName != "" && v.StackName != stackName {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}

func (r *InMemoryDeploymentRepository) Latest(_ context.Context, stackName string) (*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *model.Deployment
	for _, v := range r.items {
		if v.StackName != stackName {
			continue
		}
		if latest == nil || v.StartedAt.After(latest.StartedAt) {
			latest = v
		}
	}
	if latest == nil {
		return nil, model.ErrDeploymentNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *InMemoryDeploymentRepository) Update(_ context.Context, d *model.Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; !ok {
		return model.ErrDeploymentNotFound
	}
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

var _ domain.DeploymentRepository = (*InMemoryDeploymentRepository)(nil)
