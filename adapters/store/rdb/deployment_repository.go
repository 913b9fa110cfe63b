package rdb

import (
	"context"
	"errors"

	"github.com/funcops/funcops/domain"
	"github.com/funcops/funcops/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeploymentRepository struct{ db *gorm.DB }

func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

func deploymentToRecord(d *model.Deployment) *DeploymentRecord {
	return &DeploymentRecord{
		ID: d.ID, StackName: d.StackName, Suffix: d.Suffix,
		PackageHash: d.PackageHash, AppName: d.AppName, Hostname: d.Hostname,
		State: d.State, Error: d.Error,
		StartedAt: d.StartedAt, FinishedAt: d.FinishedAt,
	}
}

func deploymentToModel(r *DeploymentRecord) *model.Deployment {
	return &model.Deployment{
		ID: r.ID, StackName: r.StackName, Suffix: r.Suffix,
		PackageHash: r.PackageHash, AppName: r.AppName, Hostname: r.Hostname,
		State: r.State, Error: r.Error,
		StartedAt: r.StartedAt, FinishedAt: r.FinishedAt,
	}
}

func (r *DeploymentRepository) Create(ctx context.Context, d *model.Deployment) error {
	rec := deploymentToRecord(d)
	if rec.ID == "" {
		rec.ID = "dep-" + uuid.NewString()
		d.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *DeploymentRepository) Get(ctx context.Context, id string) (*model.Deployment, error) {
	var rec DeploymentRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrDeploymentNotFound
		}
		return nil, err
	}
	return deploymentToModel(&rec), nil
}

func (r *DeploymentRepository) List(ctx context.Context, stackName string) ([]*model.Deployment, error) {
	var recs []DeploymentRecord
	q := r.db.WithContext(ctx).Order("started_at ASC")
	if stackName != "" {
		q = q.Where("stack_name = ?", stackName)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Deployment, 0, len(recs))
	for i := range recs {
		out = append(out, deploymentToModel(&recs[i]))
	}
	return out, nil
}

func (r *DeploymentRepository) Latest(ctx context.Context, stackName string) (*model.Deployment, error) {
	var rec DeploymentRecord
	err := r.db.WithContext(ctx).
		Where("stack_name = ?", stackName).
		Order("started_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrDeploymentNotFound
		}
		return nil, err
	}
	return deploymentToModel(&rec), nil
}

func (r *DeploymentRepository) Update(ctx context.Context, d *model.Deployment) error {
	rec := deploymentToRecord(d)
	return r.db.WithContext(ctx).Model(&DeploymentRecord{}).Where("id = ?", rec.ID).Updates(rec).Error
}

var _ domain.DeploymentRepository = (*DeploymentRepository)(nil)
