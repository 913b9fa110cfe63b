package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/funcops/funcops/domain/model"
)

func TestDeploymentRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryDeploymentRepository()

	d := &model.Deployment{
		StackName: "notify",
		Suffix:    "a1b2c3",
		State:     model.DeploymentStateRunning,
		StartedAt: time.Now(),
	}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == "" {
		t.Fatal("Create must assign an ID")
	}

	got, err := repo.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StackName != "notify" || got.Suffix != "a1b2c3" {
		t.Errorf("unexpected record: %+v", got)
	}

	d.State = model.DeploymentStateSucceeded
	d.Hostname = "notify-func-a1b2c3.azurewebsites.net"
	if err := repo.Update(ctx, d); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.State != model.DeploymentStateSucceeded || got.Hostname == "" {
		t.Errorf("update lost fields: %+v", got)
	}
}

func TestDeploymentRepositoryLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryDeploymentRepository()

	if _, err := repo.Latest(ctx, "notify"); !errors.Is(err, model.ErrDeploymentNotFound) {
		t.Fatalf("expected ErrDeploymentNotFound, got %v", err)
	}

	base := time.Now()
	for i, suffix := range []string{"old1", "old2", "new1"} {
		d := &model.Deployment{
			StackName: "notify",
			Suffix:    suffix,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	// Unrelated stack must not win.
	other := &model.Deployment{StackName: "other", Suffix: "zzz", StartedAt: base.Add(time.Hour)}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	latest, err := repo.Latest(ctx, "notify")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Suffix != "new1" {
		t.Errorf("Latest suffix = %q, want new1", latest.Suffix)
	}

	list, err := repo.List(ctx, "notify")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("List returned %d records, want 3", len(list))
	}
}
