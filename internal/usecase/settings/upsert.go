package settings

import (
	"context"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/keymutex"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

type Repository interface {
	FindSetting(ctx context.Context, scope tenant.Scope, key string) (*models.ClinicSetting, error)
	CreateSetting(ctx context.Context, scope tenant.Scope, setting *models.ClinicSetting) error
	UpdateSetting(ctx context.Context, scope tenant.Scope, setting *models.ClinicSetting) error
}

// ======================================================
// USE CASE
// ======================================================

// Upsert saves one config row per (workspace, key): update when the row
// exists, create otherwise. The per-key mutex makes the second concurrent
// save an update instead of a duplicate insert.
type Upsert struct {
	repo  Repository
	locks *keymutex.KeyMutex
	audit *audit.Dispatcher
}

func NewUpsert(repo Repository, audit *audit.Dispatcher) *Upsert {
	return &Upsert{
		repo:  repo,
		locks: keymutex.New(),
		audit: audit,
	}
}

func (uc *Upsert) Execute(
	ctx context.Context,
	scope tenant.Scope,
	key string,
	value string,
) (*models.ClinicSetting, error) {

	if key == "" {
		return nil, httperr.ErrBusiness("key_required")
	}

	unlock := uc.locks.Lock(scope.WorkspaceID + ":" + key)
	defer unlock()

	existing, err := uc.repo.FindSetting(ctx, scope, key)
	if err != nil {
		return nil, err
	}

	var setting *models.ClinicSetting
	if existing != nil {
		existing.Value = value
		if err := uc.repo.UpdateSetting(ctx, scope, existing); err != nil {
			return nil, err
		}
		setting = existing
	} else {
		setting = &models.ClinicSetting{Key: key, Value: value}
		if err := uc.repo.CreateSetting(ctx, scope, setting); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      "setting_updated",
		Entity:      "clinic_setting",
		EntityID:    setting.ID,
		Details:     map[string]string{"key": key},
	})

	return setting, nil
}
