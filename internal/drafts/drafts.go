// Package drafts keeps the visit-in-progress clinical payload in redis, one
// draft per patient per workspace. Drafts are read on screen entry and
// cleared on successful save; they are the only client-visible ephemeral
// state the service holds.
package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/clinicstack/clinic-manager/internal/domain/clinical"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

const draftTTL = 72 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(scope tenant.Scope, patientID string) string {
	return fmt.Sprintf("draft:visit:%s:%s", scope.WorkspaceID, patientID)
}

func (s *Store) Save(ctx context.Context, scope tenant.Scope, patientID string, rec clinical.Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(scope, patientID), b, draftTTL).Err()
}

// Load returns the draft for a patient, or (nil, nil) when none exists.
func (s *Store) Load(ctx context.Context, scope tenant.Scope, patientID string) (*clinical.Record, error) {
	b, err := s.rdb.Get(ctx, key(scope, patientID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec clinical.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		// A corrupt draft is not worth failing the screen over.
		return nil, nil
	}
	return &rec, nil
}

func (s *Store) Clear(ctx context.Context, scope tenant.Scope, patientID string) error {
	return s.rdb.Del(ctx, key(scope, patientID)).Err()
}
