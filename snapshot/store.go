/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/suparena/componentstore"
	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/datastore"
	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/storagemodels"
)

// Store persists the components of entities as ComponentRecords.
type Store struct {
	manager *componentstore.Manager
	data    datastore.DataStore[storagemodels.ComponentRecord]
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the store's logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store that describes components with m and keeps their
// records in data.
func NewStore(m *componentstore.Manager, data datastore.DataStore[storagemodels.ComponentRecord], opts ...StoreOption) *Store {
	s := &Store{manager: m, data: data, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save captures instance and writes it as the entity's component of that type,
// replacing any earlier record.
func (s *Store) Save(ctx context.Context, entityID string, instance any) (storagemodels.ComponentRecord, error) {
	rec, err := Capture(s.manager, entityID, instance)
	if err != nil {
		return rec, err
	}
	if err := s.data.Put(ctx, rec); err != nil {
		return rec, fmt.Errorf("save %s of %s: %w", rec.ComponentType, entityID, err)
	}
	s.logger.Debug("Component saved.", "entity", entityID, "component", rec.ComponentType)
	return rec, nil
}

// Load reads the entity's component of type t and restores it.
func (s *Store) Load(ctx context.Context, entityID string, t reflect.Type) (any, error) {
	ct, err := s.manager.Type(t)
	if err != nil {
		return nil, err
	}
	rec, err := s.data.GetOne(ctx, recordKey(entityID, ct))
	if err != nil {
		return nil, err
	}
	return Restore(s.manager, *rec)
}

// Delete removes the entity's component of type t.
func (s *Store) Delete(ctx context.Context, entityID string, t reflect.Type) error {
	ct, err := s.manager.Type(t)
	if err != nil {
		return err
	}
	if err := s.data.Delete(ctx, recordKey(entityID, ct)); err != nil {
		return err
	}
	s.logger.Debug("Component deleted.", "entity", entityID, "component", ct.Name())
	return nil
}

// Query restores every record params selects.
func (s *Store) Query(ctx context.Context, params *storagemodels.QueryParams) ([]any, error) {
	recs, err := s.data.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.restoreAll(recs)
}

// List restores every component of one entity.
func (s *Store) List(ctx context.Context, entityID string) ([]any, error) {
	recs, err := s.data.Query(ctx, storagemodels.EntityQuery(entityID))
	if err != nil {
		return nil, err
	}

	own := recs[:0:0]
	for _, rec := range recs {
		if rec.EntityID == entityID {
			own = append(own, rec)
		}
	}
	return s.restoreAll(own)
}

func (s *Store) restoreAll(recs []storagemodels.ComponentRecord) ([]any, error) {
	out := make([]any, 0, len(recs))
	for _, rec := range recs {
		inst, err := Restore(s.manager, rec)
		if err != nil {
			return nil, fmt.Errorf("restore %s of %s: %w", rec.ComponentType, rec.EntityID, err)
		}
		out = append(out, inst)
	}
	return out, nil
}

// LoadAs reads the entity's component of type T.
func LoadAs[T any](ctx context.Context, s *Store, entityID string) (*T, error) {
	inst, err := s.Load(ctx, entityID, reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	p, ok := inst.(*T)
	if !ok {
		var zero T
		return nil, errors.NewInstantiationError(fmt.Sprintf("%T", zero), fmt.Errorf("restored %T", inst))
	}
	return p, nil
}

func recordKey(entityID string, ct *component.Type) storagemodels.ComponentRecord {
	return storagemodels.ComponentRecord{EntityID: entityID, ComponentType: ct.Name()}
}
