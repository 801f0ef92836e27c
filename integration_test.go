//go:build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package componentstore_test

import (
	"context"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/componentstore"
	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/config"
	"github.com/suparena/componentstore/datastore/ddb"
	"github.com/suparena/componentstore/errors"
	tc "github.com/suparena/componentstore/internal/testcomponents"
	"github.com/suparena/componentstore/internal/testmodules/modulef"
	"github.com/suparena/componentstore/snapshot"
	"github.com/suparena/componentstore/storagemodels"
)

func setupSnapshotStore(t *testing.T) (*snapshot.Store, *componentstore.Manager) {
	t.Helper()
	cfg, err := config.Load(".env")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.AWS.Configured() {
		t.Skip("AWS_DDB_TABLE not set, skipping integration test")
	}

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	factory, err := cfg.TypeFactory()
	if err != nil {
		t.Fatalf("Failed to select factory: %v", err)
	}

	ctx := context.Background()
	data, err := ddb.NewDynamodbDataStore[storagemodels.ComponentRecord](ctx,
		cfg.AWS.AccessKey, cfg.AWS.SecretKey, cfg.AWS.Region, cfg.AWS.Table, ddb.WithLogger(logger))
	if err != nil {
		t.Fatalf("Failed to create datastore: %v", err)
	}

	m := componentstore.NewManager(componentstore.WithFactory(factory), componentstore.WithLogger(logger))
	return snapshot.NewStore(m, data, snapshot.WithLogger(logger)), m
}

func TestIntegrationEntityRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store, m := setupSnapshotStore(t)
	entityID := snapshot.NewEntityID()

	stamp, err := componentstore.Create[tc.Stamp](m)
	if err != nil {
		t.Fatalf("Failed to create stamp: %v", err)
	}
	stamp.SetLabel("integration")
	stamp.SetCreatedAt(strfmt.DateTime(time.Now().UTC().Truncate(time.Millisecond)))

	sprite := &modulef.Sprite{}
	sprite.SetX(3)
	sprite.SetTexture("textures/player.txt")

	inventory, err := componentstore.Create[tc.Inventory](m)
	if err != nil {
		t.Fatalf("Failed to create inventory: %v", err)
	}
	inventory.SetItems([]string{"rope", "lamp"})

	for _, c := range []any{stamp, sprite, inventory} {
		if _, err := store.Save(ctx, entityID, c); err != nil {
			t.Fatalf("Failed to save %T: %v", c, err)
		}
	}

	restored, err := snapshot.LoadAs[tc.Stamp](ctx, store, entityID)
	if err != nil {
		t.Fatalf("Failed to load stamp: %v", err)
	}
	if restored.Label() != "integration" || restored.CreatedAt().String() != stamp.CreatedAt().String() {
		t.Errorf("Restored stamp doesn't match: got %v, want %v", restored, stamp)
	}

	all, err := store.List(ctx, entityID)
	if err != nil {
		t.Fatalf("Failed to list components: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(all))
	}

	for _, c := range []any{stamp, sprite, inventory} {
		if err := store.Delete(ctx, entityID, reflect.TypeOf(c)); err != nil {
			t.Fatalf("Failed to delete %T: %v", c, err)
		}
	}

	_, err = store.Load(ctx, entityID, reflect.TypeFor[modulef.Sprite]())
	if !errors.IsNotFound(err) {
		t.Errorf("Expected not found error, got: %v", err)
	}
}

func TestIntegrationFactoriesShareRecords(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store, _ := setupSnapshotStore(t)
	entityID := snapshot.NewEntityID()

	b := &tc.Basic{}
	b.SetName("written")
	rec, err := store.Save(ctx, entityID, b)
	if err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	defer store.Delete(ctx, entityID, reflect.TypeFor[tc.Basic]())

	// a record written through one factory restores through the other
	other := componentstore.NewManager(componentstore.WithFactory(component.GeneratedFactory{}))
	got, err := snapshot.Restore(other, rec)
	if err != nil {
		t.Fatalf("Failed to restore: %v", err)
	}
	if got.(*tc.Basic).Name() != "written" {
		t.Errorf("Expected name %q, got %q", "written", got.(*tc.Basic).Name())
	}
}
