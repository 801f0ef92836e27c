/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package snapshot_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/componentstore"
	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/datastore/mock"
	"github.com/suparena/componentstore/errors"
	tc "github.com/suparena/componentstore/internal/testcomponents"
	"github.com/suparena/componentstore/internal/testmodules/modulef"
	"github.com/suparena/componentstore/registry"
	"github.com/suparena/componentstore/snapshot"
	"github.com/suparena/componentstore/storagemodels"
)

func TestCapture(t *testing.T) {
	m := componentstore.NewManager()

	t.Run("Basic", func(t *testing.T) {
		b := &tc.Basic{}
		b.SetName("alpha")
		b.SetDescription("first")

		rec, err := snapshot.Capture(m, "e1", b)
		require.NoError(t, err)
		assert.Equal(t, "e1", rec.EntityID)
		assert.Equal(t, "core:Basic", rec.ComponentType)
		assert.Equal(t, map[string]any{"name": "alpha", "description": "first"}, rec.Properties)

		updated, err := rec.Updated()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), time.Time(updated), time.Minute)
	})

	t.Run("TextValues", func(t *testing.T) {
		s := &tc.Stamp{}
		s.SetCreatedAt(strfmt.DateTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)))

		rec, err := snapshot.Capture(m, "e1", s)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-02T03:04:05.000Z", rec.Properties["createdAt"])
	})

	t.Run("Empty", func(t *testing.T) {
		rec, err := snapshot.Capture(m, "e1", &tc.Empty{})
		require.NoError(t, err)
		assert.Equal(t, "core:Empty", rec.ComponentType)
		assert.Empty(t, rec.Properties)
	})

	t.Run("Rejects", func(t *testing.T) {
		_, err := snapshot.Capture(m, "", &tc.Basic{})
		assert.True(t, errors.IsValidationError(err))

		_, err = snapshot.Capture(m, "e1", (*tc.Basic)(nil))
		assert.True(t, errors.IsValidationError(err))

		_, err = snapshot.Capture(m, "e1", tc.Basic{})
		assert.True(t, errors.IsValidationError(err))

		_, err = snapshot.Capture(m, "e1", &tc.Incompatible{})
		assert.True(t, errors.IsPropertyResolution(err))
	})
}

func TestRestore(t *testing.T) {
	for _, f := range []component.TypeFactory{component.ReflectFactory{}, component.GeneratedFactory{}} {
		t.Run(f.Name(), func(t *testing.T) {
			m := componentstore.NewManager(componentstore.WithFactory(f))

			t.Run("RoundTrip", func(t *testing.T) {
				s := &tc.Stamp{}
				s.SetLabel("launch")
				s.SetCreatedAt(strfmt.DateTime(time.Date(2025, 1, 2, 3, 4, 5, 6e6, time.UTC)))

				rec, err := snapshot.Capture(m, "e1", s)
				require.NoError(t, err)
				got, err := snapshot.Restore(m, rec)
				require.NoError(t, err)

				restored := got.(*tc.Stamp)
				assert.NotSame(t, s, restored)
				assert.Equal(t, "launch", restored.Label())
				assert.Equal(t, s.CreatedAt().String(), restored.CreatedAt().String())
			})

			t.Run("InterfaceProperty", func(t *testing.T) {
				mm := &tc.Mismatched{}
				mm.SetStringProperty(tc.Str("seq"))

				rec, err := snapshot.Capture(m, "e1", mm)
				require.NoError(t, err)
				got, err := snapshot.Restore(m, rec)
				require.NoError(t, err)
				assert.Equal(t, tc.Str("seq"), got.(*tc.Mismatched).StringProperty())
			})

			t.Run("WeaklyTyped", func(t *testing.T) {
				got, err := snapshot.Restore(m, storagemodels.ComponentRecord{
					EntityID:      "e1",
					ComponentType: "core:Counter",
					Properties:    map[string]any{"level": float64(7)},
				})
				require.NoError(t, err)
				assert.Equal(t, 7, got.(*tc.Counter).Level())

				got, err = snapshot.Restore(m, storagemodels.ComponentRecord{
					EntityID:      "e1",
					ComponentType: "core:Inventory",
					Properties:    map[string]any{"owner": "bob", "items": []any{"rope", "lamp"}},
				})
				require.NoError(t, err)
				assert.Equal(t, []string{"rope", "lamp"}, got.(*tc.Inventory).Items())
			})

			t.Run("MissingPropertiesKeepDefaults", func(t *testing.T) {
				got, err := snapshot.Restore(m, storagemodels.ComponentRecord{EntityID: "e1", ComponentType: "core:Counter"})
				require.NoError(t, err)
				assert.Equal(t, tc.StartLevel, got.(*tc.Counter).Level())
			})

			t.Run("UnknownProperty", func(t *testing.T) {
				_, err := snapshot.Restore(m, storagemodels.ComponentRecord{
					EntityID:      "e1",
					ComponentType: "core:Basic",
					Properties:    map[string]any{"colour": "red"},
				})
				require.Error(t, err)
				assert.True(t, errors.IsUnknownProperty(err))
				assert.Contains(t, err.Error(), "colour")
			})

			t.Run("UnknownType", func(t *testing.T) {
				_, err := snapshot.Restore(m, storagemodels.ComponentRecord{EntityID: "e1", ComponentType: "core:Nope"})
				assert.True(t, errors.IsNotFound(err))
			})

			t.Run("UndecodableValue", func(t *testing.T) {
				_, err := snapshot.Restore(m, storagemodels.ComponentRecord{
					EntityID:      "e1",
					ComponentType: "core:Counter",
					Properties:    map[string]any{"level": map[string]any{"nested": true}},
				})
				require.Error(t, err)
				assert.Contains(t, err.Error(), "core:Counter.level")
			})

			t.Run("RuntimeModule", func(t *testing.T) {
				spriteType, err := registry.LookupType("modulef:Sprite")
				require.NoError(t, err)
				inst, err := m.Create(spriteType)
				require.NoError(t, err)
				sprite := inst.(*modulef.Sprite)
				sprite.SetX(1.5)
				sprite.SetTexture("textures/player.txt")

				rec, err := snapshot.Capture(m, "e1", sprite)
				require.NoError(t, err)
				assert.Equal(t, "modulef:Sprite", rec.ComponentType)

				got, err := snapshot.Restore(m, rec)
				require.NoError(t, err)
				assert.Equal(t, 1.5, got.(*modulef.Sprite).X())
				assert.Equal(t, "textures/player.txt", got.(*modulef.Sprite).Texture())
			})
		})
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	m := componentstore.NewManager()
	data := mock.New[storagemodels.ComponentRecord]()
	store := snapshot.NewStore(m, data)

	id := snapshot.NewEntityID()
	other := snapshot.NewEntityID()

	b := &tc.Basic{}
	b.SetName("alpha")
	_, err := store.Save(ctx, id, b)
	require.NoError(t, err)

	c := &tc.Counter{}
	c.SetLevel(4)
	_, err = store.Save(ctx, id, c)
	require.NoError(t, err)
	_, err = store.Save(ctx, other, &tc.Basic{})
	require.NoError(t, err)
	assert.Equal(t, 3, data.Count())

	t.Run("Load", func(t *testing.T) {
		got, err := store.Load(ctx, id, reflect.TypeFor[tc.Basic]())
		require.NoError(t, err)
		assert.Equal(t, "alpha", got.(*tc.Basic).Name())
		assert.NotSame(t, b, got)

		counter, err := snapshot.LoadAs[tc.Counter](ctx, store, id)
		require.NoError(t, err)
		assert.Equal(t, 4, counter.Level())

		_, err = snapshot.LoadAs[tc.Stamp](ctx, store, id)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("List", func(t *testing.T) {
		all, err := store.List(ctx, id)
		require.NoError(t, err)
		require.Len(t, all, 2)

		everything, err := store.Query(ctx, &storagemodels.QueryParams{})
		require.NoError(t, err)
		assert.Len(t, everything, 3)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, id, reflect.TypeFor[*tc.Basic]()))
		_, err := store.Load(ctx, id, reflect.TypeFor[tc.Basic]())
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, 2, data.Count())
	})

	t.Run("PutFailure", func(t *testing.T) {
		failing := mock.New[storagemodels.ComponentRecord]().WithPutError(errors.ErrConditionFailed)
		_, err := snapshot.NewStore(m, failing).Save(ctx, id, b)
		assert.ErrorIs(t, err, errors.ErrConditionFailed)
	})
}

func TestNewEntityID(t *testing.T) {
	a, b := snapshot.NewEntityID(), snapshot.NewEntityID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
