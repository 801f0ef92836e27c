/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package snapshot

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/suparena/componentstore"
	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/registry"
	"github.com/suparena/componentstore/storagemodels"
)

// NewEntityID returns a fresh random entity id.
func NewEntityID() string {
	return uuid.NewString()
}

// Capture reads every property of instance through its accessors into a
// record for entityID. Values implementing encoding.TextMarshaler are stored
// in their text form.
func Capture(m *componentstore.Manager, entityID string, instance any) (storagemodels.ComponentRecord, error) {
	var rec storagemodels.ComponentRecord
	if entityID == "" {
		return rec, errors.NewValidationError("entityID", "entity id is required")
	}
	v := reflect.ValueOf(instance)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return rec, errors.NewValidationError("instance", fmt.Sprintf("want a non-nil component pointer, got %T", instance))
	}

	ct, err := m.Type(v.Type())
	if err != nil {
		return rec, err
	}

	props := make(map[string]any, ct.PropertyInfo().Len())
	for _, a := range ct.PropertyInfo().Properties() {
		value, err := plain(a.Get(instance))
		if err != nil {
			return rec, fmt.Errorf("capture %s.%s: %w", ct.Name(), a.Name(), err)
		}
		props[a.Name()] = value
	}

	return storagemodels.ComponentRecord{
		EntityID:      entityID,
		ComponentType: ct.Name(),
		Properties:    props,
		UpdatedAt:     strfmt.DateTime(time.Now().UTC()).String(),
	}, nil
}

func plain(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if tm, ok := value.(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return string(text), nil
	}
	return value, nil
}

// Restore creates an instance of the record's component type and sets every
// recorded property on it. Values are decoded into the property type, so
// numbers read back as float64 still restore into int properties.
//
// A recorded property the type does not declare is an UnknownPropertyError.
func Restore(m *componentstore.Manager, rec storagemodels.ComponentRecord) (any, error) {
	t, err := registry.LookupType(rec.ComponentType)
	if err != nil {
		return nil, err
	}
	ct, err := m.Type(t)
	if err != nil {
		return nil, err
	}
	inst, err := ct.Create()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rec.Properties))
	for name := range rec.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := ct.PropertyInfo().Property(name)
		if !ok {
			return nil, errors.NewUnknownPropertyError(ct.Name(), name)
		}
		value, err := decode(rec.Properties[name], a.PropertyType())
		if err != nil {
			return nil, fmt.Errorf("restore %s.%s: %w", ct.Name(), name, err)
		}
		if err := a.Set(inst, value); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func decode(raw any, t reflect.Type) (any, error) {
	if raw == nil {
		return reflect.Zero(t).Interface(), nil
	}
	if reflect.TypeOf(raw).AssignableTo(t) {
		return raw, nil
	}

	target := reflect.New(t)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		WeaklyTypedInput: true,
		Result:           target.Interface(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	return target.Elem().Interface(), nil
}
