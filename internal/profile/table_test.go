package profile

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_ParsesProfiles(t *testing.T) {
	doc := map[string]any{
		"profile": []any{
			map[string]any{
				"name":   "base",
				"index":  int64(2),
				"env":    map[string]any{"PATH": []any{"/opt/base/bin", "/OPT/base/bin/"}, "Include": "/opt/base/include"},
				"add":    []any{},
				"remove": []any{},
			},
			map[string]any{
				"name":   "dev",
				"add":    []any{"base"},
				"remove": []any{"legacy"},
			},
		},
	}

	table, err := NewTable(doc)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Empty(t, table.Warnings())
	assert.Equal(t, []string{"base", "dev"}, table.Names())

	base, ok := table.Lookup("base")
	require.True(t, ok)
	assert.Equal(t, int64(2), base.Index)
	assert.False(t, base.Inherits())
	path, ok := base.Env.Lookup("path")
	require.True(t, ok)
	assert.Equal(t, []string{"/opt/base/bin"}, path.Strings(), "duplicate entries are coalesced")
	include, ok := base.Env.Lookup("INCLUDE")
	require.True(t, ok)
	assert.Equal(t, []string{"/opt/base/include"}, include.Strings())

	dev, ok := table.Lookup("dev")
	require.True(t, ok)
	assert.Equal(t, []string{"base"}, dev.Add)
	assert.Equal(t, []string{"legacy"}, dev.Remove)
	assert.Equal(t, 0, dev.Env.Len())
	assert.True(t, dev.Inherits())
}

func TestNewTable_UnusedKeys_Warn(t *testing.T) {
	doc := map[string]any{
		"settings": map[string]any{"colour": true},
		"profile": []any{
			map[string]any{"name": "a", "colour": "red"},
		},
	}

	table, err := NewTable(doc)
	require.NoError(t, err)

	warnings := table.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "profile[0].colour", warnings[0].Key)
	assert.Equal(t, "a", warnings[0].Profile)
	assert.Equal(t, "settings", warnings[1].Key)
	assert.Equal(t, "key settings is unused", warnings[1].String())
}

func TestNewTable_NoProfileKey_IsEmpty(t *testing.T) {
	table, err := NewTable(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestNewTable_StructureErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		key  string
	}{
		{
			name: "ProfileNotArray",
			doc:  map[string]any{"profile": "nope"},
			key:  "profile",
		},
		{
			name: "EntryNotTable",
			doc:  map[string]any{"profile": []any{"nope"}},
			key:  "profile[0]",
		},
		{
			name: "NameMissing",
			doc:  map[string]any{"profile": []any{map[string]any{"add": []any{}}}},
			key:  "profile[0].name",
		},
		{
			name: "NameEmpty",
			doc:  map[string]any{"profile": []any{map[string]any{"name": ""}}},
			key:  "profile[0].name",
		},
		{
			name: "NameNotString",
			doc:  map[string]any{"profile": []any{map[string]any{"name": int64(1)}}},
			key:  "profile[0].name",
		},
		{
			name: "IndexNotInteger",
			doc:  map[string]any{"profile": []any{map[string]any{"name": "a", "index": "1"}}},
			key:  "profile[0].index",
		},
		{
			name: "AddNotArray",
			doc:  map[string]any{"profile": []any{map[string]any{"name": "a", "add": "b"}}},
			key:  "profile[0].add",
		},
		{
			name: "RemoveEntryNotString",
			doc:  map[string]any{"profile": []any{map[string]any{"name": "a", "remove": []any{"b", int64(3)}}}},
			key:  "profile[0].remove[1]",
		},
		{
			name: "EnvNotTable",
			doc:  map[string]any{"profile": []any{map[string]any{"name": "a", "env": []any{"x"}}}},
			key:  "profile[0].env",
		},
		{
			name: "EnvValueWrongType",
			doc:  map[string]any{"profile": []any{map[string]any{"name": "a", "env": map[string]any{"PATH": int64(1)}}}},
			key:  "profile[0].env.PATH",
		},
		{
			name: "EnvArrayEntryNotString",
			doc:  map[string]any{"profile": []any{map[string]any{"name": "a", "env": map[string]any{"PATH": []any{"/a", true}}}}},
			key:  "profile[0].env.PATH[1]",
		},
		{
			name: "EnvNameNotIdentifier",
			doc:  map[string]any{"profile": []any{map[string]any{"name": "a", "env": map[string]any{"BAD NAME": "/b"}}}},
			key:  "profile[0].env.BAD NAME",
		},
		{
			name: "SecondEntryBroken",
			doc: map[string]any{"profile": []any{
				map[string]any{"name": "a"},
				map[string]any{"name": "b", "add": []any{false}},
			}},
			key: "profile[1].add[0]",
		},
		{
			name: "DuplicateName",
			doc: map[string]any{"profile": []any{
				map[string]any{"name": "a"},
				map[string]any{"name": "a"},
			}},
			key: "profile[1].name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.doc)
			require.Error(t, err)
			assert.Nil(t, table)

			var structErr *ConfigStructureError
			require.True(t, errors.As(err, &structErr), "want ConfigStructureError, got %T", err)
			assert.Equal(t, tt.key, structErr.Key())
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestTable_Sorted_UsesIndexThenDocumentOrder(t *testing.T) {
	doc := map[string]any{"profile": []any{
		map[string]any{"name": "c", "index": int64(1)},
		map[string]any{"name": "a"},
		map[string]any{"name": "b", "index": int64(1)},
		map[string]any{"name": "z", "index": int64(-1)},
	}}
	table, err := NewTable(doc)
	require.NoError(t, err)

	var names []string
	for _, p := range table.Sorted() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"z", "a", "c", "b"}, names)
	assert.Equal(t, []string{"c", "a", "b", "z"}, table.Names(), "document order is untouched")
}

func TestTable_Lookup_IsCaseSensitive(t *testing.T) {
	table, err := NewTable(map[string]any{"profile": []any{map[string]any{"name": "Dev"}}})
	require.NoError(t, err)

	_, ok := table.Lookup("dev")
	assert.False(t, ok)
	_, ok = table.Lookup("Dev")
	assert.True(t, ok)
}
