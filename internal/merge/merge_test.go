package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeep_ScalarOverrideAndSequenceConcat(t *testing.T) {
	a := map[string]any{"x": 1, "y": []any{1}}
	b := map[string]any{"x": 2, "y": []any{2}}

	got, err := Deep(a, b)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 2, "y": []any{1, 2}}, got)
}

func TestDeep_OrderSensitive(t *testing.T) {
	a := map[string]any{"mode": "development"}
	b := map[string]any{"mode": "production"}

	ab, err := Deep(a, b)
	require.NoError(t, err)
	ba, err := Deep(b, a)
	require.NoError(t, err)

	assert.Equal(t, "production", ab["mode"])
	assert.Equal(t, "development", ba["mode"])
	assert.NotEqual(t, ab, ba)
}

func TestDeep_SingleSourceIsIdentity(t *testing.T) {
	a := map[string]any{
		"entry":   map[string]any{"main": "./src/main.js"},
		"plugins": []any{"html", "css"},
		"devtool": false,
	}

	got, err := Deep(a)

	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestDeep_NestedMapsMergeKeyByKey(t *testing.T) {
	a := map[string]any{
		"output": map[string]any{"path": "/dist", "filename": "[name].js"},
		"module": map[string]any{"rules": []any{"js"}},
	}
	b := map[string]any{
		"output": map[string]any{"filename": "[name].[contenthash].js"},
		"module": map[string]any{"rules": []any{"css"}},
	}

	got, err := Deep(a, b)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"output": map[string]any{"path": "/dist", "filename": "[name].[contenthash].js"},
		"module": map[string]any{"rules": []any{"js", "css"}},
	}, got)
}

func TestDeep_LaterFalsyScalarsStillOverride(t *testing.T) {
	a := map[string]any{"cache": true, "parallelism": 4, "name": "app"}
	b := map[string]any{"cache": false, "parallelism": 0, "name": ""}

	got, err := Deep(a, b)

	require.NoError(t, err)
	assert.Equal(t, false, got["cache"])
	assert.Equal(t, 0, got["parallelism"])
	assert.Equal(t, "", got["name"])
}

func TestDeep_MixedSequenceTypesAreAppended(t *testing.T) {
	a := map[string]any{"extensions": []string{".js"}}
	b := map[string]any{"extensions": []any{".ts"}}

	got, err := Deep(a, b)

	require.NoError(t, err)
	assert.Equal(t, []any{".js", ".ts"}, got["extensions"])
}

func TestDeep_SequenceReplacesNonSequence(t *testing.T) {
	tests := []struct {
		name string
		srcs []map[string]any
		want map[string]any
	}{
		{
			name: "scalar then sequence",
			srcs: []map[string]any{{"entry": "./a.js"}, {"entry": []any{"./b.js"}}},
			want: map[string]any{"entry": []any{"./b.js"}},
		},
		{
			name: "mapping then sequence",
			srcs: []map[string]any{{"x": map[string]any{"k": 1}}, {"x": []any{1}}},
			want: map[string]any{"x": []any{1}},
		},
		{
			name: "nested scalar then sequence",
			srcs: []map[string]any{
				{"resolve": map[string]any{"modules": "node_modules", "symlinks": false}},
				{"resolve": map[string]any{"modules": []any{"src", "node_modules"}}},
			},
			want: map[string]any{"resolve": map[string]any{"modules": []any{"src", "node_modules"}, "symlinks": false}},
		},
		{
			name: "replaced sequence keeps concatenating",
			srcs: []map[string]any{{"entry": "./a.js"}, {"entry": []any{"./b.js"}}, {"entry": []any{"./c.js"}}},
			want: map[string]any{"entry": []any{"./b.js", "./c.js"}},
		},
		{
			name: "null then sequence",
			srcs: []map[string]any{{"plugins": nil}, {"plugins": []any{"html"}}},
			want: map[string]any{"plugins": []any{"html"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Deep(tt.srcs...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeep_SequenceReplacementDoesNotModifyInputs(t *testing.T) {
	a := map[string]any{"entry": "./a.js"}
	b := map[string]any{"entry": []any{"./b.js"}}

	_, err := Deep(a, b)

	require.NoError(t, err)
	assert.Equal(t, "./a.js", a["entry"])
	assert.Equal(t, []any{"./b.js"}, b["entry"])
}

func TestDeep_DoesNotModifyInputs(t *testing.T) {
	a := map[string]any{"resolve": map[string]any{"alias": map[string]any{"@": "src"}}, "y": []any{1}}
	b := map[string]any{"resolve": map[string]any{"alias": map[string]any{"~": "lib"}}, "y": []any{2}}

	_, err := Deep(a, b)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"@": "src"}, a["resolve"].(map[string]any)["alias"])
	assert.Equal(t, []any{1}, a["y"])
	assert.Equal(t, map[string]any{"~": "lib"}, b["resolve"].(map[string]any)["alias"])
}

func TestDeep_NoSources(t *testing.T) {
	got, err := Deep()

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestShallow_ReplacesNestedValues(t *testing.T) {
	base := map[string]any{"paths": map[string]any{"src": "src", "dist": "dist"}, "name": "app"}
	named := map[string]any{"paths": map[string]any{"src": "lib"}}

	got := Shallow(base, named)

	assert.Equal(t, map[string]any{"paths": map[string]any{"src": "lib"}, "name": "app"}, got)
	assert.Equal(t, "app", base["name"])
}

func TestNormalize(t *testing.T) {
	type alias map[string]any

	in := map[string]any{
		"strings": []string{"a"},
		"anykeys": map[any]any{1: "one", "two": 2},
		"tables":  []map[string]any{{"k": "v"}},
		"named":   alias{"n": []int{1}},
		"array":   [2]int{1, 2},
		"bytes":   []byte("raw"),
		"nilmap":  map[string]int(nil),
		"scalar":  3.5,
	}

	got := NormalizeMap(in)

	assert.Equal(t, map[string]any{
		"strings": []any{"a"},
		"anykeys": map[string]any{"1": "one", "two": 2},
		"tables":  []any{map[string]any{"k": "v"}},
		"named":   map[string]any{"n": []any{1}},
		"array":   []any{1, 2},
		"bytes":   []byte("raw"),
		"nilmap":  map[string]any{},
		"scalar":  3.5,
	}, got)
}
