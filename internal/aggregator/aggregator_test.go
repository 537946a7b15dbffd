package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/get-webpack-config/internal/mock"
	"github.com/MKhiriev/get-webpack-config/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func fromMap(configs map[string]models.Configuration) LoadFunc {
	return func(name string) (models.Configuration, error) {
		return configs[name], nil
	}
}

var (
	configA = models.Configuration{"x": 1, "y": []any{1}}
	configB = models.Configuration{"x": 2, "y": []any{2}}
)

// ── Aggregate ─────────────────────────────────────────────────────────────────

func TestAggregate_ScalarOverrideAndSequenceConcat(t *testing.T) {
	got, err := Aggregate([]string{"a", "b"}, fromMap(map[string]models.Configuration{"a": configA, "b": configB}))

	require.NoError(t, err)
	assert.Equal(t, models.Configuration{"x": 2, "y": []any{1, 2}}, got)
}

func TestAggregate_OrderSensitive(t *testing.T) {
	load := fromMap(map[string]models.Configuration{"a": configA, "b": configB})

	ab, err := Aggregate([]string{"a", "b"}, load)
	require.NoError(t, err)
	ba, err := Aggregate([]string{"b", "a"}, load)
	require.NoError(t, err)

	assert.NotEqual(t, ab, ba)
	assert.Equal(t, models.Configuration{"x": 1, "y": []any{2, 1}}, ba)
}

func TestAggregate_SingleNameIsIdentity(t *testing.T) {
	cfg := models.Configuration{
		"entry":  map[string]any{"main": "./src/main.js"},
		"module": map[string]any{"rules": []any{map[string]any{"test": `\.js$`}}},
		"cache":  false,
	}

	got, err := Aggregate([]string{"a"}, fromMap(map[string]models.Configuration{"a": cfg}))

	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestAggregate_DeterministicAcrossRuns(t *testing.T) {
	load := fromMap(map[string]models.Configuration{"a": configA, "b": configB})

	first, err := Aggregate([]string{"a", "b"}, load)
	require.NoError(t, err)
	second, err := Aggregate([]string{"a", "b"}, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []any{1}, configA["y"], "inputs must not be modified")
}

func TestAggregate_SameNameTwiceConcatenates(t *testing.T) {
	got, err := Aggregate([]string{"a", "a"}, fromMap(map[string]models.Configuration{"a": configA}))

	require.NoError(t, err)
	assert.Equal(t, models.Configuration{"x": 1, "y": []any{1, 1}}, got)
}

func TestAggregate_NoNames(t *testing.T) {
	got, err := Aggregate(nil, fromMap(nil))

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoNames)
}

func TestAggregate_StopsAtFirstError(t *testing.T) {
	var calls []string
	load := func(name string) (models.Configuration, error) {
		calls = append(calls, name)
		if name == "broken" {
			return nil, assert.AnError
		}
		return models.Configuration{}, nil
	}

	got, err := Aggregate([]string{"a", "broken", "c"}, load)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), `"broken"`)
	assert.Equal(t, []string{"a", "broken"}, calls)
}

// ── Aggregator ────────────────────────────────────────────────────────────────

func TestAggregator_ModesReachLoader(t *testing.T) {
	tests := []struct {
		name string
		mode models.Mode
		call func(a *Aggregator, names ...string) (models.Configuration, error)
	}{
		{"build", models.Modern, (*Aggregator).Build},
		{"legacy", models.Legacy, (*Aggregator).Legacy},
		{"modern", models.Modern, (*Aggregator).Modern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := mock.NewMockConfigLoader(ctrl)

			gomock.InOrder(
				loader.EXPECT().Load(tt.mode, "a").Return(configA, nil),
				loader.EXPECT().Load(tt.mode, "b").Return(configB, nil),
			)

			got, err := tt.call(New(loader), "a", "b")

			require.NoError(t, err)
			assert.Equal(t, models.Configuration{"x": 2, "y": []any{1, 2}}, got)
		})
	}
}

func TestAggregator_BuildMatchesModern(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(models.Modern, "a").Return(configA, nil).Times(2)

	a := New(loader)
	build, err := a.Build("a")
	require.NoError(t, err)
	modern, err := a.Modern("a")
	require.NoError(t, err)

	assert.Equal(t, modern, build)
}

func TestAggregator_LoaderErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(models.Legacy, "missing").Return(nil, assert.AnError)

	got, err := New(loader).Legacy("missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, assert.AnError)
}
