package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveWindowContains(t *testing.T) {
	w := ActiveWindow{Start: "09:00", End: "17:00"}
	assert.True(t, w.Contains("09:00"))
	assert.True(t, w.Contains("12:30"))
	assert.True(t, w.Contains("17:00"))
	assert.False(t, w.Contains("08:59"))
	assert.False(t, w.Contains("17:01"))

	open := ActiveWindow{}
	assert.True(t, open.Contains("00:00"))
	assert.True(t, open.Contains("23:59"))
}

func TestParseScenarioSpec(t *testing.T) {
	raw := map[string]any{
		"timeScale": 3600,
		"duration":  "1h",
		"taskGenerators": []any{
			map[string]any{
				"name":     "steady",
				"schedule": map[string]any{"type": "periodic", "interval": "1m"},
				"rate":     map[string]any{"value": 2},
				"taskType": "batch",
				"assignment": map[string]any{
					"strategy": "random",
					"pool":     "web",
				},
			},
			map[string]any{
				"name":    "off",
				"enabled": false,
			},
		},
		"taskTypes": map[string]any{
			"batch": map[string]any{
				"resources": map[string]any{
					"cpu": map[string]any{"distribution": "normal", "min": 0.1, "max": 0.3},
				},
				"duration": map[string]any{"value": 120},
			},
		},
		"vmPools": map[string]any{
			"web":   map[string]any{"vms": []any{"vm-1", "vm-2"}},
			"cache": []any{"vm-3"},
		},
	}

	spec, err := ParseScenarioSpec(raw)
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	assert.Equal(t, 3600.0, spec.TimeScaleOrDefault())
	d, err := spec.ParsedDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)

	require.Len(t, spec.TaskGenerators, 2)
	gen := spec.TaskGenerators[0]
	assert.True(t, gen.IsEnabled())
	assert.False(t, spec.TaskGenerators[1].IsEnabled())
	assert.Equal(t, 2.0, *gen.RateOrDefault().Value)
	assert.Equal(t, AssignmentRandom, gen.Assignment.StrategyOrDefault())

	taskType := spec.TaskType("batch")
	assert.Equal(t, DistributionNormal, taskType.CPUOrDefault().TypeOrDefault())
	assert.Equal(t, 0.1, *taskType.MemoryOrDefault().Value, "memory defaults to a fixed 0.1")
	assert.Equal(t, 120.0, *taskType.DurationOrDefault().Value)

	assert.Equal(t, []string{"vm-1", "vm-2"}, spec.PoolVMs("web"))
	assert.Equal(t, []string{"vm-3"}, spec.PoolVMs("cache"))
	assert.Empty(t, spec.PoolVMs("missing"))
}

func TestScenarioSpecDefaults(t *testing.T) {
	spec, err := ParseScenarioSpec(map[string]any{})
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	assert.Equal(t, 1.0, spec.TimeScaleOrDefault())
	d, err := spec.ParsedDuration()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	gen := GeneratorConfig{}
	assert.Equal(t, "unnamed", gen.DisplayName())
	assert.Equal(t, 1.0, *gen.RateOrDefault().Value)
	interval, err := gen.Schedule.IntervalDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, interval)
	assert.Equal(t, 1.0, *gen.Assignment.VMSelection.CountOrDefault().Value)

	taskType := spec.TaskType("missing")
	assert.Equal(t, 0.1, *taskType.CPUOrDefault().Value)
	assert.Equal(t, 60.0, *taskType.DurationOrDefault().Value)

	selector := NodeSelectorSpec{}
	assert.Equal(t, SelectorStatic, selector.TypeOrDefault())
	assert.Equal(t, MetricCPUUsage, selector.MetricOrDefault())
	assert.Equal(t, ">", selector.OperatorOrDefault())
	assert.Equal(t, 0.5, selector.ThresholdOrDefault())
	assert.Equal(t, 1, selector.CountOrDefault())
}

func TestScenarioSpecValidate(t *testing.T) {
	testCases := []struct {
		name string
		raw  map[string]any
		err  error
	}{
		{"negative time scale", map[string]any{"timeScale": -1}, ErrInvalidScenario},
		{"bad duration", map[string]any{"duration": "1 day"}, ErrInvalidDuration},
		{"bad interval", map[string]any{"taskGenerators": []any{
			map[string]any{"name": "g", "schedule": map[string]any{"interval": "soon"}},
		}}, ErrInvalidDuration},
		{"zero interval", map[string]any{"taskGenerators": []any{
			map[string]any{"name": "g", "schedule": map[string]any{"interval": "0s"}},
		}}, ErrInvalidDuration},
		{"overflowing interval", map[string]any{"taskGenerators": []any{
			map[string]any{"name": "g", "schedule": map[string]any{"interval": "200000d"}},
		}}, ErrInvalidDuration},
		{"overflowing duration", map[string]any{"duration": "200000d"}, ErrInvalidDuration},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := ParseScenarioSpec(tc.raw)
			require.NoError(t, err)
			require.ErrorIs(t, spec.Validate(), tc.err)
		})
	}

	disabled, err := ParseScenarioSpec(map[string]any{"taskGenerators": []any{
		map[string]any{"enabled": false, "schedule": map[string]any{"interval": "soon"}},
	}})
	require.NoError(t, err)
	require.NoError(t, disabled.Validate(), "disabled generators are not validated")

	_, err = ParseScenarioSpec(map[string]any{"timeScale": "fast"})
	require.ErrorIs(t, err, ErrInvalidScenario)
}

func TestDistributionDefaults(t *testing.T) {
	lo, hi := 2.0, 8.0
	d := DistributionSpec{Min: &lo, Max: &hi}
	assert.Equal(t, DistributionUniform, d.TypeOrDefault())
	assert.Equal(t, 5.0, d.MeanOrDefault())
	assert.Equal(t, 1.0, d.StddevOrDefault())
	assert.Equal(t, 1.0, d.LambdaOrDefault())
	assert.False(t, d.IsZero())
	assert.True(t, DistributionSpec{}.IsZero())
}

func TestScenarioStatusToUnstructured(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	status := ScenarioStatus{
		Phase:                PhaseRunning,
		CurrentSimulatedTime: now,
		TotalTasksGenerated:  7,
	}
	out := status.ToUnstructured()
	assert.Equal(t, "Running", out["phase"])
	assert.Equal(t, "2024-05-01T10:00:00Z", out["currentSimulatedTime"])
	assert.Equal(t, int64(7), out["totalTasksGenerated"])
	assert.NotContains(t, out, "endTime")

	status.Phase = PhaseCompleted
	status.EndTime = &now
	assert.Equal(t, "2024-05-01T10:00:00Z", status.ToUnstructured()["endTime"])
	assert.True(t, PhaseCompleted.IsTerminal())
	assert.False(t, PhasePaused.IsTerminal())
}
