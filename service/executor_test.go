package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Gthulhu/scenario-controller/adapter/memory"
	"github.com/Gthulhu/scenario-controller/config"
	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fastSimulation = config.SimulationConfig{
	TickInterval:   10 * time.Millisecond,
	StatusInterval: 100 * time.Millisecond,
	PollInterval:   10 * time.Millisecond,
	ShutdownGrace:  time.Second,
}

func singlePoolSpec(duration string, taskSeconds float64) domain.ScenarioSpec {
	return domain.ScenarioSpec{
		TimeScale: 3600,
		Duration:  duration,
		Seed:      1,
		TaskGenerators: []domain.GeneratorConfig{{
			Name:     "steady",
			Schedule: domain.Schedule{Type: domain.SchedulePeriodic, Interval: "1m"},
			Rate:     domain.FixedValue(1),
			TaskType: "short",
			Assignment: domain.Assignment{
				Strategy: domain.AssignmentRandom,
				Pool:     "single",
			},
		}},
		TaskTypes: map[string]domain.TaskType{
			"short": {Duration: domain.FixedValue(taskSeconds)},
		},
		VMPools: map[string]domain.VMPool{
			"single": {VMs: []string{"vm-1"}},
		},
	}
}

func newFleet() *memory.Fleet {
	fleet := memory.NewFleet()
	fleet.AddNode("kwok-1", map[string]string{"type": "kwok"})
	fleet.AddVM("default", "vm-1", "kwok-1")
	return fleet
}

func TestExecutorEndToEnd(t *testing.T) {
	fleet := newFleet()
	recorder := domain.NewMockRunRecorder(t)
	var (
		mu      sync.Mutex
		records []*domain.ScenarioRunRecord
	)
	recorder.EXPECT().RecordStatus(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, record *domain.ScenarioRunRecord) error {
		mu.Lock()
		defer mu.Unlock()
		records = append(records, record)
		return nil
	})

	ref := domain.ScenarioRef{Namespace: "default", Name: "hourly"}
	exec, err := service.NewScenarioExecutor(ref, singlePoolSpec("1h", 60), service.ExecutorOptions{
		Adapter:    fleet,
		Recorder:   recorder,
		Simulation: fastSimulation,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, exec.Run(ctx))

	total := exec.TotalTasksGenerated()
	assert.InDelta(t, 60, total, 1, "one task per simulated minute over one simulated hour")
	assert.Equal(t, total, exec.GeneratorTicks()["steady"])

	status, ok := fleet.LastStatus(ref)
	require.True(t, ok)
	assert.Equal(t, domain.PhaseCompleted, status.Phase)
	assert.Equal(t, total, status.TotalTasksGenerated)
	assert.Equal(t, "Scenario execution finished", status.Message)
	require.NotNil(t, status.EndTime)

	history := fleet.StatusHistory(ref)
	assert.Equal(t, domain.PhaseRunning, history[0].Phase)
	assert.Equal(t, "Scenario started", history[0].Message)

	// only tasks whose compressed lifetime had not elapsed remain
	tasks := exec.Registry().Tasks("vm-1")
	assert.LessOrEqual(t, len(tasks), 3)
	u, ok := fleet.Utilization("default", "vm-1")
	require.True(t, ok)
	assert.InDelta(t, 0.1*float64(len(tasks)), u.CPU, 1e-9)

	exec.Registry().SweepExpired(context.Background(), time.Now().Add(time.Second))
	u, _ = fleet.Utilization("default", "vm-1")
	assert.Equal(t, domain.Utilization{}, u)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, records)
	last := records[len(records)-1]
	assert.Equal(t, domain.PhaseCompleted, last.Status.Phase)
	assert.Equal(t, "hourly", last.Name)
	assert.Equal(t, exec.Clock().Start().UnixMilli(), last.StartTime)
}

func TestExecutorPauseAndResume(t *testing.T) {
	fleet := newFleet()
	ref := domain.ScenarioRef{Namespace: "default", Name: "pausable"}
	exec, err := service.NewScenarioExecutor(ref, singlePoolSpec("24h", 60), service.ExecutorOptions{
		Adapter:    fleet,
		Simulation: fastSimulation,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runErr := make(chan error, 1)
	go func() {
		runErr <- exec.Run(ctx)
	}()

	require.Eventually(t, func() bool { return exec.TotalTasksGenerated() > 3 }, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, exec.Pause(ctx))
	assert.Equal(t, domain.PhasePaused, exec.Status().Phase)
	last, _ := fleet.LastStatus(ref)
	assert.Equal(t, domain.PhasePaused, last.Phase)

	time.Sleep(50 * time.Millisecond)
	paused := exec.TotalTasksGenerated()
	elapsed := exec.Clock().ElapsedSimulated()
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, paused, exec.TotalTasksGenerated(), "no tasks while paused")
	assert.Greater(t, exec.Clock().ElapsedSimulated(), elapsed, "the virtual clock keeps running while paused")

	require.NoError(t, exec.Resume(ctx))
	assert.Equal(t, domain.PhaseRunning, exec.Status().Phase)
	require.Eventually(t, func() bool { return exec.TotalTasksGenerated() > paused }, 5*time.Second, 5*time.Millisecond)

	exec.Stop()
	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("executor did not stop")
	}
	<-exec.Done()
	assert.True(t, exec.Status().Phase.IsTerminal())
	require.Error(t, exec.Pause(ctx), "terminal scenarios cannot be paused")
}

func TestExecutorActiveWindows(t *testing.T) {
	spec := singlePoolSpec("10m", 60)
	spec.TaskGenerators[0].Schedule.ActiveWindows = []domain.ActiveWindow{{Start: "25:00", End: "25:59"}}
	spec.TaskGenerators = append(spec.TaskGenerators, domain.GeneratorConfig{
		Name:       "always",
		Schedule:   domain.Schedule{Interval: "1m", ActiveWindows: []domain.ActiveWindow{{Start: "00:00", End: "23:59"}}},
		Rate:       domain.FixedValue(2),
		TaskType:   "short",
		Assignment: domain.Assignment{Pool: "single"},
	})

	fleet := newFleet()
	exec, err := service.NewScenarioExecutor(domain.ScenarioRef{Namespace: "default", Name: "windows"}, spec, service.ExecutorOptions{
		Adapter:    fleet,
		Simulation: fastSimulation,
	})
	require.NoError(t, err)
	require.NoError(t, exec.Run(context.Background()))

	ticks := exec.GeneratorTicks()
	assert.Zero(t, ticks["steady"], "generator outside its window never ticks")
	assert.Positive(t, ticks["always"])
	assert.Equal(t, 2*ticks["always"], exec.TotalTasksGenerated())
}

func TestExecutorNodeAwareAssignment(t *testing.T) {
	fleet := memory.NewFleet()
	fleet.AddNode("kwok-busy", map[string]string{"type": "kwok"})
	fleet.AddNode("kwok-idle", map[string]string{"type": "kwok"})
	fleet.AddVM("default", "busy-1", "kwok-busy")
	fleet.AddVM("default", "busy-2", "kwok-busy")
	fleet.AddVM("default", "idle-1", "kwok-idle")
	fleet.AddPod("default", "kwok-busy", 0.8, 0.4)
	fleet.AddPod("default", "kwok-idle", 0.1, 0.1)

	spec := domain.ScenarioSpec{
		TimeScale: 3600,
		Duration:  "10m",
		Seed:      3,
		TaskGenerators: []domain.GeneratorConfig{{
			Name:     "hotspot",
			Schedule: domain.Schedule{Interval: "1m"},
			TaskType: "long",
			Assignment: domain.Assignment{
				Strategy: domain.AssignmentNodeAware,
				NodeSelector: domain.NodeSelectorSpec{
					Type:     domain.SelectorDynamic,
					Strategy: domain.StrategyMaxMetric,
				},
				VMSelection: domain.VMSelection{Count: domain.FixedValue(2)},
			},
		}},
		TaskTypes: map[string]domain.TaskType{
			"long": {
				Resources: domain.TaskResources{CPU: domain.FixedValue(0.05), Memory: domain.FixedValue(0.02)},
				Duration:  domain.FixedValue(3600),
			},
		},
	}
	exec, err := service.NewScenarioExecutor(domain.ScenarioRef{Namespace: "default", Name: "hotspot"}, spec, service.ExecutorOptions{
		Adapter:    fleet,
		Simulation: fastSimulation,
	})
	require.NoError(t, err)
	require.NoError(t, exec.Run(context.Background()))

	require.Positive(t, exec.TotalTasksGenerated())
	assert.Subset(t, []string{"busy-1", "busy-2"}, exec.Registry().VMs())
	assert.Zero(t, fleet.UpdateCount("default", "idle-1"))
}

func TestExecutorRejectsInvalidSpec(t *testing.T) {
	fleet := newFleet()
	spec := singlePoolSpec("forever", 60)
	_, err := service.NewScenarioExecutor(domain.ScenarioRef{Namespace: "default", Name: "bad"}, spec, service.ExecutorOptions{Adapter: fleet})
	require.ErrorIs(t, err, domain.ErrInvalidDuration)

	spec = singlePoolSpec("1h", 60)
	spec.TaskGenerators[0].Schedule.Interval = "often"
	_, err = service.NewScenarioExecutor(domain.ScenarioRef{Namespace: "default", Name: "bad"}, spec, service.ExecutorOptions{Adapter: fleet})
	require.ErrorIs(t, err, domain.ErrInvalidDuration)

	// an interval that wraps negative would never wait between ticks
	for _, interval := range []string{"200000d", "0s"} {
		spec = singlePoolSpec("2m", 60)
		spec.TaskGenerators[0].Schedule.Interval = interval
		_, err = service.NewScenarioExecutor(domain.ScenarioRef{Namespace: "default", Name: "bad"}, spec, service.ExecutorOptions{Adapter: fleet})
		require.ErrorIs(t, err, domain.ErrInvalidDuration, interval)
	}
	assert.Zero(t, fleet.UpdateCount("default", "vm-1"))
}

// panickyFleet fails the periodic status report of the main loop
type panickyFleet struct {
	*memory.Fleet
}

func (f panickyFleet) UpdateScenarioStatus(ctx context.Context, ref domain.ScenarioRef, status domain.ScenarioStatus) error {
	if strings.HasPrefix(status.Message, "Simulated time") {
		panic("status backend exploded")
	}
	return f.Fleet.UpdateScenarioStatus(ctx, ref, status)
}

func TestExecutorMainLoopFailure(t *testing.T) {
	fleet := newFleet()
	ref := domain.ScenarioRef{Namespace: "default", Name: "doomed"}
	exec, err := service.NewScenarioExecutor(ref, singlePoolSpec("24h", 60), service.ExecutorOptions{
		Adapter:    panickyFleet{Fleet: fleet},
		Simulation: fastSimulation,
	})
	require.NoError(t, err)

	err = exec.Run(context.Background())
	require.Error(t, err)

	status, ok := fleet.LastStatus(ref)
	require.True(t, ok)
	assert.Equal(t, domain.PhaseFailed, status.Phase)
	assert.Contains(t, status.Message, "status backend exploded")
	assert.Nil(t, status.EndTime)
	assert.Equal(t, domain.PhaseFailed, exec.Status().Phase)
}
