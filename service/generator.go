package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
)

// generator is one independently scheduled task producer of a scenario
type generator struct {
	exec     *ScenarioExecutor
	cfg      domain.GeneratorConfig
	interval time.Duration
	sampler  *Sampler
	selector *NodeSelector

	ticks atomic.Int64
}

func newGenerator(exec *ScenarioExecutor, cfg domain.GeneratorConfig, seed uint64) (*generator, error) {
	interval, err := cfg.Schedule.IntervalDuration()
	if err != nil {
		return nil, err
	}
	sampler := NewSampler(seed)
	return &generator{
		exec:     exec,
		cfg:      cfg,
		interval: interval,
		sampler:  sampler,
		selector: NewNodeSelector(exec.adapter, exec.adapter, sampler, exec.ref.Namespace, exec.opts.Simulation.NodeLabels),
	}, nil
}

func (g *generator) name() string {
	return g.cfg.DisplayName()
}

// run produces tasks every interval/timeScale of real time until the scenario
// stops or completes. Ticks are scheduled against deadlines so that slow ticks
// do not stretch the cadence.
func (g *generator) run(ctx context.Context) error {
	ctx = logger.WithFields(ctx, "generator", g.name())
	log := logger.Logger(ctx)
	log.Info().Msgf("started task generator %s, interval %s (%s real)", g.name(), g.interval, g.exec.vclock.ToReal(g.interval))
	defer func() {
		log.Info().Msgf("stopped task generator %s after %d ticks", g.name(), g.ticks.Load())
	}()

	clock := g.exec.clock
	poll := g.exec.opts.Simulation.PollInterval
	realInterval := g.exec.vclock.ToReal(g.interval)

	var next time.Time
	for g.exec.active() {
		if g.exec.Paused() {
			next = time.Time{}
			if !sleep(ctx, clock, poll) {
				return nil
			}
			continue
		}
		if !g.inActiveWindow() {
			next = time.Time{}
			GeneratorTicks.WithLabelValues(g.exec.ref.Name, g.name(), tickOutcomeSkipped).Inc()
			if !sleep(ctx, clock, poll) {
				return nil
			}
			continue
		}

		if next.IsZero() {
			next = clock.Now()
		}
		g.safeTick(ctx)

		next = next.Add(realInterval)
		if !sleep(ctx, clock, next.Sub(clock.Now())) {
			return nil
		}
	}
	return nil
}

// inActiveWindow reports whether the simulated time of day falls inside any
// configured window. No windows means always active.
func (g *generator) inActiveWindow() bool {
	windows := g.cfg.Schedule.ActiveWindows
	if len(windows) == 0 {
		return true
	}
	hhmm := g.exec.vclock.CurrentSimulatedTime().Format("15:04")
	for _, w := range windows {
		if w.Contains(hhmm) {
			return true
		}
	}
	return false
}

func (g *generator) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			GeneratorTicks.WithLabelValues(g.exec.ref.Name, g.name(), tickOutcomeError).Inc()
			logger.Logger(ctx).Error().Msgf("panic in task generator %s: %v", g.name(), r)
		}
	}()
	g.ticks.Add(1)
	if n := g.tick(ctx); n == 0 {
		GeneratorTicks.WithLabelValues(g.exec.ref.Name, g.name(), tickOutcomeEmpty).Inc()
		return
	}
	GeneratorTicks.WithLabelValues(g.exec.ref.Name, g.name(), tickOutcomeGenerated).Inc()
}

// tick samples a task count, resolves target VMs and registers the tasks.
// It returns the number of tasks created.
func (g *generator) tick(ctx context.Context) int {
	count := g.sampler.SampleCount(ctx, g.cfg.RateOrDefault())
	if count <= 0 {
		return 0
	}

	targets := g.targetVMs(ctx)
	if len(targets) == 0 {
		logger.Logger(ctx).Warn().Msgf("no target VMs found for generator %s", g.name())
		return 0
	}

	taskType := g.exec.spec.TaskType(g.cfg.TaskType)
	for i := 0; i < count; i++ {
		cpu := g.sampler.Sample(ctx, taskType.CPUOrDefault())
		mem := g.sampler.Sample(ctx, taskType.MemoryOrDefault())
		seconds := g.sampler.Sample(ctx, taskType.DurationOrDefault())
		vmID := g.sampler.Choice(targets)

		simulated := time.Duration(seconds * float64(time.Second))
		task := domain.ActiveTask{
			VMID:        vmID,
			CPU:         cpu,
			Memory:      mem,
			EndTime:     g.exec.clock.Now().Add(g.exec.vclock.ToReal(simulated)),
			Description: fmt.Sprintf("Task from %s", g.name()),
		}
		g.exec.registry.Register(ctx, task)
		g.exec.total.Add(1)
		TasksGenerated.WithLabelValues(g.exec.ref.Name, g.name()).Inc()

		logger.Logger(ctx).Debug().Msgf("assigned task to %s: CPU=%.2f, MEM=%.2f, duration=%.0fs", vmID, cpu, mem, seconds)
	}
	return count
}

func (g *generator) targetVMs(ctx context.Context) []string {
	assignment := g.cfg.Assignment
	switch assignment.StrategyOrDefault() {
	case domain.AssignmentRandom:
		if assignment.Pool == "" {
			return nil
		}
		return g.exec.spec.PoolVMs(assignment.Pool)
	case domain.AssignmentNodeAware:
		var targets []string
		for _, node := range g.selector.Select(ctx, assignment.NodeSelector) {
			vms, err := g.exec.adapter.ListVMsOnNode(ctx, g.exec.ref.Namespace, node)
			if err != nil {
				logger.Logger(ctx).Warn().Err(err).Msgf("list VMs on node %s failed", node)
				continue
			}
			count := g.sampler.SampleCount(ctx, assignment.VMSelection.CountOrDefault())
			if len(vms) == 0 {
				continue
			}
			targets = append(targets, g.sampler.SampleWithoutReplacement(vms, count)...)
		}
		return targets
	}
	logger.Logger(ctx).Warn().Msgf("unknown assignment strategy %q", assignment.Strategy)
	return nil
}
