package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gthulhu/scenario-controller/config"
	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ExecutorOptions carries the collaborators shared by every executor
type ExecutorOptions struct {
	Clock      clockwork.Clock
	Adapter    domain.ClusterAdapter
	Recorder   domain.RunRecorder // Optional run history
	Simulation config.SimulationConfig
}

func (o ExecutorOptions) withDefaults() ExecutorOptions {
	def := config.DefaultSimulationConfig()
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Simulation.TickInterval <= 0 {
		o.Simulation.TickInterval = def.TickInterval
	}
	if o.Simulation.StatusInterval <= 0 {
		o.Simulation.StatusInterval = def.StatusInterval
	}
	if o.Simulation.PollInterval <= 0 {
		o.Simulation.PollInterval = def.PollInterval
	}
	if o.Simulation.ShutdownGrace <= 0 {
		o.Simulation.ShutdownGrace = def.ShutdownGrace
	}
	if o.Simulation.NodeLabels == "" {
		o.Simulation.NodeLabels = def.NodeLabels
	}
	return o
}

// ScenarioExecutor runs one scenario: a main loop that sweeps expired tasks and
// reports status, plus one goroutine per enabled generator.
type ScenarioExecutor struct {
	ref      domain.ScenarioRef
	spec     domain.ScenarioSpec
	duration time.Duration
	opts     ExecutorOptions
	clock    clockwork.Clock
	adapter  domain.ClusterAdapter

	vclock     *VirtualClock
	registry   *ActiveTaskRegistry
	generators []*generator

	running atomic.Bool
	paused  atomic.Bool
	total   atomic.Int64

	reportMu   sync.Mutex // orders status writes against pause transitions
	mu         sync.RWMutex
	phase      domain.Phase
	message    string
	lastStatus time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewScenarioExecutor validates spec and prepares an executor. The virtual
// clock epoch is the construction instant. A malformed spec is a configuration
// error and nothing is started.
func NewScenarioExecutor(ref domain.ScenarioRef, spec domain.ScenarioSpec, opts ExecutorOptions) (*ScenarioExecutor, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	duration, err := spec.ParsedDuration()
	if err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	e := &ScenarioExecutor{
		ref:      ref,
		spec:     spec,
		duration: duration,
		opts:     opts,
		clock:    opts.Clock,
		adapter:  opts.Adapter,
		vclock:   NewVirtualClock(opts.Clock, spec.TimeScaleOrDefault()),
		registry: NewActiveTaskRegistry(opts.Adapter, ref.Namespace, ref.Name),
		phase:    domain.PhaseRunning,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}

	seed := spec.Seed
	if seed == 0 {
		seed = opts.Simulation.Seed
	}
	if seed == 0 {
		seed = uint64(opts.Clock.Now().UnixNano())
	}
	for idx, cfg := range spec.TaskGenerators {
		if !cfg.IsEnabled() {
			continue
		}
		gen, err := newGenerator(e, cfg, seed+uint64(idx)*1000)
		if err != nil {
			return nil, errors.Wrapf(err, "generator %s", cfg.DisplayName())
		}
		e.generators = append(e.generators, gen)
	}
	return e, nil
}

func (e *ScenarioExecutor) Ref() domain.ScenarioRef {
	return e.ref
}

func (e *ScenarioExecutor) Registry() *ActiveTaskRegistry {
	return e.registry
}

func (e *ScenarioExecutor) Clock() *VirtualClock {
	return e.vclock
}

func (e *ScenarioExecutor) TotalTasksGenerated() int64 {
	return e.total.Load()
}

// GeneratorTicks returns the number of generation ticks per generator name
func (e *ScenarioExecutor) GeneratorTicks() map[string]int64 {
	ticks := make(map[string]int64, len(e.generators))
	for _, g := range e.generators {
		ticks[g.name()] += g.ticks.Load()
	}
	return ticks
}

func (e *ScenarioExecutor) Paused() bool {
	return e.paused.Load()
}

// Done is closed once Run has returned
func (e *ScenarioExecutor) Done() <-chan struct{} {
	return e.done
}

// active reports whether loops should keep iterating
func (e *ScenarioExecutor) active() bool {
	return e.running.Load() && !e.vclock.IsComplete(e.duration)
}

// Run drives the scenario until it completes, fails or is stopped. It returns
// the error that failed the scenario, if any.
func (e *ScenarioExecutor) Run(ctx context.Context) (err error) {
	defer close(e.done)

	ctx = logger.WithFields(ctx, "scenario", e.ref.String())
	log := logger.Logger(ctx)
	log.Info().Msgf("starting scenario %s: duration %s, timeScale %vx, %d generators",
		e.ref, e.duration, e.vclock.Scale(), len(e.generators))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-e.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	e.running.Store(true)
	ScenariosActive.WithLabelValues(string(domain.PhaseRunning)).Inc()
	e.report(ctx, domain.PhaseRunning, "Scenario started")

	genCtx, cancelGenerators := context.WithCancel(ctx)
	defer cancelGenerators()
	var group errgroup.Group
	for _, g := range e.generators {
		group.Go(func() error {
			return g.run(genCtx)
		})
	}

	err = e.mainLoop(ctx)
	e.running.Store(false)
	cancelGenerators()
	e.joinGenerators(ctx, &group)

	stopped := ctx.Err() != nil || e.stopRequested()
	switch {
	case err != nil:
		log.Error().Err(err).Msgf("scenario %s failed", e.ref)
		e.report(context.WithoutCancel(ctx), domain.PhaseFailed, err.Error())
	case stopped:
		log.Info().Msgf("scenario %s stopped", e.ref)
		e.setPhase(domain.PhaseCompleted, "Scenario stopped")
	default:
		log.Info().Msgf("scenario %s completed, %d tasks generated", e.ref, e.total.Load())
		e.report(ctx, domain.PhaseCompleted, "Scenario execution finished")
	}
	return err
}

func (e *ScenarioExecutor) mainLoop(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic in scenario main loop: %v", r)
		}
	}()

	for e.active() {
		if !e.Paused() {
			e.registry.SweepExpired(ctx, e.clock.Now())
			if err := e.checkTimelineEvents(ctx); err != nil {
				return errors.WithMessage(err, "timeline events")
			}
			if err := e.checkConditionalEvents(ctx); err != nil {
				return errors.WithMessage(err, "conditional events")
			}
			if e.statusDue() {
				e.reportProgress(ctx)
			}
		}
		if !sleep(ctx, e.clock, e.opts.Simulation.TickInterval) {
			return nil
		}
	}
	return nil
}

// checkTimelineEvents is an extension point. Timeline events have no defined
// behavior yet and are not evaluated.
func (e *ScenarioExecutor) checkTimelineEvents(ctx context.Context) error {
	return nil
}

// checkConditionalEvents is an extension point, see checkTimelineEvents.
func (e *ScenarioExecutor) checkConditionalEvents(ctx context.Context) error {
	return nil
}

func (e *ScenarioExecutor) joinGenerators(ctx context.Context, group *errgroup.Group) {
	joined := make(chan error, 1)
	go func() {
		joined <- group.Wait()
	}()
	select {
	case err := <-joined:
		if err != nil {
			logger.Logger(ctx).Warn().Err(err).Msg("generator exited with error")
		}
	case <-e.clock.After(e.opts.Simulation.ShutdownGrace):
		logger.Logger(ctx).Warn().Msgf("generators did not stop within %s", e.opts.Simulation.ShutdownGrace)
	}
}

func (e *ScenarioExecutor) statusDue() bool {
	now := e.clock.Now()
	e.mu.RLock()
	last := e.lastStatus
	e.mu.RUnlock()
	return crossedBoundary(last, now, e.opts.Simulation.StatusInterval)
}

// crossedBoundary reports whether a wall-clock multiple of interval lies in (last, now].
// With a 10s interval reports land on :00, :10, :20 and so on, whatever the start time.
func crossedBoundary(last, now time.Time, interval time.Duration) bool {
	return now.Truncate(interval).After(last.Truncate(interval))
}

// reportProgress writes the periodic Running status unless a pause won the race
func (e *ScenarioExecutor) reportProgress(ctx context.Context) {
	e.reportMu.Lock()
	defer e.reportMu.Unlock()
	if e.Paused() {
		return
	}
	e.reportLocked(ctx, domain.PhaseRunning, "Simulated time: "+e.vclock.CurrentSimulatedTime().Format("15:04:05"))
}

// Stop asks the executor to stop. Loops observe it at their next wait.
func (e *ScenarioExecutor) Stop() {
	e.stopOnce.Do(func() {
		e.running.Store(false)
		close(e.stopCh)
	})
}

func (e *ScenarioExecutor) stopRequested() bool {
	select {
	case <-e.stopCh:
		return true
	default:
		return false
	}
}

// Pause suspends task generation and sweeping. The virtual clock keeps advancing.
func (e *ScenarioExecutor) Pause(ctx context.Context) error {
	if phase := e.Status().Phase; phase.IsTerminal() {
		return errors.Errorf("scenario %s already %s", e.ref, phase)
	}
	e.reportMu.Lock()
	defer e.reportMu.Unlock()
	if e.paused.Swap(true) {
		return nil
	}
	e.reportLocked(ctx, domain.PhasePaused, "Scenario paused")
	return nil
}

func (e *ScenarioExecutor) Resume(ctx context.Context) error {
	if phase := e.Status().Phase; phase.IsTerminal() {
		return errors.Errorf("scenario %s already %s", e.ref, phase)
	}
	e.reportMu.Lock()
	defer e.reportMu.Unlock()
	if !e.paused.Swap(false) {
		return nil
	}
	e.reportLocked(ctx, domain.PhaseRunning, "Scenario resumed")
	return nil
}

// Status returns a live snapshot with the last reported phase and message
func (e *ScenarioExecutor) Status() domain.ScenarioStatus {
	e.mu.RLock()
	phase, message := e.phase, e.message
	e.mu.RUnlock()
	return e.snapshot(phase, message)
}

func (e *ScenarioExecutor) snapshot(phase domain.Phase, message string) domain.ScenarioStatus {
	status := domain.ScenarioStatus{
		Phase:                phase,
		CurrentSimulatedTime: e.vclock.CurrentSimulatedTime(),
		ElapsedSimulatedTime: formatElapsed(e.vclock.ElapsedSimulated()),
		ElapsedRealTime:      formatElapsed(e.vclock.ElapsedReal()),
		TotalTasksGenerated:  e.total.Load(),
		Message:              message,
	}
	if phase == domain.PhaseCompleted {
		end := e.clock.Now()
		status.EndTime = &end
	}
	return status
}

func (e *ScenarioExecutor) setPhase(phase domain.Phase, message string) {
	e.mu.Lock()
	prev := e.phase
	e.phase, e.message = phase, message
	e.lastStatus = e.clock.Now()
	e.mu.Unlock()
	if prev != phase {
		ScenariosActive.WithLabelValues(string(prev)).Dec()
		if !phase.IsTerminal() {
			ScenariosActive.WithLabelValues(string(phase)).Inc()
		}
	}
}

// report records the new phase and pushes the status. Write failures are
// logged only.
func (e *ScenarioExecutor) report(ctx context.Context, phase domain.Phase, message string) {
	e.reportMu.Lock()
	defer e.reportMu.Unlock()
	e.reportLocked(ctx, phase, message)
}

func (e *ScenarioExecutor) reportLocked(ctx context.Context, phase domain.Phase, message string) {
	e.setPhase(phase, message)
	status := e.snapshot(phase, message)

	log := logger.Logger(ctx)
	if err := e.adapter.UpdateScenarioStatus(ctx, e.ref, status); err != nil {
		log.Error().Err(err).Msgf("failed to update status of scenario %s", e.ref)
	}
	if e.opts.Recorder == nil {
		return
	}
	record := &domain.ScenarioRunRecord{
		Namespace:  e.ref.Namespace,
		Name:       e.ref.Name,
		StartTime:  e.vclock.Start().UnixMilli(),
		Status:     status,
		RecordedAt: e.clock.Now().UnixMilli(),
	}
	if err := e.opts.Recorder.RecordStatus(ctx, record); err != nil {
		log.Warn().Err(err).Msgf("failed to record status of scenario %s", e.ref)
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%d:%02d:%02d", h, m, d/time.Second)
}

// sleep waits for d on clock. It returns false when ctx is done first.
func sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-clock.After(d):
		return true
	}
}
