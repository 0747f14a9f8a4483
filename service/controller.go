package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/Gthulhu/scenario-controller/pkg/util"
	"github.com/pkg/errors"
)

// ScenarioController maps scenario names to live executors and reacts to
// scenario notifications.
type ScenarioController struct {
	namespace string
	opts      ExecutorOptions
	executors *util.KeyedMap[string, *ScenarioExecutor]
	wg        sync.WaitGroup
}

func NewScenarioController(namespace string, opts ExecutorOptions) *ScenarioController {
	return &ScenarioController{
		namespace: namespace,
		opts:      opts.withDefaults(),
		executors: util.NewKeyedMap[string, *ScenarioExecutor](),
	}
}

// Run consumes the scenario watch stream until ctx is done, then stops every
// executor and waits for them within the shutdown grace period.
func (c *ScenarioController) Run(ctx context.Context) error {
	log := logger.Logger(ctx)
	log.Info().Msgf("starting scenario controller in namespace %s", c.namespace)

	events, err := c.opts.Adapter.WatchScenarios(ctx, c.namespace)
	if err != nil {
		return errors.WithMessage(err, "watch scenarios")
	}
	defer c.Shutdown(context.WithoutCancel(ctx))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.Info().Msgf("event %s for scenario %s", ev.Type, ev.Name)
			if err := c.HandleEvent(ctx, ev); err != nil {
				log.Error().Err(err).Msgf("handle %s event for scenario %s", ev.Type, ev.Name)
			}
		}
	}
}

// HandleEvent applies one notification. Modifications are not applied to a
// running scenario; it has to be deleted and recreated.
func (c *ScenarioController) HandleEvent(ctx context.Context, ev domain.ScenarioEvent) error {
	ns := ev.Namespace
	if ns == "" {
		ns = c.namespace
	}
	ref := domain.ScenarioRef{Namespace: ns, Name: ev.Name}

	switch ev.Type {
	case domain.EventAdded:
		if _, ok := c.executors.Load(ev.Name); ok {
			logger.Logger(ctx).Warn().Msgf("scenario %s already exists", ev.Name)
			return nil
		}
		return c.StartScenario(ctx, ref, ev.Spec)
	case domain.EventModified:
		logger.Logger(ctx).Info().Msgf("scenario %s modified (restart to apply changes)", ev.Name)
		return nil
	case domain.EventDeleted:
		err := c.StopScenario(ctx, ev.Name)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	logger.Logger(ctx).Warn().Msgf("unknown event type %q for scenario %s", ev.Type, ev.Name)
	return nil
}

// StartScenario parses raw, builds an executor and runs it in its own goroutine.
// A configuration error is reported as a Failed status and returned.
func (c *ScenarioController) StartScenario(ctx context.Context, ref domain.ScenarioRef, raw map[string]any) error {
	spec, err := domain.ParseScenarioSpec(raw)
	if err != nil {
		c.reportConfigError(ctx, ref, err)
		return err
	}
	exec, err := NewScenarioExecutor(ref, spec, c.opts)
	if err != nil {
		c.reportConfigError(ctx, ref, err)
		return err
	}
	if _, loaded := c.executors.LoadOrStore(ref.Name, exec); loaded {
		return fmt.Errorf("%w: %s", domain.ErrScenarioExists, ref.Name)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_ = exec.Run(ctx)
	}()
	logger.Logger(ctx).Info().Msgf("started scenario %s", ref)
	return nil
}

func (c *ScenarioController) reportConfigError(ctx context.Context, ref domain.ScenarioRef, cause error) {
	status := domain.ScenarioStatus{
		Phase:                domain.PhaseFailed,
		CurrentSimulatedTime: c.opts.Clock.Now(),
		ElapsedSimulatedTime: formatElapsed(0),
		ElapsedRealTime:      formatElapsed(0),
		Message:              cause.Error(),
	}
	if err := c.opts.Adapter.UpdateScenarioStatus(ctx, ref, status); err != nil {
		logger.Logger(ctx).Error().Err(err).Msgf("failed to update status of scenario %s", ref)
	}
}

// StopScenario signals the executor to stop and forgets it
func (c *ScenarioController) StopScenario(ctx context.Context, name string) error {
	exec, ok := c.executors.LoadAndDelete(name)
	if !ok {
		return fmt.Errorf("%w: scenario %s", domain.ErrNotFound, name)
	}
	exec.Stop()
	logger.Logger(ctx).Info().Msgf("stopped scenario %s", name)
	return nil
}

// Executor returns the live executor for name
func (c *ScenarioController) Executor(name string) (*ScenarioExecutor, bool) {
	return c.executors.Load(name)
}

// Executors returns every live executor ordered by name
func (c *ScenarioController) Executors() []*ScenarioExecutor {
	return c.executors.SortedValues()
}

// Shutdown stops all executors and waits for them up to the shutdown grace
func (c *ScenarioController) Shutdown(ctx context.Context) {
	c.executors.Range(func(_ string, exec *ScenarioExecutor) bool {
		exec.Stop()
		return true
	})
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-c.opts.Clock.After(c.opts.Simulation.ShutdownGrace):
		logger.Logger(ctx).Warn().Msg("executors did not stop within shutdown grace")
	case <-ctx.Done():
	}
}
