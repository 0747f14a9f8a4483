package service

import (
	"context"
	"sync"
	"time"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/Gthulhu/scenario-controller/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

type vmTasks struct {
	mu    sync.Mutex
	tasks []domain.ActiveTask
}

// ActiveTaskRegistry owns the live tasks of every VM and pushes derived
// utilization to the VM store. Each VM entry has its own lock, held across
// the store write so pushes for one VM never go out of order.
type ActiveTaskRegistry struct {
	store     domain.VMStore
	namespace string
	vms       *util.KeyedMap[string, *vmTasks]

	active   prometheus.Gauge
	vmErrors prometheus.Counter
}

func NewActiveTaskRegistry(store domain.VMStore, namespace, scenario string) *ActiveTaskRegistry {
	return &ActiveTaskRegistry{
		store:     store,
		namespace: namespace,
		vms:       util.NewKeyedMap[string, *vmTasks](),
		active:    ActiveTasks.WithLabelValues(scenario),
		vmErrors:  VMUpdateErrors.WithLabelValues(scenario),
	}
}

func (r *ActiveTaskRegistry) entry(vmID string) *vmTasks {
	if e, ok := r.vms.Load(vmID); ok {
		return e
	}
	e, _ := r.vms.LoadOrStore(vmID, &vmTasks{})
	return e
}

// Register appends task to its VM and pushes the recomputed utilization
func (r *ActiveTaskRegistry) Register(ctx context.Context, task domain.ActiveTask) domain.Utilization {
	e := r.entry(task.VMID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tasks = append(e.tasks, task)
	r.active.Inc()
	return r.push(ctx, task.VMID, e.tasks)
}

// RecomputeUtilization sums the VM's live tasks and pushes the clamped result
func (r *ActiveTaskRegistry) RecomputeUtilization(ctx context.Context, vmID string) domain.Utilization {
	e := r.entry(vmID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return r.push(ctx, vmID, e.tasks)
}

// SweepExpired drops every task ended at now and pushes utilization once per
// affected VM. It returns the number of removed tasks.
func (r *ActiveTaskRegistry) SweepExpired(ctx context.Context, now time.Time) int {
	timer := prometheus.NewTimer(SweepDuration)
	defer timer.ObserveDuration()

	removed := 0
	r.vms.Range(func(vmID string, e *vmTasks) bool {
		e.mu.Lock()
		defer e.mu.Unlock()

		live := make([]domain.ActiveTask, 0, len(e.tasks))
		for _, t := range e.tasks {
			if !t.Expired(now) {
				live = append(live, t)
			}
		}
		if n := len(e.tasks) - len(live); n > 0 {
			e.tasks = live
			removed += n
			r.push(ctx, vmID, live)
		}
		return true
	})
	r.active.Sub(float64(removed))
	return removed
}

// Tasks returns a snapshot of the VM's live tasks
func (r *ActiveTaskRegistry) Tasks(vmID string) []domain.ActiveTask {
	e, ok := r.vms.Load(vmID)
	if !ok {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.ActiveTask, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Utilization returns the clamped utilization of the VM without pushing it
func (r *ActiveTaskRegistry) Utilization(vmID string) domain.Utilization {
	return sumUtilization(r.Tasks(vmID))
}

// VMs lists every VM that has ever received a task, sorted
func (r *ActiveTaskRegistry) VMs() []string {
	return r.vms.SortedKeys()
}

// Len returns the number of live tasks across all VMs
func (r *ActiveTaskRegistry) Len() int {
	n := 0
	r.vms.Range(func(_ string, e *vmTasks) bool {
		e.mu.Lock()
		n += len(e.tasks)
		e.mu.Unlock()
		return true
	})
	return n
}

// push must be called with the VM entry locked
func (r *ActiveTaskRegistry) push(ctx context.Context, vmID string, tasks []domain.ActiveTask) domain.Utilization {
	u := sumUtilization(tasks)
	if err := r.store.UpdateUtilization(ctx, r.namespace, vmID, u); err != nil {
		r.vmErrors.Inc()
		logger.Logger(ctx).Warn().Err(err).Msgf("update utilization of vm %s failed", vmID)
	}
	return u
}

func sumUtilization(tasks []domain.ActiveTask) domain.Utilization {
	var cpu, mem float64
	for _, t := range tasks {
		cpu += t.CPU
		mem += t.Memory
	}
	return domain.Utilization{
		CPU:    clamp(cpu, 0, 1),
		Memory: clamp(mem, 0, 1),
	}
}
