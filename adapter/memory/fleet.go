// Package memory provides an in-process fleet of simulation nodes, VMs and
// scenario statuses. It backs dry runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Gthulhu/scenario-controller/domain"
	"k8s.io/apimachinery/pkg/labels"
)

type vm struct {
	node        string
	utilization domain.Utilization
	updates     int
}

type watcher struct {
	events chan domain.ScenarioEvent
	done   chan struct{}
}

type pod struct {
	node   string
	cpu    float64
	memory float64
}

// Fleet implements domain.ClusterAdapter in memory
type Fleet struct {
	mu       sync.RWMutex
	nodes    map[string]labels.Set
	vms      map[string]map[string]*vm // namespace -> name
	pods     map[string][]pod          // namespace -> pods
	statuses map[domain.ScenarioRef][]domain.ScenarioStatus
	watchers []*watcher
}

func NewFleet() *Fleet {
	return &Fleet{
		nodes:    map[string]labels.Set{},
		vms:      map[string]map[string]*vm{},
		pods:     map[string][]pod{},
		statuses: map[domain.ScenarioRef][]domain.ScenarioStatus{},
	}
}

var _ domain.ClusterAdapter = (*Fleet)(nil)

func (f *Fleet) AddNode(name string, nodeLabels map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nodes[name] = labels.Set(nodeLabels)
}

// AddVM registers a VM scheduled on node. An empty node leaves it unscheduled.
func (f *Fleet) AddVM(namespace, name, node string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.vms[namespace] == nil {
		f.vms[namespace] = map[string]*vm{}
	}
	f.vms[namespace][name] = &vm{node: node}
}

// AddPod registers a workload pod whose consumption counts toward node metrics
func (f *Fleet) AddPod(namespace, node string, cpu, memory float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pods[namespace] = append(f.pods[namespace], pod{node: node, cpu: cpu, memory: memory})
}

// Utilization returns the last utilization written for a VM
func (f *Fleet) Utilization(namespace, name string) (domain.Utilization, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.vms[namespace][name]
	if !ok {
		return domain.Utilization{}, false
	}
	return v.utilization, true
}

// UpdateCount returns how many utilization writes a VM received
func (f *Fleet) UpdateCount(namespace, name string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if v, ok := f.vms[namespace][name]; ok {
		return v.updates
	}
	return 0
}

// LastStatus returns the most recent status written for ref
func (f *Fleet) LastStatus(ref domain.ScenarioRef) (domain.ScenarioStatus, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	history := f.statuses[ref]
	if len(history) == 0 {
		return domain.ScenarioStatus{}, false
	}
	return history[len(history)-1], true
}

// StatusHistory returns every status written for ref in order
func (f *Fleet) StatusHistory(ref domain.ScenarioRef) []domain.ScenarioStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.ScenarioStatus, len(f.statuses[ref]))
	copy(out, f.statuses[ref])
	return out
}

// Emit delivers ev to every open watch. It blocks until each watcher accepts
// it or goes away.
func (f *Fleet) Emit(ev domain.ScenarioEvent) {
	f.mu.RLock()
	watchers := append([]*watcher(nil), f.watchers...)
	f.mu.RUnlock()
	for _, w := range watchers {
		select {
		case w.events <- ev:
		case <-w.done:
		}
	}
}

func (f *Fleet) ListNodes(ctx context.Context, labelSelector string) ([]string, error) {
	selector, err := labels.Parse(labelSelector)
	if err != nil {
		return nil, fmt.Errorf("parse label selector %q: %w", labelSelector, err)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var names []string
	for name, set := range f.nodes {
		if selector.Matches(set) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *Fleet) NodeMetric(ctx context.Context, nodeName, metric, namespace string) (float64, error) {
	if metric != domain.MetricCPUUsage && metric != domain.MetricMemoryUsage {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownMetric, metric)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var total float64
	for _, p := range f.pods[namespace] {
		if p.node != nodeName {
			continue
		}
		if metric == domain.MetricCPUUsage {
			total += p.cpu
		} else {
			total += p.memory
		}
	}
	return total, nil
}

func (f *Fleet) UpdateUtilization(ctx context.Context, namespace, vmID string, utilization domain.Utilization) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.vms[namespace][vmID]
	if !ok {
		return fmt.Errorf("%w: virtual machine %s/%s", domain.ErrNotFound, namespace, vmID)
	}
	v.utilization = utilization
	v.updates++
	return nil
}

func (f *Fleet) ListVMsOnNode(ctx context.Context, namespace, nodeName string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var names []string
	for name, v := range f.vms[namespace] {
		if v.node == nodeName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *Fleet) UpdateScenarioStatus(ctx context.Context, ref domain.ScenarioRef, status domain.ScenarioStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[ref] = append(f.statuses[ref], status)
	return nil
}

// WatchScenarios returns a stream fed by Emit. It is closed when ctx is done.
func (f *Fleet) WatchScenarios(ctx context.Context, namespace string) (<-chan domain.ScenarioEvent, error) {
	w := &watcher{events: make(chan domain.ScenarioEvent), done: make(chan struct{})}
	f.mu.Lock()
	f.watchers = append(f.watchers, w)
	f.mu.Unlock()

	out := make(chan domain.ScenarioEvent)
	go func() {
		defer close(out)
		defer f.removeWatcher(w)
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-w.events:
				if ev.Namespace != "" && ev.Namespace != namespace {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (f *Fleet) removeWatcher(target *watcher) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.watchers {
		if w == target {
			f.watchers = append(f.watchers[:i], f.watchers[i+1:]...)
			return
		}
	}
}
