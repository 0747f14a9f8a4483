package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DefaultInterval = "1m"
	DefaultDuration = "24h"
)

// ScenarioSpec is the declarative description of one simulation run
type ScenarioSpec struct {
	TimeScale      float64             `json:"timeScale"`      // Simulated seconds per real second
	Duration       string              `json:"duration"`       // Simulated duration, e.g. "24h"
	Seed           uint64              `json:"seed,omitempty"` // Random seed, 0 means time based
	TaskGenerators []GeneratorConfig   `json:"taskGenerators,omitempty"`
	TaskTypes      map[string]TaskType `json:"taskTypes,omitempty"`
	VMPools        map[string]VMPool   `json:"vmPools,omitempty"`
}

// GeneratorConfig configures one independently scheduled task generator
type GeneratorConfig struct {
	Name       string           `json:"name"`
	Enabled    *bool            `json:"enabled,omitempty"` // Defaults to true
	Schedule   Schedule         `json:"schedule"`
	Rate       DistributionSpec `json:"rate"` // Tasks per tick
	TaskType   string           `json:"taskType"`
	Assignment Assignment       `json:"assignment"`
}

// IsEnabled reports whether the generator should be started
func (g GeneratorConfig) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

// DisplayName returns the generator name or "unnamed"
func (g GeneratorConfig) DisplayName() string {
	if g.Name == "" {
		return "unnamed"
	}
	return g.Name
}

// RateOrDefault returns the configured rate, defaulting to one task per tick
func (g GeneratorConfig) RateOrDefault() DistributionSpec {
	if g.Rate.IsZero() {
		return FixedValue(1)
	}
	return g.Rate
}

type ScheduleType string

const (
	SchedulePeriodic ScheduleType = "periodic"
)

type Schedule struct {
	Type          ScheduleType   `json:"type,omitempty"`
	Interval      string         `json:"interval,omitempty"`
	ActiveWindows []ActiveWindow `json:"activeWindows,omitempty"`
}

// IntervalDuration parses the schedule interval, defaulting to one minute
func (s Schedule) IntervalDuration() (time.Duration, error) {
	if s.Interval == "" {
		return ParseDuration(DefaultInterval)
	}
	return ParseDuration(s.Interval)
}

// ActiveWindow is an inclusive time-of-day range in zero padded HH:MM form
type ActiveWindow struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Contains compares hhmm against the window bounds lexicographically.
// This only works because both sides are fixed-width zero padded HH:MM.
func (w ActiveWindow) Contains(hhmm string) bool {
	start, end := w.Start, w.End
	if start == "" {
		start = "00:00"
	}
	if end == "" {
		end = "23:59"
	}
	return start <= hhmm && hhmm <= end
}

type AssignmentStrategy string

const (
	AssignmentRandom    AssignmentStrategy = "random"
	AssignmentNodeAware AssignmentStrategy = "nodeAware"
)

type Assignment struct {
	Strategy     AssignmentStrategy `json:"strategy,omitempty"`
	Pool         string             `json:"pool,omitempty"`
	NodeSelector NodeSelectorSpec   `json:"nodeSelector,omitempty"`
	VMSelection  VMSelection        `json:"vmSelection,omitempty"`
}

// StrategyOrDefault returns the assignment strategy, random when unset
func (a Assignment) StrategyOrDefault() AssignmentStrategy {
	if a.Strategy == "" {
		return AssignmentRandom
	}
	return a.Strategy
}

type VMSelection struct {
	Count DistributionSpec `json:"count,omitempty"` // VMs taken per selected node
}

// CountOrDefault returns the per-node VM count distribution, one VM when unset
func (v VMSelection) CountOrDefault() DistributionSpec {
	if v.Count.IsZero() {
		return FixedValue(1)
	}
	return v.Count
}

// TaskType describes the resource draw and lifetime of a synthetic task
type TaskType struct {
	Resources TaskResources    `json:"resources,omitempty"`
	Duration  DistributionSpec `json:"duration,omitempty"` // Simulated seconds
}

type TaskResources struct {
	CPU    DistributionSpec `json:"cpu,omitempty"`    // Fraction of node capacity
	Memory DistributionSpec `json:"memory,omitempty"` // Fraction of node capacity
}

func (t TaskType) CPUOrDefault() DistributionSpec {
	if t.Resources.CPU.IsZero() {
		return FixedValue(0.1)
	}
	return t.Resources.CPU
}

func (t TaskType) MemoryOrDefault() DistributionSpec {
	if t.Resources.Memory.IsZero() {
		return FixedValue(0.1)
	}
	return t.Resources.Memory
}

func (t TaskType) DurationOrDefault() DistributionSpec {
	if t.Duration.IsZero() {
		return FixedValue(60)
	}
	return t.Duration
}

// VMPool is a static list of VM ids. It decodes from either a plain list
// or an object of the form {"vms": [...]}.
type VMPool struct {
	VMs []string `json:"vms"`
}

func (p *VMPool) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		p.VMs = list
		return nil
	}
	type plain VMPool
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode vm pool: %w", err)
	}
	*p = VMPool(obj)
	return nil
}

// ParseScenarioSpec converts a raw CR spec into a ScenarioSpec
func ParseScenarioSpec(raw map[string]any) (ScenarioSpec, error) {
	var spec ScenarioSpec
	data, err := json.Marshal(raw)
	if err != nil {
		return spec, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := json.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return spec, nil
}

// TimeScaleOrDefault returns the time scale, 1.0 when unset
func (s ScenarioSpec) TimeScaleOrDefault() float64 {
	if s.TimeScale == 0 {
		return 1.0
	}
	return s.TimeScale
}

// Validate checks the fields that must be valid before execution starts
func (s ScenarioSpec) Validate() error {
	if s.TimeScaleOrDefault() <= 0 {
		return fmt.Errorf("%w: timeScale must be positive, got %v", ErrInvalidScenario, s.TimeScale)
	}
	if _, err := s.ParsedDuration(); err != nil {
		return err
	}
	for _, gen := range s.TaskGenerators {
		if !gen.IsEnabled() {
			continue
		}
		interval, err := gen.Schedule.IntervalDuration()
		if err != nil {
			return fmt.Errorf("generator %s: %w", gen.DisplayName(), err)
		}
		if interval <= 0 {
			return fmt.Errorf("generator %s: %w: interval must be positive", gen.DisplayName(), ErrInvalidDuration)
		}
	}
	return nil
}

// ParsedDuration returns the scenario duration, 24h when unset
func (s ScenarioSpec) ParsedDuration() (time.Duration, error) {
	if s.Duration == "" {
		return ParseDuration(DefaultDuration)
	}
	return ParseDuration(s.Duration)
}

// TaskType looks up a task type by name, returning the zero TaskType (all defaults) when absent
func (s ScenarioSpec) TaskType(name string) TaskType {
	return s.TaskTypes[name]
}

// PoolVMs returns the VM ids of a named pool
func (s ScenarioSpec) PoolVMs(name string) []string {
	return s.VMPools[name].VMs
}
