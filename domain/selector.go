package domain

type SelectorType string

const (
	SelectorStatic  SelectorType = "static"
	SelectorDynamic SelectorType = "dynamic"
	SelectorRandom  SelectorType = "random"
)

type SelectorStrategy string

const (
	StrategyMaxMetric SelectorStrategy = "maxMetric"
	StrategyMinMetric SelectorStrategy = "minMetric"
	StrategyThreshold SelectorStrategy = "threshold"
)

const (
	MetricCPUUsage    = "cpu_usage"
	MetricMemoryUsage = "memory_usage"
)

// SimulationNodeSelector matches the nodes that host simulated VMs
const SimulationNodeSelector = "type=kwok"

// NodeSelectorSpec picks candidate simulation nodes
type NodeSelectorSpec struct {
	Type        SelectorType      `json:"type,omitempty"`
	NodeName    string            `json:"nodeName,omitempty"`    // static
	MatchLabels map[string]string `json:"matchLabels,omitempty"` // static
	Strategy    SelectorStrategy  `json:"strategy,omitempty"`    // dynamic
	Metric      string            `json:"metric,omitempty"`      // dynamic
	Operator    string            `json:"operator,omitempty"`    // dynamic threshold
	Value       *float64          `json:"value,omitempty"`       // dynamic threshold
	Count       *int              `json:"count,omitempty"`       // random
}

func (s NodeSelectorSpec) TypeOrDefault() SelectorType {
	if s.Type == "" {
		return SelectorStatic
	}
	return s.Type
}

func (s NodeSelectorSpec) MetricOrDefault() string {
	if s.Metric == "" {
		return MetricCPUUsage
	}
	return s.Metric
}

func (s NodeSelectorSpec) OperatorOrDefault() string {
	if s.Operator == "" {
		return ">"
	}
	return s.Operator
}

func (s NodeSelectorSpec) ThresholdOrDefault() float64 {
	return floatOr(s.Value, 0.5)
}

func (s NodeSelectorSpec) CountOrDefault() int {
	if s.Count == nil {
		return 1
	}
	return *s.Count
}
