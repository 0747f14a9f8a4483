package service

import (
	"context"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"k8s.io/apimachinery/pkg/labels"
)

// NodeSelector resolves a NodeSelectorSpec into candidate simulation node names
type NodeSelector struct {
	nodes     domain.NodeLister
	metrics   domain.MetricSource
	sampler   *Sampler
	namespace string
	labels    string
}

func NewNodeSelector(nodes domain.NodeLister, metrics domain.MetricSource, sampler *Sampler, namespace, simulationLabels string) *NodeSelector {
	if simulationLabels == "" {
		simulationLabels = domain.SimulationNodeSelector
	}
	return &NodeSelector{
		nodes:     nodes,
		metrics:   metrics,
		sampler:   sampler,
		namespace: namespace,
		labels:    simulationLabels,
	}
}

// Select never fails: every listing or metric error yields fewer candidates.
func (s *NodeSelector) Select(ctx context.Context, spec domain.NodeSelectorSpec) []string {
	switch spec.TypeOrDefault() {
	case domain.SelectorStatic:
		return s.selectStatic(ctx, spec)
	case domain.SelectorRandom:
		return s.selectRandom(ctx, spec)
	case domain.SelectorDynamic:
		return s.selectDynamic(ctx, spec)
	}
	logger.Logger(ctx).Warn().Msgf("unknown node selector type %q", spec.Type)
	return nil
}

func (s *NodeSelector) selectStatic(ctx context.Context, spec domain.NodeSelectorSpec) []string {
	if spec.NodeName != "" {
		return []string{spec.NodeName}
	}
	if len(spec.MatchLabels) > 0 {
		return s.listNodes(ctx, labels.SelectorFromSet(spec.MatchLabels).String())
	}
	return nil
}

func (s *NodeSelector) selectRandom(ctx context.Context, spec domain.NodeSelectorSpec) []string {
	all := s.listNodes(ctx, s.labels)
	if len(all) == 0 {
		return nil
	}
	return s.sampler.SampleWithoutReplacement(all, spec.CountOrDefault())
}

func (s *NodeSelector) selectDynamic(ctx context.Context, spec domain.NodeSelectorSpec) []string {
	if spec.Strategy == domain.StrategyThreshold && !validOperator(spec.OperatorOrDefault()) {
		logger.Logger(ctx).Warn().Msgf("unknown threshold operator %q", spec.Operator)
		return nil
	}
	all := s.listNodes(ctx, s.labels)
	if len(all) == 0 {
		return nil
	}

	metric := spec.MetricOrDefault()
	values := make(map[string]float64, len(all))
	for _, node := range all {
		v, err := s.metrics.NodeMetric(ctx, node, metric, s.namespace)
		if err != nil {
			logger.Logger(ctx).Debug().Err(err).Msgf("skip node %s: metric %s unavailable", node, metric)
			continue
		}
		values[node] = v
	}
	if len(values) == 0 {
		return nil
	}

	switch spec.Strategy {
	case domain.StrategyMaxMetric:
		return []string{extremeNode(all, values, func(a, b float64) bool { return a > b })}
	case domain.StrategyMinMetric:
		return []string{extremeNode(all, values, func(a, b float64) bool { return a < b })}
	case domain.StrategyThreshold:
		op, threshold := spec.OperatorOrDefault(), spec.ThresholdOrDefault()
		var selected []string
		for _, node := range all {
			v, ok := values[node]
			if ok && compare(v, op, threshold) {
				selected = append(selected, node)
			}
		}
		return selected
	}

	logger.Logger(ctx).Warn().Msgf("unknown dynamic selector strategy %q", spec.Strategy)
	return nil
}

func (s *NodeSelector) listNodes(ctx context.Context, selector string) []string {
	nodes, err := s.nodes.ListNodes(ctx, selector)
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Msgf("list nodes with selector %s failed", selector)
		return nil
	}
	return nodes
}

// extremeNode walks nodes in listing order so ties resolve to the first seen
func extremeNode(nodes []string, values map[string]float64, better func(a, b float64) bool) string {
	var (
		best  string
		bestV float64
		found bool
	)
	for _, node := range nodes {
		v, ok := values[node]
		if !ok {
			continue
		}
		if !found || better(v, bestV) {
			best, bestV, found = node, v, true
		}
	}
	return best
}

func validOperator(op string) bool {
	switch op {
	case ">", "<", ">=", "<=":
		return true
	}
	return false
}

func compare(v float64, op string, threshold float64) bool {
	switch op {
	case ">":
		return v > threshold
	case "<":
		return v < threshold
	case ">=":
		return v >= threshold
	case "<=":
		return v <= threshold
	}
	return false
}
