package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type selectorFixture struct {
	nodes    *domain.MockNodeLister
	metrics  *domain.MockMetricSource
	selector *service.NodeSelector
}

func newSelectorFixture(t *testing.T) *selectorFixture {
	nodes := domain.NewMockNodeLister(t)
	metrics := domain.NewMockMetricSource(t)
	return &selectorFixture{
		nodes:    nodes,
		metrics:  metrics,
		selector: service.NewNodeSelector(nodes, metrics, service.NewSampler(1), "default", ""),
	}
}

func (f *selectorFixture) withMetrics(values map[string]float64, names ...string) {
	f.nodes.EXPECT().ListNodes(mock.Anything, domain.SimulationNodeSelector).Return(names, nil)
	for _, name := range names {
		if v, ok := values[name]; ok {
			f.metrics.EXPECT().NodeMetric(mock.Anything, name, domain.MetricCPUUsage, "default").Return(v, nil)
		} else {
			f.metrics.EXPECT().NodeMetric(mock.Anything, name, domain.MetricCPUUsage, "default").Return(0, errors.New("metrics unavailable"))
		}
	}
}

func TestSelectThreshold(t *testing.T) {
	f := newSelectorFixture(t)
	f.withMetrics(map[string]float64{"A": 0.3, "B": 0.7, "C": 0.5}, "A", "B", "C")

	nodes := f.selector.Select(context.Background(), domain.NodeSelectorSpec{
		Type:     domain.SelectorDynamic,
		Strategy: domain.StrategyThreshold,
		Operator: ">",
		Value:    ptr(0.4),
	})
	assert.ElementsMatch(t, []string{"B", "C"}, nodes)
}

func TestSelectThresholdOperators(t *testing.T) {
	values := map[string]float64{"A": 0.3, "B": 0.5, "C": 0.7}
	testCases := []struct {
		operator string
		expected []string
	}{
		{">", []string{"C"}},
		{">=", []string{"B", "C"}},
		{"<", []string{"A"}},
		{"<=", []string{"A", "B"}},
	}
	for _, tc := range testCases {
		t.Run(tc.operator, func(t *testing.T) {
			f := newSelectorFixture(t)
			f.withMetrics(values, "A", "B", "C")
			nodes := f.selector.Select(context.Background(), domain.NodeSelectorSpec{
				Type:     domain.SelectorDynamic,
				Strategy: domain.StrategyThreshold,
				Operator: tc.operator,
				Value:    ptr(0.5),
			})
			assert.ElementsMatch(t, tc.expected, nodes)
		})
	}
}

func TestSelectThresholdUnknownOperator(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	// no node listing or metric lookup is expected
	f := newSelectorFixture(t)
	nodes := f.selector.Select(ctx, domain.NodeSelectorSpec{
		Type:     domain.SelectorDynamic,
		Strategy: domain.StrategyThreshold,
		Operator: "==",
		Value:    ptr(0.5),
	})
	assert.Empty(t, nodes)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `unknown threshold operator \"==\"`)
}

func TestSelectExtremeMetric(t *testing.T) {
	f := newSelectorFixture(t)
	f.withMetrics(map[string]float64{"A": 0.3, "B": 0.9, "C": 0.1}, "A", "B", "C")
	assert.Equal(t, []string{"B"}, f.selector.Select(context.Background(), domain.NodeSelectorSpec{
		Type:     domain.SelectorDynamic,
		Strategy: domain.StrategyMaxMetric,
	}))

	f = newSelectorFixture(t)
	f.withMetrics(map[string]float64{"A": 0.3, "B": 0.9, "C": 0.1}, "A", "B", "C")
	assert.Equal(t, []string{"C"}, f.selector.Select(context.Background(), domain.NodeSelectorSpec{
		Type:     domain.SelectorDynamic,
		Strategy: domain.StrategyMinMetric,
	}))
}

func TestSelectDynamicExcludesNodesWithoutMetric(t *testing.T) {
	f := newSelectorFixture(t)
	// B has no metric, it must not count as zero
	f.withMetrics(map[string]float64{"A": 0.3, "C": 0.6}, "A", "B", "C")
	assert.Equal(t, []string{"A"}, f.selector.Select(context.Background(), domain.NodeSelectorSpec{
		Type:     domain.SelectorDynamic,
		Strategy: domain.StrategyMinMetric,
	}))

	f = newSelectorFixture(t)
	f.withMetrics(map[string]float64{}, "A", "B")
	assert.Empty(t, f.selector.Select(context.Background(), domain.NodeSelectorSpec{
		Type:     domain.SelectorDynamic,
		Strategy: domain.StrategyMaxMetric,
	}))
}

func TestSelectStatic(t *testing.T) {
	f := newSelectorFixture(t)
	assert.Equal(t, []string{"kwok-7"}, f.selector.Select(context.Background(), domain.NodeSelectorSpec{
		Type:     domain.SelectorStatic,
		NodeName: "kwok-7",
	}))

	f.nodes.EXPECT().ListNodes(mock.Anything, "rack=a,zone=z1").Return([]string{"kwok-1", "kwok-2"}, nil)
	assert.Equal(t, []string{"kwok-1", "kwok-2"}, f.selector.Select(context.Background(), domain.NodeSelectorSpec{
		MatchLabels: map[string]string{"zone": "z1", "rack": "a"},
	}))

	assert.Empty(t, f.selector.Select(context.Background(), domain.NodeSelectorSpec{Type: domain.SelectorStatic}))
}

func TestSelectRandom(t *testing.T) {
	f := newSelectorFixture(t)
	all := []string{"kwok-1", "kwok-2", "kwok-3", "kwok-4"}
	f.nodes.EXPECT().ListNodes(mock.Anything, domain.SimulationNodeSelector).Return(all, nil)

	picked := f.selector.Select(context.Background(), domain.NodeSelectorSpec{Type: domain.SelectorRandom, Count: ptr(2)})
	require.Len(t, picked, 2)
	assert.Subset(t, all, picked)
	assert.NotEqual(t, picked[0], picked[1])

	everything := f.selector.Select(context.Background(), domain.NodeSelectorSpec{Type: domain.SelectorRandom, Count: ptr(10)})
	assert.ElementsMatch(t, all, everything)
}

func TestSelectListFailureYieldsNoNodes(t *testing.T) {
	f := newSelectorFixture(t)
	f.nodes.EXPECT().ListNodes(mock.Anything, domain.SimulationNodeSelector).Return(nil, errors.New("apiserver down"))
	assert.Empty(t, f.selector.Select(context.Background(), domain.NodeSelectorSpec{Type: domain.SelectorRandom}))
}

func TestSelectUnknownType(t *testing.T) {
	f := newSelectorFixture(t)
	assert.Empty(t, f.selector.Select(context.Background(), domain.NodeSelectorSpec{Type: "affinity"}))
}
