package domain

import (
	"context"
)

// NodeLister lists node names matching an equality label selector such as "type=kwok"
type NodeLister interface {
	ListNodes(ctx context.Context, labelSelector string) ([]string, error)
}

// MetricSource resolves one scalar metric for a node. An error means the metric
// could not be retrieved and the node must not be considered.
type MetricSource interface {
	NodeMetric(ctx context.Context, nodeName, metric, namespace string) (float64, error)
}

// VMStore is the external store of simulated VirtualMachine resources.
// UpdateUtilization is a read-modify-write of the VM's utilization fields;
// concurrent writers to the same VM are last-write-wins unless the
// implementation can detect conflicts.
type VMStore interface {
	UpdateUtilization(ctx context.Context, namespace, vmID string, utilization Utilization) error
	ListVMsOnNode(ctx context.Context, namespace, nodeName string) ([]string, error)
}

// StatusWriter persists scenario progress reports
type StatusWriter interface {
	UpdateScenarioStatus(ctx context.Context, ref ScenarioRef, status ScenarioStatus) error
}

// ScenarioWatcher streams scenario notifications until ctx is done
type ScenarioWatcher interface {
	WatchScenarios(ctx context.Context, namespace string) (<-chan ScenarioEvent, error)
}

// ClusterAdapter bundles every external collaborator the simulator talks to
type ClusterAdapter interface {
	NodeLister
	MetricSource
	VMStore
	StatusWriter
	ScenarioWatcher
}

// RunRecorder keeps a history of status reports per scenario run
type RunRecorder interface {
	RecordStatus(ctx context.Context, record *ScenarioRunRecord) error
	QueryRuns(ctx context.Context, opt *QueryRunOptions) error
}

// QueryRunOptions filters run history. Result is ordered newest first.
type QueryRunOptions struct {
	Namespace string
	Names     []string
	StartTime int64 // Executor epoch in Unix milliseconds, 0 matches every run
	Limit     int64 // 0 means no limit
	Result    []*ScenarioRunRecord
}

// ScenarioInfo is a read-only view of one live executor
type ScenarioInfo struct {
	Ref    ScenarioRef    `json:"ref"`
	Status ScenarioStatus `json:"status"`
}

// Service is the controller-facing API used by the REST layer
type Service interface {
	ListScenarios(ctx context.Context) []ScenarioInfo
	GetScenario(ctx context.Context, name string) (ScenarioInfo, error)
	PauseScenario(ctx context.Context, name string) error
	ResumeScenario(ctx context.Context, name string) error
	QueryRuns(ctx context.Context, opt *QueryRunOptions) error
}
