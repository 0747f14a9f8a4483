package kubernetes

import (
	"context"
	"fmt"
	"strconv"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	SimulationGroup   = "simulation.node-classifier.io"
	SimulationVersion = "v1alpha1"

	VirtLauncherSelector    = "app=virt-launcher"
	CPUConsumptionKey       = "vm.simulation.io/cpu-consumption"
	MemoryConsumptionKey    = "vm.simulation.io/memory-consumption"
	defaultWatchRetryPeriod = 5 * time.Second
)

var (
	ScenarioGVR = schema.GroupVersionResource{Group: SimulationGroup, Version: SimulationVersion, Resource: "simulationscenarios"}
	VMGVR       = schema.GroupVersionResource{Group: SimulationGroup, Version: SimulationVersion, Resource: "virtualmachines"}
)

// Options contains Kubernetes adapter options
type Options struct {
	KubeConfigPath string
	InCluster      bool
	QPS            float32
	Burst          int
	Timeout        time.Duration
	NodeCacheTTL   time.Duration
}

// Adapter implements domain.ClusterAdapter on top of client-go
type Adapter struct {
	kubeClient    kubernetes.Interface
	dynamicClient dynamic.Interface
	nodeCache     *cache.Cache[string, []string]
	nodeCacheTTL  time.Duration
	retryPeriod   time.Duration
}

var _ domain.ClusterAdapter = (*Adapter)(nil)

// NewK8SAdapter creates a new Kubernetes adapter based on the given options.
// Supports two modes:
// 1. When running inside the cluster, use in-cluster configuration
// 2. When running outside the cluster, use kubeconfig configuration
func NewK8SAdapter(ctx context.Context, options Options) (*Adapter, error) {
	var config *rest.Config
	var err error

	if options.InCluster {
		logger.Logger(ctx).Info().Msg("using in-cluster Kubernetes configuration")
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create in-cluster config: %w", err)
		}
	} else if options.KubeConfigPath != "" {
		logger.Logger(ctx).Info().Msgf("using Kubernetes config %s", options.KubeConfigPath)
		config, err = clientcmd.BuildConfigFromFlags("", options.KubeConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to build kubeconfig from %s: %w", options.KubeConfigPath, err)
		}
	} else {
		return nil, domain.ErrNoKubeConfig
	}

	config.Timeout = options.Timeout
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	config.QPS = options.QPS
	if config.QPS == 0 {
		config.QPS = 20
	}
	config.Burst = options.Burst
	if config.Burst == 0 {
		config.Burst = 50
	}

	kubeClient, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes client: %w", err)
	}
	dynamicClient, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}
	return NewAdapterFromClients(kubeClient, dynamicClient, options.NodeCacheTTL), nil
}

// NewAdapterFromClients wraps existing clients. A zero nodeCacheTTL disables
// node list caching.
func NewAdapterFromClients(kubeClient kubernetes.Interface, dynamicClient dynamic.Interface, nodeCacheTTL time.Duration) *Adapter {
	return &Adapter{
		kubeClient:    kubeClient,
		dynamicClient: dynamicClient,
		nodeCache:     cache.New[string, []string](),
		nodeCacheTTL:  nodeCacheTTL,
		retryPeriod:   defaultWatchRetryPeriod,
	}
}

func (a *Adapter) ListNodes(ctx context.Context, labelSelector string) ([]string, error) {
	if a.kubeClient == nil {
		return nil, domain.ErrNoClient
	}
	if a.nodeCacheTTL > 0 {
		if names, ok := a.nodeCache.Get(labelSelector); ok {
			return names, nil
		}
	}

	nodes, err := a.kubeClient.CoreV1().Nodes().List(ctx, metav1.ListOptions{LabelSelector: labelSelector})
	if err != nil {
		return nil, fmt.Errorf("list nodes %q: %w", labelSelector, err)
	}
	names := make([]string, 0, len(nodes.Items))
	for _, node := range nodes.Items {
		names = append(names, node.Name)
	}
	if a.nodeCacheTTL > 0 {
		a.nodeCache.Set(labelSelector, names, cache.WithExpiration(a.nodeCacheTTL))
	}
	return names, nil
}

// NodeMetric sums the consumption annotations of the virt-launcher pods on nodeName
func (a *Adapter) NodeMetric(ctx context.Context, nodeName, metric, namespace string) (float64, error) {
	var key string
	switch metric {
	case domain.MetricCPUUsage:
		key = CPUConsumptionKey
	case domain.MetricMemoryUsage:
		key = MemoryConsumptionKey
	default:
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownMetric, metric)
	}
	if a.kubeClient == nil {
		return 0, domain.ErrNoClient
	}

	pods, err := a.kubeClient.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: VirtLauncherSelector,
		FieldSelector: fields.OneTermEqualSelector("spec.nodeName", nodeName).String(),
	})
	if err != nil {
		return 0, fmt.Errorf("list pods on node %s: %w", nodeName, err)
	}

	var total float64
	for _, pod := range pods.Items {
		if pod.Spec.NodeName != nodeName {
			continue
		}
		raw, ok := pod.Annotations[key]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("pod %s annotation %s: %w", pod.Name, key, err)
		}
		total += v
	}
	return total, nil
}
