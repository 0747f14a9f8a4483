package kubernetes

import (
	"context"
	"testing"
	"time"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func newNode(name string, labels map[string]string) *corev1.Node {
	return &corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: name, Labels: labels}}
}

func newLauncherPod(name, node, cpu, memory string) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "default",
			Labels:    map[string]string{"app": "virt-launcher"},
			Annotations: map[string]string{
				CPUConsumptionKey:    cpu,
				MemoryConsumptionKey: memory,
			},
		},
		Spec: corev1.PodSpec{NodeName: node},
	}
}

func newVM(name, node string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": SimulationGroup + "/" + SimulationVersion,
		"kind":       "VirtualMachine",
		"metadata":   map[string]any{"name": name, "namespace": "default"},
		"spec": map[string]any{
			"running": true,
		},
		"status": map[string]any{"nodeName": node},
	}}
}

func newScenario(name string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": SimulationGroup + "/" + SimulationVersion,
		"kind":       "SimulationScenario",
		"metadata":   map[string]any{"name": name, "namespace": "default"},
		"spec":       map[string]any{"timeScale": int64(60), "duration": "1h"},
	}}
}

func newDynamicClient(objects ...runtime.Object) *dynamicfake.FakeDynamicClient {
	listKinds := map[schema.GroupVersionResource]string{
		VMGVR:       "VirtualMachineList",
		ScenarioGVR: "SimulationScenarioList",
	}
	return dynamicfake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), listKinds, objects...)
}

func TestListNodesUsesCache(t *testing.T) {
	kube := fake.NewSimpleClientset(
		newNode("kwok-1", map[string]string{"type": "kwok"}),
		newNode("kwok-2", map[string]string{"type": "kwok"}),
		newNode("real", map[string]string{"type": "real"}),
	)
	adapter := NewAdapterFromClients(kube, newDynamicClient(), time.Minute)

	nodes, err := adapter.ListNodes(context.Background(), "type=kwok")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"kwok-1", "kwok-2"}, nodes)

	_, err = kube.CoreV1().Nodes().Create(context.Background(), newNode("kwok-3", map[string]string{"type": "kwok"}), metav1.CreateOptions{})
	require.NoError(t, err)

	cached, err := adapter.ListNodes(context.Background(), "type=kwok")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"kwok-1", "kwok-2"}, cached, "node list should come from cache")

	uncached := NewAdapterFromClients(kube, newDynamicClient(), 0)
	fresh, err := uncached.ListNodes(context.Background(), "type=kwok")
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}

func TestNodeMetricSumsAnnotations(t *testing.T) {
	kube := fake.NewSimpleClientset(
		newLauncherPod("a", "kwok-1", "0.25", "0.5"),
		newLauncherPod("b", "kwok-1", "0.25", "0.1"),
		newLauncherPod("c", "kwok-2", "0.9", "0.9"),
	)
	adapter := NewAdapterFromClients(kube, newDynamicClient(), 0)

	cpu, err := adapter.NodeMetric(context.Background(), "kwok-1", domain.MetricCPUUsage, "default")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cpu, 1e-9)

	mem, err := adapter.NodeMetric(context.Background(), "kwok-1", domain.MetricMemoryUsage, "default")
	require.NoError(t, err)
	assert.InDelta(t, 0.6, mem, 1e-9)

	empty, err := adapter.NodeMetric(context.Background(), "kwok-9", domain.MetricCPUUsage, "default")
	require.NoError(t, err)
	assert.Zero(t, empty)

	_, err = adapter.NodeMetric(context.Background(), "kwok-1", "pressure", "default")
	require.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestNodeMetricInvalidAnnotation(t *testing.T) {
	kube := fake.NewSimpleClientset(newLauncherPod("a", "kwok-1", "lots", "0.5"))
	adapter := NewAdapterFromClients(kube, newDynamicClient(), 0)

	_, err := adapter.NodeMetric(context.Background(), "kwok-1", domain.MetricCPUUsage, "default")
	require.Error(t, err)
}

func TestUpdateUtilization(t *testing.T) {
	dyn := newDynamicClient(newVM("vm-1", "kwok-1"))
	adapter := NewAdapterFromClients(fake.NewSimpleClientset(), dyn, 0)

	err := adapter.UpdateUtilization(context.Background(), "default", "vm-1", domain.Utilization{CPU: 0.456, Memory: 1})
	require.NoError(t, err)

	vm, err := dyn.Resource(VMGVR).Namespace("default").Get(context.Background(), "vm-1", metav1.GetOptions{})
	require.NoError(t, err)
	cpu, _, _ := unstructured.NestedString(vm.Object, "spec", "utilization", "cpu")
	mem, _, _ := unstructured.NestedString(vm.Object, "spec", "utilization", "memory")
	running, _, _ := unstructured.NestedBool(vm.Object, "spec", "running")
	assert.Equal(t, "0.46", cpu)
	assert.Equal(t, "1.00", mem)
	assert.True(t, running, "other spec fields must survive the update")

	err = adapter.UpdateUtilization(context.Background(), "default", "missing", domain.Utilization{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListVMsOnNode(t *testing.T) {
	dyn := newDynamicClient(newVM("vm-1", "kwok-1"), newVM("vm-2", "kwok-2"), newVM("vm-3", "kwok-1"))
	adapter := NewAdapterFromClients(fake.NewSimpleClientset(), dyn, 0)

	vms, err := adapter.ListVMsOnNode(context.Background(), "default", "kwok-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"vm-1", "vm-3"}, vms)
}

func TestUpdateScenarioStatus(t *testing.T) {
	dyn := newDynamicClient(newScenario("burst"))
	adapter := NewAdapterFromClients(fake.NewSimpleClientset(), dyn, 0)

	end := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	err := adapter.UpdateScenarioStatus(context.Background(), domain.ScenarioRef{Namespace: "default", Name: "burst"}, domain.ScenarioStatus{
		Phase:                domain.PhaseCompleted,
		CurrentSimulatedTime: end,
		ElapsedSimulatedTime: "1:00:00",
		ElapsedRealTime:      "0:01:00",
		TotalTasksGenerated:  60,
		Message:              "Scenario execution finished",
		EndTime:              &end,
	})
	require.NoError(t, err)

	var statusUpdate k8stesting.UpdateAction
	for _, action := range dyn.Actions() {
		if update, ok := action.(k8stesting.UpdateAction); ok && action.GetSubresource() == "status" {
			statusUpdate = update
		}
	}
	require.NotNil(t, statusUpdate, "status subresource should be updated")
	obj := statusUpdate.GetObject().(*unstructured.Unstructured)
	phase, _, _ := unstructured.NestedString(obj.Object, "status", "phase")
	total, _, _ := unstructured.NestedInt64(obj.Object, "status", "totalTasksGenerated")
	endTime, _, _ := unstructured.NestedString(obj.Object, "status", "endTime")
	assert.Equal(t, "Completed", phase)
	assert.EqualValues(t, 60, total)
	assert.Equal(t, "2024-01-01T01:00:00Z", endTime)
}

func TestWatchScenarios(t *testing.T) {
	dyn := newDynamicClient()
	adapter := NewAdapterFromClients(fake.NewSimpleClientset(), dyn, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := adapter.WatchScenarios(ctx, "default")
	require.NoError(t, err)

	_, err = dyn.Resource(ScenarioGVR).Namespace("default").Create(ctx, newScenario("burst"), metav1.CreateOptions{})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, domain.EventAdded, ev.Type)
		assert.Equal(t, "burst", ev.Name)
		assert.Equal(t, "default", ev.Namespace)
		assert.Equal(t, "1h", ev.Spec["duration"])
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for scenario event")
	}

	err = dyn.Resource(ScenarioGVR).Namespace("default").Delete(ctx, "burst", metav1.DeleteOptions{})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, domain.EventDeleted, ev.Type)
		assert.Equal(t, "burst", ev.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delete event")
	}

	cancel()
	for range events {
	}
}
