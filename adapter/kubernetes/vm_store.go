package kubernetes

import (
	"context"
	"fmt"

	"github.com/Gthulhu/scenario-controller/domain"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/client-go/util/retry"
)

// UpdateUtilization rewrites spec.utilization of a VirtualMachine. The write
// is a get-modify-update retried on resourceVersion conflicts.
func (a *Adapter) UpdateUtilization(ctx context.Context, namespace, vmID string, utilization domain.Utilization) error {
	if a.dynamicClient == nil {
		return domain.ErrNoClient
	}
	client := a.dynamicClient.Resource(VMGVR).Namespace(namespace)
	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		vm, err := client.Get(ctx, vmID, metav1.GetOptions{})
		if err != nil {
			return err
		}
		if err := unstructured.SetNestedField(vm.Object, formatFraction(utilization.CPU), "spec", "utilization", "cpu"); err != nil {
			return err
		}
		if err := unstructured.SetNestedField(vm.Object, formatFraction(utilization.Memory), "spec", "utilization", "memory"); err != nil {
			return err
		}
		_, err = client.Update(ctx, vm, metav1.UpdateOptions{})
		return err
	})
	if apierrors.IsNotFound(err) {
		return fmt.Errorf("%w: virtual machine %s/%s", domain.ErrNotFound, namespace, vmID)
	}
	if err != nil {
		return fmt.Errorf("update virtual machine %s/%s: %w", namespace, vmID, err)
	}
	return nil
}

// ListVMsOnNode lists VirtualMachines whose status.nodeName is nodeName
func (a *Adapter) ListVMsOnNode(ctx context.Context, namespace, nodeName string) ([]string, error) {
	if a.dynamicClient == nil {
		return nil, domain.ErrNoClient
	}
	list, err := a.dynamicClient.Resource(VMGVR).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list virtual machines: %w", err)
	}
	var names []string
	for _, item := range list.Items {
		node, _, _ := unstructured.NestedString(item.Object, "status", "nodeName")
		if node == nodeName {
			names = append(names, item.GetName())
		}
	}
	return names, nil
}

func formatFraction(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
