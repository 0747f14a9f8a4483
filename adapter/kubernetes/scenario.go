package kubernetes

import (
	"context"
	"fmt"
	"time"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/util/retry"
)

// UpdateScenarioStatus writes status through the status subresource
func (a *Adapter) UpdateScenarioStatus(ctx context.Context, ref domain.ScenarioRef, status domain.ScenarioStatus) error {
	if a.dynamicClient == nil {
		return domain.ErrNoClient
	}
	client := a.dynamicClient.Resource(ScenarioGVR).Namespace(ref.Namespace)
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		obj, err := client.Get(ctx, ref.Name, metav1.GetOptions{})
		if err != nil {
			return fmt.Errorf("get scenario %s: %w", ref, err)
		}
		if err := unstructured.SetNestedField(obj.Object, status.ToUnstructured(), "status"); err != nil {
			return err
		}
		_, err = client.UpdateStatus(ctx, obj, metav1.UpdateOptions{})
		return err
	})
}

// WatchScenarios streams scenario notifications. The watch is re-established
// whenever the server closes it, which replays ADDED for existing scenarios.
func (a *Adapter) WatchScenarios(ctx context.Context, namespace string) (<-chan domain.ScenarioEvent, error) {
	if a.dynamicClient == nil {
		return nil, domain.ErrNoClient
	}
	client := a.dynamicClient.Resource(ScenarioGVR).Namespace(namespace)
	w, err := client.Watch(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("watch scenarios in %s: %w", namespace, err)
	}

	out := make(chan domain.ScenarioEvent)
	go func() {
		defer close(out)
		log := logger.Logger(ctx)
		for {
			a.forwardEvents(ctx, w, namespace, out)
			w.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-time.After(a.retryPeriod):
				}
				w, err = client.Watch(ctx, metav1.ListOptions{})
				if err == nil {
					break
				}
				log.Warn().Err(err).Msgf("re-watch scenarios in %s failed", namespace)
			}
			log.Info().Msgf("scenario watch in %s re-established", namespace)
		}
	}()
	return out, nil
}

func (a *Adapter) forwardEvents(ctx context.Context, w watch.Interface, namespace string, out chan<- domain.ScenarioEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.ResultChan():
			if !ok {
				return
			}
			var eventType domain.EventType
			switch ev.Type {
			case watch.Added:
				eventType = domain.EventAdded
			case watch.Modified:
				eventType = domain.EventModified
			case watch.Deleted:
				eventType = domain.EventDeleted
			case watch.Error:
				logger.Logger(ctx).Warn().Msgf("scenario watch error: %v", ev.Object)
				continue
			default:
				continue
			}
			obj, ok := ev.Object.(*unstructured.Unstructured)
			if !ok {
				continue
			}
			spec, _, _ := unstructured.NestedMap(obj.Object, "spec")
			scenarioEvent := domain.ScenarioEvent{
				Type:      eventType,
				Namespace: obj.GetNamespace(),
				Name:      obj.GetName(),
				Spec:      spec,
			}
			if scenarioEvent.Namespace == "" {
				scenarioEvent.Namespace = namespace
			}
			select {
			case out <- scenarioEvent:
			case <-ctx.Done():
				return
			}
		}
	}
}
