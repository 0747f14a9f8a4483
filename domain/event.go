package domain

type EventType string

const (
	EventAdded    EventType = "ADDED"
	EventModified EventType = "MODIFIED"
	EventDeleted  EventType = "DELETED"
)

// ScenarioEvent is one notification from the scenario watch stream
type ScenarioEvent struct {
	Type      EventType
	Namespace string
	Name      string
	Spec      map[string]any
}
