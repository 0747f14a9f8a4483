package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNoKubeConfig     = errors.New("kubernetes configuration not provided")
	ErrNoClient         = errors.New("kubernetes client is not initialized")
	ErrInvalidDuration  = errors.New("invalid duration format")
	ErrInvalidScenario  = errors.New("invalid scenario spec")
	ErrUnknownMetric    = errors.New("unknown node metric")
	ErrScenarioExists   = errors.New("scenario already exists")
	ErrHistoryDisabled  = errors.New("run history is disabled")
)
