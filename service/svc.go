package service

import (
	"context"
	"fmt"

	"github.com/Gthulhu/scenario-controller/domain"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Controller *ScenarioController
	Recorder   domain.RunRecorder `optional:"true"`
}

// NewService creates the controller-facing service used by the REST layer
func NewService(params Params) (domain.Service, error) {
	return &Service{
		Controller: params.Controller,
		Recorder:   params.Recorder,
	}, nil
}

type Service struct {
	Controller *ScenarioController
	Recorder   domain.RunRecorder
}

func (svc *Service) ListScenarios(ctx context.Context) []domain.ScenarioInfo {
	executors := svc.Controller.Executors()
	infos := make([]domain.ScenarioInfo, 0, len(executors))
	for _, exec := range executors {
		infos = append(infos, domain.ScenarioInfo{Ref: exec.Ref(), Status: exec.Status()})
	}
	return infos
}

func (svc *Service) GetScenario(ctx context.Context, name string) (domain.ScenarioInfo, error) {
	exec, err := svc.executor(name)
	if err != nil {
		return domain.ScenarioInfo{}, err
	}
	return domain.ScenarioInfo{Ref: exec.Ref(), Status: exec.Status()}, nil
}

func (svc *Service) PauseScenario(ctx context.Context, name string) error {
	exec, err := svc.executor(name)
	if err != nil {
		return err
	}
	return exec.Pause(ctx)
}

func (svc *Service) ResumeScenario(ctx context.Context, name string) error {
	exec, err := svc.executor(name)
	if err != nil {
		return err
	}
	return exec.Resume(ctx)
}

func (svc *Service) QueryRuns(ctx context.Context, opt *domain.QueryRunOptions) error {
	if svc.Recorder == nil {
		return domain.ErrHistoryDisabled
	}
	return svc.Recorder.QueryRuns(ctx, opt)
}

func (svc *Service) executor(name string) (*ScenarioExecutor, error) {
	exec, ok := svc.Controller.Executor(name)
	if !ok {
		return nil, fmt.Errorf("%w: scenario %s", domain.ErrNotFound, name)
	}
	return exec, nil
}
