package app

import (
	"context"

	"github.com/Gthulhu/scenario-controller/adapter/kubernetes"
	"github.com/Gthulhu/scenario-controller/config"
	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/repository"
	"github.com/Gthulhu/scenario-controller/rest"
	"github.com/Gthulhu/scenario-controller/service"
	"go.uber.org/fx"
)

// ConfigModule provides the controller config and each of its sections
func ConfigModule(cfg config.ControllerConfig) fx.Option {
	return fx.Options(
		fx.Provide(func() config.ControllerConfig {
			return cfg
		}),
		fx.Provide(func(c config.ControllerConfig) config.ServerConfig {
			return c.Server
		}),
		fx.Provide(func(c config.ControllerConfig) config.KubernetesConfig {
			return c.Kubernetes
		}),
		fx.Provide(func(c config.ControllerConfig) config.SimulationConfig {
			return c.Simulation
		}),
		fx.Provide(func(c config.ControllerConfig) config.MongoDBConfig {
			return c.MongoDB
		}),
	)
}

// AdapterModule provides the Kubernetes backed domain.ClusterAdapter
func AdapterModule() (fx.Option, error) {
	return fx.Options(
		fx.Provide(NewClusterAdapter),
	), nil
}

func NewClusterAdapter(cfg config.KubernetesConfig) (domain.ClusterAdapter, error) {
	return kubernetes.NewK8SAdapter(context.Background(), kubernetes.Options{
		KubeConfigPath: cfg.KubeConfigPath,
		InCluster:      cfg.InCluster,
		QPS:            cfg.QPS,
		Burst:          cfg.Burst,
		Timeout:        cfg.Timeout,
		NodeCacheTTL:   cfg.NodeCacheTTL,
	})
}

// RepoModule provides the run history recorder when MongoDB is enabled. Without
// it the recorder is simply absent and history queries report ErrHistoryDisabled.
func RepoModule(cfg config.MongoDBConfig) (fx.Option, error) {
	if !cfg.Enabled {
		return fx.Options(), nil
	}
	return fx.Options(
		fx.Invoke(repository.RunMongoMigration),
		fx.Provide(repository.NewRepository),
	), nil
}

type ControllerParams struct {
	fx.In
	Adapter    domain.ClusterAdapter
	Simulation config.SimulationConfig
	Recorder   domain.RunRecorder `optional:"true"`
}

func NewScenarioController(params ControllerParams) *service.ScenarioController {
	return service.NewScenarioController(params.Simulation.Namespace, service.ExecutorOptions{
		Adapter:    params.Adapter,
		Recorder:   params.Recorder,
		Simulation: params.Simulation,
	})
}

// ServiceModule creates an Fx module that provides the controller and domain.Service
func ServiceModule(adapterModule fx.Option, repoModule fx.Option) (fx.Option, error) {
	return fx.Options(
		adapterModule,
		repoModule,
		fx.Provide(NewScenarioController),
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(serviceModule fx.Option) (fx.Option, error) {
	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
