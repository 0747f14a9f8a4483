package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type KubernetesConfig struct {
	KubeConfigPath string        `mapstructure:"kubeconfig_path"`
	InCluster      bool          `mapstructure:"in_cluster"`
	QPS            float32       `mapstructure:"qps"`
	Burst          int           `mapstructure:"burst"`
	Timeout        time.Duration `mapstructure:"timeout"`
	NodeCacheTTL   time.Duration `mapstructure:"node_cache_ttl"` // 0 disables node list caching
}

type SimulationConfig struct {
	Namespace      string        `mapstructure:"namespace"`
	Seed           uint64        `mapstructure:"seed"`            // Used when a scenario sets no seed, 0 means time based
	TickInterval   time.Duration `mapstructure:"tick_interval"`   // Executor main loop period
	StatusInterval time.Duration `mapstructure:"status_interval"` // Periodic status report period
	PollInterval   time.Duration `mapstructure:"poll_interval"`   // Generator wait while paused or outside active windows
	ShutdownGrace  time.Duration `mapstructure:"shutdown_grace"`  // Bound on joining generator loops
	NodeLabels     string        `mapstructure:"node_labels"`     // Label selector of simulation nodes
}

type MongoDBConfig struct {
	Enabled  bool        `mapstructure:"enabled"`
	Database string      `mapstructure:"database"`
	User     string      `mapstructure:"user"`
	Password SecretValue `mapstructure:"password"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
}

type ControllerConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Kubernetes KubernetesConfig `mapstructure:"kubernetes"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	MongoDB    MongoDBConfig    `mapstructure:"mongodb"`
}

var (
	controllerCfg *ControllerConfig
)

func GetConfig() *ControllerConfig {
	return controllerCfg
}

// DefaultSimulationConfig returns the timings used when the config file leaves them unset
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Namespace:      "default",
		TickInterval:   time.Second,
		StatusInterval: 10 * time.Second,
		PollInterval:   time.Second,
		ShutdownGrace:  5 * time.Second,
		NodeLabels:     "type=kwok",
	}
}

func setDefaults(v *viper.Viper) {
	sim := DefaultSimulationConfig()
	v.SetDefault("server.host", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("kubernetes.qps", 20)
	v.SetDefault("kubernetes.burst", 50)
	v.SetDefault("kubernetes.timeout", 10*time.Second)
	v.SetDefault("kubernetes.node_cache_ttl", 5*time.Second)
	v.SetDefault("simulation.namespace", sim.Namespace)
	v.SetDefault("simulation.tick_interval", sim.TickInterval)
	v.SetDefault("simulation.status_interval", sim.StatusInterval)
	v.SetDefault("simulation.poll_interval", sim.PollInterval)
	v.SetDefault("simulation.shutdown_grace", sim.ShutdownGrace)
	v.SetDefault("simulation.node_labels", sim.NodeLabels)
}

func InitControllerConfig(configName string, configPath string) (ControllerConfig, error) {
	var cfg ControllerConfig
	v := viper.New()
	setDefaults(v)
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "controller_config"
	}
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(strings.TrimSuffix(configName, ".toml"))
	v.SetConfigType("toml")
	v.SetEnvPrefix("SIMCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := v.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	controllerCfg = &cfg
	return cfg, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
