package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/Gthulhu/scenario-controller/adapter/memory"
	"github.com/Gthulhu/scenario-controller/app"
	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/Gthulhu/scenario-controller/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ScenarioManifest is a SimulationScenario resource as written in a YAML file
type ScenarioManifest struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Metadata   ManifestMeta   `yaml:"metadata"`
	Spec       map[string]any `yaml:"spec"`
}

type ManifestMeta struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace,omitempty"`
}

const scenarioKind = "SimulationScenario"

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one scenario from a YAML file",
		Long: `Execute a single SimulationScenario read from a file, without watching
the cluster for resources.

Examples:
  # Run against the cluster configured in the config file
  scenario-controller run -f office-hours.yaml

  # Run against an in-memory fleet of 4 nodes with 3 VMs each
  scenario-controller run -f office-hours.yaml --dry-run --nodes 4 --vms-per-node 3`,
		RunE: runScenarioFile,
	}
	cmd.Flags().StringP("file", "f", "", "SimulationScenario YAML file (required)")
	cmd.Flags().Bool("dry-run", false, "Execute against an in-memory fleet instead of the cluster")
	cmd.Flags().Int("nodes", 3, "Simulation nodes in the dry-run fleet")
	cmd.Flags().Int("vms-per-node", 2, "VMs per node in the dry-run fleet")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runScenarioFile(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.Logging.Level, cfg.Logging.JSON)

	manifest, err := readManifest(filename)
	if err != nil {
		return err
	}
	ref := domain.ScenarioRef{Namespace: manifest.Metadata.Namespace, Name: manifest.Metadata.Name}
	if ref.Namespace == "" {
		ref.Namespace = cfg.Simulation.Namespace
	}
	spec, err := domain.ParseScenarioSpec(manifest.Spec)
	if err != nil {
		return err
	}

	var adapter domain.ClusterAdapter
	if dryRun {
		nodes, _ := cmd.Flags().GetInt("nodes")
		perNode, _ := cmd.Flags().GetInt("vms-per-node")
		adapter = dryRunFleet(ref.Namespace, spec, nodes, perNode)
	} else {
		adapter, err = app.NewClusterAdapter(cfg.Kubernetes)
		if err != nil {
			return err
		}
	}

	exec, err := service.NewScenarioExecutor(ref, spec, service.ExecutorOptions{
		Adapter:    adapter,
		Simulation: cfg.Simulation,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runErr := exec.Run(ctx)
	printSummary(cmd.OutOrStdout(), exec)
	return runErr
}

func readManifest(filename string) (*ScenarioManifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	var manifest ScenarioManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if manifest.Kind != "" && manifest.Kind != scenarioKind {
		return nil, fmt.Errorf("unsupported resource kind: %s", manifest.Kind)
	}
	if manifest.Metadata.Name == "" {
		return nil, fmt.Errorf("%s: metadata.name is required", filename)
	}
	return &manifest, nil
}

// dryRunFleet builds an in-memory fleet of kwok nodes. Every VM named in a
// pool is placed on the nodes round robin so that pool assignments resolve.
func dryRunFleet(namespace string, spec domain.ScenarioSpec, nodes, perNode int) *memory.Fleet {
	fleet := memory.NewFleet()
	if nodes < 1 {
		nodes = 1
	}
	names := make([]string, nodes)
	for i := range names {
		names[i] = fmt.Sprintf("kwok-node-%d", i)
		fleet.AddNode(names[i], map[string]string{"type": "kwok"})
		for j := 0; j < perNode; j++ {
			fleet.AddVM(namespace, fmt.Sprintf("vm-%d-%d", i, j), names[i])
		}
	}

	pools := make([]string, 0, len(spec.VMPools))
	for name := range spec.VMPools {
		pools = append(pools, name)
	}
	sort.Strings(pools)
	next := 0
	for _, pool := range pools {
		for _, vm := range spec.VMPools[pool].VMs {
			fleet.AddVM(namespace, vm, names[next%nodes])
			next++
		}
	}
	return fleet
}

func printSummary(w io.Writer, exec *service.ScenarioExecutor) {
	status := exec.Status()
	fmt.Fprintf(w, "Scenario %s: %s (%s)\n", exec.Ref(), status.Phase, status.Message)
	fmt.Fprintf(w, "  Simulated time elapsed: %s\n", status.ElapsedSimulatedTime)
	fmt.Fprintf(w, "  Real time elapsed:      %s\n", status.ElapsedRealTime)
	fmt.Fprintf(w, "  Tasks generated:        %d\n", status.TotalTasksGenerated)

	ticks := exec.GeneratorTicks()
	gens := make([]string, 0, len(ticks))
	for name := range ticks {
		gens = append(gens, name)
	}
	sort.Strings(gens)
	for _, name := range gens {
		fmt.Fprintf(w, "  Generator %s: %d ticks\n", name, ticks[name])
	}

	for _, vm := range exec.Registry().VMs() {
		u := exec.Registry().Utilization(vm)
		fmt.Fprintf(w, "  VM %s: cpu=%.2f memory=%.2f active=%d\n", vm, u.CPU, u.Memory, len(exec.Registry().Tasks(vm)))
	}
}
