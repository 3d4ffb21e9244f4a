// Command syshealth runs a one-shot health report of the local host:
// telemetry sections, threshold warnings, a Windows upgrade
// compatibility check and a final score.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"syshealth/pkg/collectors"
	"syshealth/pkg/collectors/battery"
	"syshealth/pkg/collectors/cpu"
	"syshealth/pkg/collectors/disk"
	"syshealth/pkg/collectors/firmware"
	"syshealth/pkg/collectors/gpu"
	"syshealth/pkg/collectors/memory"
	"syshealth/pkg/collectors/network"
	"syshealth/pkg/collectors/sysinfo"
	"syshealth/pkg/collectors/updates"
	"syshealth/pkg/config"
	"syshealth/pkg/health"
	"syshealth/pkg/output"
	"syshealth/pkg/upgrade"
)

var version = "dev"

var startupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syshealth",
		Short: "One-shot health report of the local machine",
		Long: `syshealth collects host telemetry (CPU, memory, disks, battery, GPU,
network, firmware), applies fixed health thresholds, checks Windows
upgrade compatibility and prints a scored report. Every report line is
mirrored into a timestamped run log.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	cmd.Flags().String("log-dir", ".", "directory the run log is written to")
	cmd.Flags().Bool("no-color", false, "disable colored console output")
	cmd.Flags().BoolP("verbose", "v", false, "debug diagnostics on stderr")
	cmd.Flags().String("config", "", "config file (default: ./syshealth.toml, $XDG_CONFIG_HOME/syshealth, /etc/syshealth)")

	return cmd
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	diag := logrus.New()
	diag.SetOutput(os.Stderr)
	diag.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		diag.SetLevel(logrus.DebugLevel)
	}

	runLog, err := output.OpenRunLog(cfg.LogDir, time.Now())
	if err != nil {
		return err
	}
	defer runLog.Close()

	fmt.Println(startupStyle.Render("🩺 Starting system health check..."))
	runLog.Logger.Info("Starting system health check...")

	console := output.NewConsole(os.Stdout, runLog.Logger)
	rec := health.NewRecorder(console)

	registry := collectors.NewRegistry()
	registry.Register(sysinfo.New())
	registry.Register(updates.New())
	registry.Register(cpu.New())
	registry.Register(memory.New())
	registry.Register(disk.New())
	registry.Register(battery.New())
	registry.Register(gpu.New())
	registry.Register(network.New())
	registry.Register(firmware.New())

	checks := make([]health.Collector, 0, len(registry.Collectors()))
	for _, c := range registry.Collectors() {
		checks = append(checks, c)
	}
	health.NewChecker(diag).Run(rec, checks)

	upgrade.Check(rec, runLog.Logger)

	output.RenderVerdict(console, rec.Score(), runLog.Path)
	runLog.Logger.Info("System health check finished.")

	return nil
}
