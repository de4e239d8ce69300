// lily runs the compiled demo unit from the command line.
//
// Usage:
//
//	lily hello
//	lily sum 1.0 2.0 3.0
//	lily sum --file values.yaml
//	lily sumint 1 2 3 4
//	lily demo
//	lily config
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/soypat/lily"
	"github.com/soypat/lily/intrinsic"
	"github.com/soypat/lily/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	err := cmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "lily: %v\n", err)
	}
	os.Exit(intrinsic.ExitCode(err))
}

// app holds the state shared by all subcommands of a single invocation.
type app struct {
	configPath string
	verbose    bool

	stdout, stderr io.Writer
	cfg            *config.Config
	logger         *zap.Logger
	console        *intrinsic.Console
	rt             *lily.Runtime
	closeOutput    func() error
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "lily",
		Short:         "Run the routines of the compiled demo unit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", "lily.yaml", "configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.helloCmd(),
		a.sumCmd(),
		a.sumIntCmd(),
		a.demoCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return intrinsic.Fail(2, err)
	}
	a.cfg = cfg
	a.logger, err = cfg.Logger(a.verbose)
	if err != nil {
		return intrinsic.Fail(2, err)
	}
	out, closeFn, err := cfg.OpenOutput(a.stdout, a.stderr)
	if err != nil {
		return intrinsic.Fail(2, err)
	}
	a.closeOutput = closeFn
	a.console = intrinsic.NewConsole(out)
	a.console.SetPrefix(cfg.Console.Prefix)
	a.rt = lily.NewRuntime(a.console, lily.WithLogger(a.logger))
	a.logger.Debug("configured", zap.String("config", a.configPath), zap.String("output", cfg.Console.Output))
	return nil
}

func (a *app) teardown() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.closeOutput != nil {
		return a.closeOutput()
	}
	return nil
}

func (a *app) helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Print the hello world greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.rt.HelloWorld()
		},
	}
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every routine of the unit on built-in inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.rt.Demo()
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
