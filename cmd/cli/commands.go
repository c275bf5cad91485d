package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/hookbus/infra/initializer"
	"github.com/amirasaad/hookbus/pkg/app"
	"github.com/amirasaad/hookbus/pkg/config"
	"github.com/amirasaad/hookbus/pkg/manifest"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hookbus",
		Short:         "Play hook manifests against an in-process event registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("env-file", ".env", "environment file to load")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newEventsCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <manifest.yaml>",
		Short: "Apply a manifest and execute its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, m, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			p := printerFor(cmd)
			if err := m.Run(cmd.Context(), a.Deps.Registry, p); err != nil {
				p.Error(err)
				return err
			}
			return nil
		},
	}
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events <manifest.yaml>",
		Short: "Apply a manifest without running it and list the declared events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, m, err := setup(cmd, args[0])
			if err != nil {
				return err
			}
			p := printerFor(cmd)
			bus := a.Deps.Registry
			if err := m.Apply(bus, p); err != nil {
				return err
			}
			for _, event := range bus.Events() {
				p.Summary(event, bus.Len(event), bus.IDs(event))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hookbus version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hookbus %s\n", version) //nolint:errcheck
		},
	}
}

// setup loads configuration, builds the registry and parses the manifest.
func setup(cmd *cobra.Command, path string) (*app.App, *manifest.Manifest, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a, err := app.New(deps, cfg)
	if err != nil {
		return nil, nil, err
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	deps.Logger.Debug("manifest loaded", "path", path, "events", len(m.Events), "hooks", len(m.Hooks), "steps", len(m.Steps))
	return a, m, nil
}

func printerFor(cmd *cobra.Command) *manifest.Printer {
	out := cmd.OutOrStdout()
	noColor, _ := cmd.Flags().GetBool("no-color")
	return manifest.NewPrinter(out, !noColor && isTerminal(out))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
