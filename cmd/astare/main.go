package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	runtimesvc "github.com/lexcodex/astare/internal/astare/runtime"
	"github.com/lexcodex/astare/internal/astare/tui"
	"github.com/lexcodex/astare/server"
)

var (
	cfg        = runtimesvc.DefaultConfig()
	lightTheme bool
	noNameDefs bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "astare [file]",
		Short:         "Terminal explorer for syntax trees",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Normalize(); err != nil {
				return err
			}
			if lightTheme {
				cfg.Dark = false
			}
			if noNameDefs {
				cfg.NameDefs = false
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runWithRuntime(cmd, func(ctx context.Context, rt *runtimesvc.Runtime) error {
				return tui.Run(ctx, rt, path)
			})
		},
	}
	root.PersistentFlags().StringVar(&cfg.Workspace, "workspace", cfg.Workspace, "Workspace directory")
	root.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Config file path")
	root.PersistentFlags().BoolVar(&cfg.Rainbow, "rainbow", cfg.Rainbow, "Color the enclosing nodes of the selection")
	root.PersistentFlags().BoolVar(&lightTheme, "light", false, "Use the light highlight palette")
	root.PersistentFlags().BoolVar(&noNameDefs, "no-name-defs", false, "Hide definition names in the tree")

	root.AddCommand(newRecentCmd(), newServeCmd())
	return root
}

func newRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(cmd, func(ctx context.Context, rt *runtimesvc.Runtime) error {
				files, err := rt.Recent(ctx)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no files opened yet")
					return nil
				}
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\topened %d times, last %s\n",
						f.Path, f.Language, f.OpenCount, f.LastOpened.Local().Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	}
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON-RPC inspector server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(cmd, func(ctx context.Context, rt *runtimesvc.Runtime) error {
				inspector := &server.Inspector{Logger: rt.Logger}
				fmt.Fprintf(cmd.OutOrStdout(), "astare inspector listening on %s\n", cfg.ServerAddr)
				err := inspector.Serve(ctx, cfg.ServerAddr)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			})
		},
	}
	cmd.Flags().StringVar(&cfg.ServerAddr, "addr", cfg.ServerAddr, "Inspector listen address")
	return cmd
}

func runWithRuntime(cmd *cobra.Command, fn func(context.Context, *runtimesvc.Runtime) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := runtimesvc.New(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(ctx, rt)
}
