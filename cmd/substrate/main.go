// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// The substrate command resolves configuration sources from the
// command line and prints the materialized tree.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/substrate"

	"github.com/spf13/cobra"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "substrate",
		Short:         "Inspect placeholder based configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRenderCmd())
	return cmd
}

type renderConfig struct {
	files    []string
	env      bool
	envDelim string
	sets     []string
	path     string
	out      string
}

func newRenderCmd() *cobra.Command {
	var cfg renderConfig
	cmd := &cobra.Command{
		Use:           "render",
		Short:         "Merge config sources, resolve placeholders and print the result",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), cfg, os.Environ())
		},
	}

	cmd.Flags().StringArrayVar(&cfg.files, "config", nil, "config file to merge, lowest precedence first (json, jsonc, yml, yaml)")
	cmd.Flags().BoolVar(&cfg.env, "env", false, "merge process environment variables and bind them as the env namespace")
	cmd.Flags().StringVar(&cfg.envDelim, "env-delimiter", "__", "substring marking nesting boundaries in variable names")
	cmd.Flags().StringArrayVar(&cfg.sets, "set", nil, "key=value override, highest precedence")
	cmd.Flags().StringVar(&cfg.path, "path", "", "print only the subtree at this path")
	cmd.Flags().StringVar(&cfg.out, "out", "yaml", "output format, yaml or json")
	return cmd
}

func render(w io.Writer, cfg renderConfig, environ []string) error {
	if cfg.out != "yaml" && cfg.out != "json" {
		return fmt.Errorf("unsupported output format: %q", cfg.out)
	}

	var srcs []substrate.Source
	for _, f := range cfg.files {
		dir, base := filepath.Split(f)
		if dir == "" {
			dir = "."
		}
		srcs = append(srcs, substrate.FromFile(os.DirFS(dir), base))
	}
	if cfg.env {
		srcs = append(srcs, substrate.FromEnv(environ, substrate.EnvDelimiter(cfg.envDelim)))
	}
	if len(cfg.sets) > 0 {
		srcs = append(srcs, substrate.FromArgs(cfg.sets))
	}

	store, err := substrate.Read(srcs...)
	if err != nil {
		return err
	}

	err = store.Resolve(substrate.Dictionary{
		"env": environMap(environ),
	})
	if err != nil {
		return err
	}

	opts := []substrate.PrintOption{}
	if cfg.out == "json" {
		opts = append(opts, substrate.PrintAsJSON())
	}
	if cfg.path != "" {
		opts = append(opts, substrate.PrintPath(cfg.path))
	}
	return store.Print(w, opts...)
}

func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, pair := range environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
