package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsnam19/vsnlogger/internal/cmd/demo"
	"github.com/vsnam19/vsnlogger/internal/config"
	"github.com/vsnam19/vsnlogger/internal/format"
	"github.com/vsnam19/vsnlogger/pkg/codes"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vsnlog",
		Short: "vsnlogger CLI",
		Long:  "vsnlog inspects and exercises the vsnlogger configuration, formatting, and sink pipeline.",
	}

	// demo
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a demo workload through the logging pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			appName, _ := cmd.Flags().GetString("app-name")
			logDir, _ := cmd.Flags().GetString("log-dir")
			configFile, _ := cmd.Flags().GetString("config")
			level, _ := cmd.Flags().GetString("level")
			workers, _ := cmd.Flags().GetInt("workers")
			iterations, _ := cmd.Flags().GetInt("iterations")

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return demo.Run(ctx, demo.Options{
				AppName:    appName,
				LogDir:     logDir,
				ConfigFile: configFile,
				Level:      level,
				Workers:    workers,
				Iterations: iterations,
				Interval:   200 * time.Millisecond,
			})
		},
	}
	demoCmd.Flags().String("app-name", "vsnlog-demo", "Application name for the demo logger")
	demoCmd.Flags().String("log-dir", "./logs", "Base log directory")
	demoCmd.Flags().String("config", "", "Configuration file (overrides --log-dir and --level)")
	demoCmd.Flags().String("level", "info", "Log level: trace|debug|info|warn|error|critical")
	demoCmd.Flags().Int("workers", 2, "Concurrent worker goroutines")
	demoCmd.Flags().Int("iterations", 3, "Iterations per worker")
	rootCmd.AddCommand(demoCmd)

	// render
	renderCmd := &cobra.Command{
		Use:   "render [message]",
		Short: "Render a message through a formatter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			level, _ := cmd.Flags().GetString("level")
			component, _ := cmd.Flags().GetString("component")
			fields, _ := cmd.Flags().GetStringSlice("field")
			message := strings.Join(args, " ")

			switch formatName {
			case "json":
				extra := map[string]string{}
				for _, f := range fields {
					if k, v, ok := strings.Cut(f, "="); ok {
						extra[k] = v
					}
				}
				line, c := format.JSON(message, level, component, extra)
				if c != codes.OK {
					return c.Err()
				}
				fmt.Println(line)
			case "syslog":
				fmt.Println(format.Syslog(message, level, component))
			case "console":
				fmt.Println(format.Console(message, level, component))
			default:
				return fmt.Errorf("invalid --format; use json|syslog|console")
			}
			return nil
		},
	}
	renderCmd.Flags().String("format", "console", "Output format: json|syslog|console")
	renderCmd.Flags().String("level", "info", "Record level")
	renderCmd.Flags().String("component", "", "Component name (optional)")
	renderCmd.Flags().StringSlice("field", nil, "Extra key=value field (json only, repeatable)")
	rootCmd.AddCommand(renderCmd)

	// pattern
	patternCmd := &cobra.Command{
		Use:   "pattern <preset>",
		Short: "Print the template for a pattern preset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(format.Pattern(args[0]))
		},
	}
	rootCmd.AddCommand(patternCmd)

	// config get
	configCmd := &cobra.Command{Use: "config", Short: "Configuration operations"}
	configGetCmd := &cobra.Command{
		Use:   "get <section> <key>",
		Short: "Resolve a configuration value with global fallback",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			def, _ := cmd.Flags().GetString("default")

			store := config.NewStore()
			if file != "" {
				if c := store.LoadFromFile(file); c != codes.OK {
					return fmt.Errorf("load %s: %w", file, c.Err())
				}
			}
			if c := store.LoadFromEnv(); c != codes.OK && c != codes.NotInitialized {
				return fmt.Errorf("load environment: %w", c.Err())
			}
			fmt.Println(store.GetString(args[0], args[1], def))
			return nil
		},
	}
	configGetCmd.Flags().String("file", "", "Configuration file to load first")
	configGetCmd.Flags().String("default", "", "Value to print when the key resolves nowhere")
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
