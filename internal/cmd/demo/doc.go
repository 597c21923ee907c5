// Package demo exposes a shared Run entrypoint used by the CLI to
// exercise the logging pipeline end to end: it initializes a registry,
// logs from component loggers and concurrent workers, then flushes and
// shuts down.
//
// Example:
//
//	opts := demo.Options{AppName: "app_a", LogDir: "./logs", Level: "debug"}
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = demo.Run(ctx, opts)
package demo
