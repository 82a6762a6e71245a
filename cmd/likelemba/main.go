// likelemba is the interactive terminal client: sign in with a phone code, then browse tontine groups.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"likelemba/internal/authflow"
	"likelemba/internal/cli"
	"likelemba/internal/client"
	"likelemba/internal/config"
)

func main() {
	devOTP := flag.Bool("dev-otp", false, "Print the issued code from the server's dev OTP store (development servers only)")
	flag.Parse()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, err := client.OpenCache(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session cache:", err)
		os.Exit(1)
	}
	defer cache.Close()

	c, err := client.Dial(cfg.ServerAddr, cache)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dial:", err)
		os.Exit(1)
	}
	defer c.Close()

	app := cli.NewApp(c, os.Stdin, os.Stdout,
		cli.WithSecretReader(cli.TerminalSecretReader()),
		cli.WithDevOTP(*devOTP),
		cli.WithFlowOptions(authflow.WithRequestTimeout(cfg.RequestTimeout)),
	)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
