package main

import (
	"context"
	"fmt"
	"os"

	"prosono/client/internal/api"
	"prosono/client/internal/config"
	"prosono/client/internal/log"
	"prosono/client/internal/session"
	"prosono/client/internal/survey"
	"prosono/client/internal/tokenstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := log.New(cfg.Environment, cfg.LogLevel)

	store := tokenstore.New(cfg.Tokens.Path, logger)
	client := api.New(cfg, store, logger)
	sess := session.NewManager(client, store, cfg, logger)
	daily := survey.NewDailyService(client, logger)

	client.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Your session has expired. Please log in again with: prosono login")
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	app := &app{cfg: cfg, client: client, session: sess, daily: daily, logger: logger}

	// Rebuild the session from stored tokens before any command runs.
	sess.Initialize(ctx)

	var cmdErr error
	switch os.Args[1] {
	case "register":
		cmdErr = app.register(ctx, os.Args[2:])
	case "login":
		cmdErr = app.login(ctx, os.Args[2:])
	case "logout":
		cmdErr = app.logout(ctx)
	case "refresh":
		cmdErr = app.refresh(ctx)
	case "profile":
		cmdErr = app.profile(ctx, os.Args[2:])
	case "dashboard":
		cmdErr = app.dashboard(ctx)
	case "assess":
		cmdErr = app.assess(ctx)
	case "track":
		cmdErr = app.track(ctx)
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: prosono <command>

Commands:
  register   create a program account (then log in separately)
  login      start a session
  logout     end the session
  refresh    explicitly refresh the access token
  profile    show or update the profile (-update with field flags)
  dashboard  show aggregated sleep statistics
  assess     run the 4-step sleep evaluation
  track      log last night's sleep`)
}
