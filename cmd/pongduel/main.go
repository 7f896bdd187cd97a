package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/diegok/pongduel/internal/app"
	"github.com/diegok/pongduel/internal/config"
	"github.com/diegok/pongduel/internal/server"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if cfg.SpectateAddr != "" {
		showSpectateInfo(cfg.SpectateAddr)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pongduel [options]                Play a two-player match on this terminal")
	fmt.Fprintln(os.Stderr, "  pongduel --watch <url>            Watch a match served with --spectate")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <file>     TOML config file")
	fmt.Fprintln(os.Stderr, "  --tick-rate <n>     Simulation steps per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --hold-ms <n>       How long a key press counts as held (default: 150)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound effects")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --spectate <addr>   Let spectators watch this match")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  Player 1: W/S to move, Space to serve")
	fmt.Fprintln(os.Stderr, "  Player 2: Up/Down to move, Enter to serve")
	fmt.Fprintln(os.Stderr, "  q or Esc quits")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pongduel --spectate :5555")
	fmt.Fprintln(os.Stderr, "  pongduel --watch ws://192.168.1.100:5555/watch")
}

func showSpectateInfo(addr string) {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}

	fmt.Printf("Serving spectators on %s\n", addr)
	fmt.Println("Spectators can connect using:")
	fmt.Println("")

	addrs, err := net.InterfaceAddrs()
	if err == nil {
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}

			ip := ipNet.IP
			if ip.IsLoopback() || ip.To4() == nil {
				continue
			}

			fmt.Printf("  pongduel --watch ws://%s%s\n", net.JoinHostPort(ip.String(), port), server.WatchPath)
		}
	}

	fmt.Printf("  pongduel --watch ws://%s%s  (same machine)\n", net.JoinHostPort("localhost", port), server.WatchPath)
	fmt.Println("")
}
