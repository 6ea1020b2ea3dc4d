package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/rgb-guess/internal/config"
	"github.com/vovakirdan/rgb-guess/internal/platform/tui"
	"github.com/vovakirdan/rgb-guess/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH and HTTP servers",
	Long: `Start an SSH server for terminal play and an HTTP server with a JSON API.

Each SSH connection gets its own session with a game picker menu.
Each HTTP game is an in-memory session that expires when idle.
Scores from both are stored in the same database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rgbguess/host_key

Pass an empty address to disable a server.

Examples:
  rgbguess serve                           # SSH on :23234, HTTP on :8080
  rgbguess serve --ssh :2222               # SSH on port 2222
  rgbguess serve --http ""                 # SSH only
  rgbguess serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234
  curl -X POST localhost:8080/api/games -d '{"difficulty":"easy"}'`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes for SSH connections and HTTP games")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: both --ssh and --http are empty")
	}

	colorsCfg, err := config.LoadColors(flagConfig)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	idle := time.Duration(flagIdleTimeout) * time.Minute

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = flagSSHAddr
		sshCfg.HostKeyPath = flagHostKey
		sshCfg.DBPath = flagDBPath
		sshCfg.Store = store
		sshCfg.IdleTimeout = idle
		sshCfg.TickRate = flagFPS
		sshCfg.Logger = logger.WithPrefix("ssh")

		sshServer, err := tui.NewSSHServer(sshCfg)
		if err != nil {
			return err
		}
		g.Go(func() error { return sshServer.Serve(ctx) })
	}

	if flagHTTPAddr != "" {
		webCfg := web.DefaultConfig()
		webCfg.Address = flagHTTPAddr
		webCfg.Colors = colorsCfg
		webCfg.Store = store
		webCfg.IdleTimeout = idle
		webCfg.Logger = logger.WithPrefix("http")
		if flagSeed != 0 {
			seed := flagSeed
			webCfg.Seed = func() int64 { return seed }
		}

		httpServer := web.NewServer(webCfg)
		g.Go(func() error { return httpServer.Serve(ctx) })
	}

	logger.Info("press Ctrl+C to stop")
	return g.Wait()
}
