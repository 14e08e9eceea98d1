package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nstehr/ctz-core/agent"
	"github.com/nstehr/ctz-core/config"
	"github.com/nstehr/ctz-core/engine"
	"github.com/nstehr/ctz-core/ipc"
)

const banner = `
 ██████╗████████╗███████╗
██╔════╝╚══██╔══╝╚══███╔╝
██║        ██║     ███╔╝
██║        ██║    ███╔╝
╚██████╗   ██║   ███████╗
 ╚═════╝   ╚═╝   ╚══════╝

Capture-the-Zone Turn Engine`

var configDir string

func main() {
	rootCmd := &cobra.Command{
		Use:   "ctz-core",
		Short: "Per-turn action scoring engine for capture-the-zone bots",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(configDir); err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: config.LogLevel(),
			}))
			slog.SetDefault(logger)
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing "+config.FileName)

	rootCmd.AddCommand(serveCmd(), planCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var socketPath, wsAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve harness connections over a unix socket and optional websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := config.ServerConfig()
			if !cmd.Flags().Changed("socket") {
				socketPath = srv.Socket
			}
			if !cmd.Flags().Changed("ws") {
				wsAddr = srv.WebsocketAddr
			}
			return serve(socketPath, wsAddr)
		},
	}
	cmd.Flags().StringVar(&socketPath, "socket", "", "unix socket path (overrides server.socket)")
	cmd.Flags().StringVar(&wsAddr, "ws", "", "websocket listen address, empty to disable (overrides server.wsAddr)")
	return cmd
}

func serve(socketPath, wsAddr string) error {
	color.New(color.FgCyan, color.Bold).Println(banner)

	// Fail fast on a bad config instead of on the first connection.
	if _, err := config.PlannerOptions(); err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}

	slog.Info("starting ctz-core")

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		return fmt.Errorf("clean up socket %s: %w", socketPath, err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on socket %s: %w", socketPath, err)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(ipc.NewStreamTransport(conn))
		}
	}()

	var httpServer *http.Server
	if wsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", ipc.WebsocketHandler(handleConn))
		httpServer = &http.Server{Addr: wsAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			slog.Info("listening for websocket clients", "addr", wsAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("websocket server failed", "error", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	slog.Info("shutting down")

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("websocket shutdown", "error", err)
		}
	}
	return nil
}

// handleConn gives every harness connection its own planner, since move
// memory belongs to one player's units.
func handleConn(t ipc.Transport) {
	opts, err := config.PlannerOptions()
	if err != nil {
		slog.Error("invalid engine config", "error", err)
		t.Close()
		return
	}
	c := ipc.NewConnection(t, nil)
	a := agent.New(c, engine.NewPlanner(opts...))
	for msgType, h := range a.Handlers() {
		c.RegisterHandler(msgType, h)
	}
	c.ReadLoop()
}
