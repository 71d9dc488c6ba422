package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harnyk/bitbucket-stupid-mcp/internal/config"
	"github.com/harnyk/bitbucket-stupid-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "bitbucket-mcp",
		Short:        "Read-only MCP server for Bitbucket Server pull requests",
		RunE:         run,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("base-url", "", "Bitbucket Server base URL")
	root.PersistentFlags().String("token", "", "Bitbucket bearer token")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("transport", "stdio", "MCP transport (stdio or http)")
	root.PersistentFlags().String("host", "127.0.0.1", "HTTP listen host")
	root.PersistentFlags().Int("port", 8000, "HTTP listen port")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg, err := mcp.DefaultConfig()
	if err != nil {
		return err
	}
	srv := mcp.New(cfg)

	if config.Transport() == "stdio" {
		return srv.ServeStdio()
	}
	return serveHTTP(srv)
}

func serveHTTP(srv *mcp.Server) error {
	addr := config.HTTPHost() + ":" + strconv.Itoa(config.HTTPPort())
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
