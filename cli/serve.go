package cli

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/supakorn-kn/go-dashboard/apis"
	"github.com/supakorn-kn/go-dashboard/env"
	"github.com/supakorn-kn/go-dashboard/mongodb"
	"github.com/supakorn-kn/go-dashboard/remote"
	"github.com/supakorn-kn/go-dashboard/sessions"
)

const shutdownTimeout = 10 * time.Second

func (a *app) newServeCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {

	store, closeStore, err := a.sessionStore(ctx)
	if err != nil {
		return err
	}

	defer closeStore()

	client, err := remote.New(a.env.Remote)
	if err != nil {
		return err
	}

	manager := sessions.NewManager(store, client, a.env.Session.TTL)

	server, err := apis.NewServer(manager, client, a.env.PageSize)
	if err != nil {
		return err
	}

	g := gin.Default()
	server.Register(g)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.env.Server.Port),
		Handler: g,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", httpServer.Addr, "remote", a.env.Remote.BaseURL)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stdErrors.Is(err, http.ErrServerClosed) {
			return nil
		}

		slog.Error("run server failed", "error", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}

// sessionStore opens the configured session store and returns its closer.
func (a *app) sessionStore(ctx context.Context) (sessions.Store, func(), error) {

	if a.env.Session.Store == env.MemorySessionStore {
		slog.Warn("sessions are kept in memory and end with the process")
		return sessions.NewMemoryStore(), func() {}, nil
	}

	conn, err := mongodb.InitConnection(a.env.MongoDB.URI(), a.env.MongoDB.DB)
	if err != nil {
		slog.Error("Create MongoDB connection failed", "error", err)
		return nil, nil, err
	}

	closeConn := func() {
		if err := conn.Disconnect(); err != nil {
			slog.Error("disconnect MongoDB failed", "error", err)
		}
	}

	if err := conn.Ping(ctx); err != nil {
		closeConn()
		slog.Error("MongoDB is not answering", "error", err)
		return nil, nil, err
	}

	store, err := sessions.NewMongoStore(conn)
	if err != nil {
		closeConn()
		slog.Error("Create session store failed", "error", err)
		return nil, nil, err
	}

	return store, closeConn, nil
}
