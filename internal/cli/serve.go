package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/apiregions/regions/internal/server"
)

// newServeCmd creates the serve command: a read-only HTTP API over the
// collection loaded from the file. The model is not built for concurrent
// mutation, so the served snapshot is immutable; reloading means
// restarting.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve regions over a read-only HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if addr == "" {
				path, err := configPath()
				if err != nil {
					return err
				}
				cfg, err := loadConfig(path)
				if err != nil {
					return err
				}
				addr = cfg.Addr
			}

			c, err := readCollection(args[0])
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    addr,
				Handler: server.New(c, logger).Handler(),
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			logger.Info("serving regions", "addr", addr, "file", args[0], "regions", c.Len())

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	return cmd
}
