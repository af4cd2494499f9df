package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/gurukul/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}

// runServe opens the store, builds the service, and serves HTTP until
// interrupted. It backs both `gurukul serve` and the bare `gurukul` command.
func runServe(cmd *cobra.Command) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = ":8080"
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	a, err := app.New(ctx, app.Options{
		DBPath: dbPath,
		Addr:   addr,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
