package serve

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/config"
	"github.com/inkwell-md/inkwell/internal/server"
	"github.com/inkwell-md/inkwell/internal/store"
)

func NewCmdServe(cfg *config.Config) *cobra.Command {
	var (
		listen string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cloud file store.",
		Long: heredoc.Doc(`
			Serve runs the HTTP file store the editor's cloud menu talks to.
			Files are kept in a local SQLite database, keyed by name.

			Endpoints:
			  GET  /files       list file names
			  GET  /files/{id}  fetch a file body
			  POST /files/{id}  store a file body
		`),
		Example: heredoc.Doc(`
			inkwell serve
			inkwell serve --listen :6474 --db ~/.inkwell/files.sqlite3
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			logger.Info("listening", "addr", listen, "db", dbPath)
			return http.ListenAndServe(listen, server.New(st, logger).Router())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", cfg.Listen, "Address to listen on")
	cmd.Flags().StringVar(&dbPath, "db", cfg.DBPath, "Path to the SQLite database")

	return cmd
}
