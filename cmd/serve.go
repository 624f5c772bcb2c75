package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog, explanations and questions over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		addr := rt.cfg.Server.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}
		if rt.cfg.Env == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		h := server.NewHandler(catalog.Default(), rt.explainer, rt.questions, rt.store.ResultRepo())
		router := server.NewRouter(server.RouterConfig{
			Handler:        h,
			AllowedOrigins: rt.cfg.Server.AllowedOrigins,
			Log:            rt.log,
		})

		rt.log.Infow("starting API", "version", version, "offline", rt.offline)
		return server.New(addr, router, rt.log).ListenAndRun(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
