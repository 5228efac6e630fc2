package main

import (
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ByLCY/edgeposter/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务（/api/hello、/api/poster.png、/api/health）",
		Long:  `启动 HTTP 服务。监听地址依次取 --addr、环境变量 PORT 与配置 server.addr。`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := configFromContext(cmd.Context())
			cfg.ApplyEnv(os.Getenv)
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if logger.GetLevel() > charmlog.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fonts := fontSet(cfg.Render.Fonts)
			if err := checkFonts(fonts); err != nil {
				return err
			}
			srv := server.New(server.Options{
				Logger: logger.WithPrefix("http"),
				Fonts:  fonts,
			})
			return srv.Run(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "监听地址，如 :8080")
	return cmd
}
