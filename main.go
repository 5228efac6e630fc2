package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ByLCY/edgeposter/config"
)

func main() {
	os.Exit(execute(context.Background(), newRootCmd()))
}

// execute runs root and returns the process exit code. Errors are printed to
// the command's error stream since cobra's own reporting is silenced.
func execute(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	return 1
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "edgeposter",
		Short:         "EdgePoster 根据一句话生成社媒海报",
		Long:          `EdgePoster 以固定模板、主题配色与种子随机数确定性地渲染海报，支持 PNG / JPEG / PDF 导出与 HTTP 服务。`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("加载配置失败: %w", err)
			}
			level := parseLevel(cfg.Log.Level)
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(versionString() + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认读取 "+config.DefaultPath+"，不存在则忽略）")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPaletteCmd())
	root.AddCommand(newVersionCmd())
	return root
}
