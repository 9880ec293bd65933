package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/farmasystem/pos/internal/common"
	"github.com/farmasystem/pos/internal/log"
	posCmd "github.com/farmasystem/pos/pos/cmd"
)

func Start() {
	logger := log.InitLogger(fmt.Sprintf("/var/log/%s.log", common.AppPosService)).
		With().
		Str(log.KeyAppName, common.AppPosService).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "pos",
		Short: "Run pos terminal service",
		Run: func(cmd *cobra.Command, args []string) {
			posCmd.RunPosService(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
