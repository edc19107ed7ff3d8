package cmd

import (
	"fmt"
	"os"

	"CheckDiskGo/internal/startup"
	"CheckDiskGo/internal/utils/daemon"
	"CheckDiskGo/internal/utils/signal"

	"github.com/spf13/cobra"
)

var (
	foreground bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the CheckDiskGo service",
	Long:  `Start the CheckDiskGo monitoring service in foreground or as a daemon.`,
	Run: func(cmd *cobra.Command, args []string) {
		if daemon.IsRunning(pidFile) {
			fmt.Printf("CheckDiskGo service is already running (PID file exists at %s)\n", pidFile)
			os.Exit(1)
		}

		isChild := os.Getenv("CHECK_DISK_GO_DAEMON") == "1"

		if !foreground && !isChild {
			daemon.Daemonize(configPath, pidFile)
			return
		}

		application := startup.InitializeApplication(configPath)

		builder := startup.StartServer(application)

		if !foreground || isChild {
			daemon.WritePIDFile(pidFile)

			signal.RegisterCleanupFunc(func() {
				daemon.RemovePIDFile(pidFile)
			})
		}

		signal.HandleSignals(application, builder)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVarP(&foreground, "foreground", "f", false, "Run in foreground (not as daemon)")
}
