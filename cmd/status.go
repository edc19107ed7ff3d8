package cmd

import (
	"fmt"

	"CheckDiskGo/internal/utils/daemon"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the CheckDiskGo service",
	Long:  `Check if the CheckDiskGo monitoring service is currently running.`,
	Run: func(cmd *cobra.Command, args []string) {
		running, pid := daemon.GetStatus(pidFile)
		if running {
			fmt.Printf("CheckDiskGo service is running (PID: %d)\n", pid)
		} else {
			fmt.Println("CheckDiskGo service is not running")
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
