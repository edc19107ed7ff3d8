package cmd

import (
	"fmt"
	"os"

	"CheckDiskGo/internal/utils/daemon"

	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the CheckDiskGo service",
	Long:  `Stop the running CheckDiskGo monitoring service.`,
	Run: func(cmd *cobra.Command, args []string) {
		pid, err := daemon.StopProcess(pidFile)
		if err != nil {
			fmt.Printf("Failed to stop CheckDiskGo service: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("CheckDiskGo service (PID: %d) has been stopped\n", pid)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
