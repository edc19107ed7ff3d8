package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"CheckDiskGo/internal/startup"

	"github.com/spf13/cobra"
)

var (
	configPath string
	pidFile    = filepath.Join(os.TempDir(), "check_disk_go.pid")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "check_disk_go",
	Short: "A disk health reporting service built around CrystalDiskInfo",
	Long: `CheckDiskGo launches the bundled CrystalDiskInfo tool with elevated
privileges in a hidden window, captures its SMART report and exposes the
parsed per-disk results through a CLI, an HTTP API and a WebSocket stream.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default logger for early startup
	startup.SetupDefaultLogger()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "conf/config.yaml", "Path to configuration file")
}
