package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"CheckDiskGo/internal/checker"
	"CheckDiskGo/internal/startup"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a disk health check and print the report",
	Long: `Run the bundled CrystalDiskInfo tool once and print the parsed
disk health report. This requires accepting an elevation prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		application := startup.InitializeApplication(configPath)
		defer application.Shutdown()

		chk := checker.New(application.GetConfig())
		rep, err := chk.Run(context.Background())
		if err != nil {
			switch {
			case errors.Is(err, checker.ErrElevationDenied):
				fmt.Println("The disk check was cancelled: elevation was denied.")
			case errors.Is(err, checker.ErrNoReport):
				fmt.Println("CrystalDiskInfo produced no report.")
			case errors.Is(err, checker.ErrUnsupported):
				fmt.Println("Disk health checks require Windows.")
			default:
				fmt.Printf("Disk check failed: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Println(rep.Summary)
		fmt.Println()
		fmt.Println(rep.Details)

		if rep.Alerts > 0 {
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
