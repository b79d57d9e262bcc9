package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eleven-am/tick/pkg/tick"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display Tick version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(tick.FullVersionInfo())
	},
}
