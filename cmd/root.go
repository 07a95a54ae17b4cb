package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/shifaalhind/backend/cmd/http"
	systemcmd "github.com/shifaalhind/backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "shifa",
	Short: "Shifa AlHind medical travel platform for GCC patients.",
	Long: `Shifa AlHind is the backend for a bilingual medical travel platform.
It publishes hospitals, doctors, treatments and packages in English and Arabic
and routes patient enquiries to the care coordination team in Bangalore.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
