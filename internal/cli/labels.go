package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/modelscout/internal/config"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List every task label in the catalog, in priority order",
	Args:  cobra.NoArgs,
	RunE:  runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}

func runLabels(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(config.Load())
	if err != nil {
		return err
	}
	for _, l := range cat.Labels() {
		fmt.Fprintln(os.Stdout, l)
	}
	return nil
}
