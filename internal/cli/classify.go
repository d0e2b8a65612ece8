package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/modelscout/internal/config"
	"github.com/crimson-sun/modelscout/internal/output"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <task description>",
	Short: "Classify a task description without listing models",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, closeEngine := buildEngine(ctx, cfg, cat)
	defer closeEngine()

	out, err := eng.Classify(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return output.WriteOutcome(os.Stdout, format, out)
}
