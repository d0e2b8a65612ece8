package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/modelscout/internal/config"
	"github.com/crimson-sun/modelscout/internal/engine"
	"github.com/crimson-sun/modelscout/internal/model"
	"github.com/crimson-sun/modelscout/internal/output"
	"github.com/crimson-sun/modelscout/internal/selector"
)

var (
	flagAccuracy    float64
	flagDeploy      string
	flagCategory    string
	flagSubcategory string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <task description>",
	Short: "Classify a task description and list matching models by tier",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0, "Minimum reported accuracy in percent (excludes models with no figure)")
	recommendCmd.Flags().StringVar(&flagDeploy, "deploy", "", "Target environment: browser, edge, cloud")
	recommendCmd.Flags().StringVar(&flagCategory, "category", "", "Skip classification and use this category (with --subcategory)")
	recommendCmd.Flags().StringVar(&flagSubcategory, "subcategory", "", "Skip classification and use this subcategory (with --category)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	bypass := flagCategory != "" && flagSubcategory != ""
	if len(args) == 0 && !bypass {
		return cmd.Help()
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var out engine.Outcome
	if bypass {
		label := model.Label{Category: flagCategory, Subcategory: flagSubcategory}
		if !cat.HasLabel(label) {
			return fmt.Errorf("unknown label %s (run 'modelscout labels' for the catalog)", label)
		}
		eng, closeEngine := buildEngineless(cfg, cat)
		defer closeEngine()
		out = eng.Confirm(label)
	} else {
		eng, closeEngine := buildEngine(ctx, cfg, cat)
		defer closeEngine()
		out, err = eng.Classify(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
	}

	if err := output.WriteOutcome(os.Stdout, format, out); err != nil {
		return err
	}
	if out.Status != engine.StatusConfident {
		return nil
	}

	g := selector.New(cat.Models).GroupedByTier(
		out.Result.Label.Category, out.Result.Label.Subcategory,
		flagAccuracy, model.Deployment(flagDeploy))
	return output.WriteGrouped(os.Stdout, format, g)
}
