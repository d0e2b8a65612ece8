package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/modelscout/internal/catalog"
	"github.com/crimson-sun/modelscout/internal/config"
)

var (
	flagTaxonomy string
	flagModels   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog files and print a summary",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagTaxonomy, "taxonomy", "", "Taxonomy YAML path (default $MODELSCOUT_TAXONOMY_PATH)")
	validateCmd.Flags().StringVar(&flagModels, "models", "", "Model catalog YAML path (default $MODELSCOUT_MODELS_PATH)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	taxonomy := flagTaxonomy
	if taxonomy == "" {
		taxonomy = cfg.Catalog.TaxonomyPath
	}
	models := flagModels
	if models == "" {
		models = cfg.Catalog.ModelsPath
	}

	var cat *catalog.Catalog
	var err error
	if taxonomy == "" && models == "" {
		cat = catalog.Default()
		fmt.Fprintln(os.Stdout, "built-in catalog")
	} else {
		cat, err = catalog.Load(taxonomy, models)
		if err != nil {
			return err
		}
	}

	subcats := 0
	examples := 0
	for _, c := range cat.Categories {
		subcats += len(c.Subcategories)
		for _, s := range c.Subcategories {
			examples += len(s.Examples)
		}
	}
	fmt.Fprintf(os.Stdout, "ok: %d categories, %d subcategories, %d examples, %d models\n",
		len(cat.Categories), subcats, examples, len(cat.Models))
	return nil
}
