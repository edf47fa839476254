package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vfg2006/market-analyzer-api/pkg/utils"
)

func newTrendCmd(root *rootOptions) *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Mostra a tendência da categoria e a projeção dos próximos 3 períodos.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := root.loadSession()
			if err != nil {
				return err
			}

			category, err := resolveCategory(session, category)
			if err != nil {
				return err
			}

			trend := session.Trend(category)

			out := cmd.OutOrStdout()
			if asJSON {
				fmt.Fprintln(out, utils.PrettyJson(trend))
				return nil
			}

			fmt.Fprintf(out, "Categoria: %s\n", trend.Category)
			fmt.Fprintf(out, "Tendência: %s (%.2f%% ao mês, %d períodos)\n", trend.Direction, trend.MonthlyGrowthPct, trend.PeriodsUsed)
			fmt.Fprintf(out, "Base mensal: %s\n\n", utils.FormatBRL(trend.Baseline))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MÊS\tFATURAMENTO\tVS BASE\t")
			for _, m := range trend.Months {
				fmt.Fprintf(w, "+%d\t%s\t%.1f%%\t\n", m.Month, utils.FormatBRL(m.Revenue), m.GrowthVsBaselinePct)
			}
			fmt.Fprintf(w, "TOTAL\t%s\t \t\n", utils.FormatBRL(trend.Projection3P))
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Categoria macro (padrão: categoria do cliente)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Imprime o resultado em JSON")

	return cmd
}
