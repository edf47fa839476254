package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
	"github.com/vfg2006/market-analyzer-api/pkg/utils"
)

func newSimulateCmd(root *rootOptions) *cobra.Command {
	var (
		category    string
		subcategory string
		shares      []string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simula faturamento e lucro para metas de participação de mercado.",
		Example: `  market-analyzer simulate --file plano.xlsx --subcategory "Ferramentas Elétricas"
  market-analyzer simulate --file plano.xlsx --subcategory Manuais --share Base=0.2 --share Agressivo=1,5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make([]domain.ShareTarget, 0, len(shares))
			for _, raw := range shares {
				name, share, err := utils.ParseShareTarget(raw)
				if err != nil {
					return err
				}
				targets = append(targets, domain.ShareTarget{Name: name, Share: share})
			}

			session, err := root.loadSession()
			if err != nil {
				return err
			}

			category, err := resolveCategory(session, category)
			if err != nil {
				return err
			}

			simulation := session.SimulateScenarios(category, subcategory, targets)
			if simulation == nil {
				return fmt.Errorf("subcategoria não encontrada: %s / %s", category, subcategory)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				fmt.Fprintln(out, utils.PrettyJson(simulation))
				return nil
			}

			fmt.Fprintf(out, "%s / %s\n", simulation.Category, simulation.Subcategory)
			fmt.Fprintf(out, "Mercado 6M: %s  Participação atual: %.4f%%  Base 6M: %s\n\n",
				utils.FormatBRL(simulation.MarketSize), simulation.CurrentShare, utils.FormatBRL(simulation.Baseline6M))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CENÁRIO\tMETA\tFATURAMENTO 6M\tLUCRO 6M\tDELTA\tCRESCIMENTO\t")
			for _, s := range simulation.Scenarios {
				fmt.Fprintf(w, "%s\t%.2f%%\t%s\t%s\t%s\t%.1f%%\t\n",
					s.Name, s.TargetShare*100, utils.FormatBRL(s.ProjectedRevenue),
					utils.FormatBRL(s.ProjectedProfit), utils.FormatBRL(s.Delta), s.GrowthPct)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Categoria macro (padrão: categoria do cliente)")
	cmd.Flags().StringVarP(&subcategory, "subcategory", "s", "", "Subcategoria a simular")
	cmd.Flags().StringArrayVar(&shares, "share", nil, "Meta no formato Nome=pct (pode repetir)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Imprime o resultado em JSON")
	_ = cmd.MarkFlagRequired("subcategory")

	return cmd
}
