package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vfg2006/market-analyzer-api/infrastructure/report"
	"github.com/vfg2006/market-analyzer-api/internal/domain"
	"github.com/vfg2006/market-analyzer-api/pkg/utils"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func newRankCmd(root *rootOptions) *cobra.Command {
	var (
		category string
		all      bool
		format   string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Ranqueia as subcategorias por prioridade de entrada.",
		Long:  "Ranqueia as subcategorias da categoria informada (padrão: categoria do cliente) ou de todas as categorias com --all.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := root.loadSession()
			if err != nil {
				return err
			}

			if all && strings.TrimSpace(category) != "" {
				return fmt.Errorf("use --category ou --all, não ambos")
			}
			if !all {
				if category, err = resolveCategory(session, category); err != nil {
					return fmt.Errorf("%w ou --all", err)
				}
			}

			ranking := session.GenerateRanking(category)
			if ranking == nil {
				ranking = []domain.RankingEntry{}
			}

			format = strings.ToLower(format)
			if format == formatJSON {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(ranking))
				return nil
			}
			if format == formatTable {
				if len(ranking) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma subcategoria para ranquear.")
					return nil
				}
				return printRanking(cmd, ranking)
			}

			if out == "" {
				return report.WriteRanking(cmd.OutOrStdout(), format, ranking)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := report.WriteRanking(f, format, ranking); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ranking exportado em %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Categoria macro (padrão: categoria do cliente)")
	cmd.Flags().BoolVar(&all, "all", false, "Ranqueia todas as categorias")
	cmd.Flags().StringVar(&format, "format", formatTable, "Formato de saída: table, json, csv ou xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Arquivo de saída para csv/xlsx (padrão: stdout)")

	return cmd
}

func printRanking(cmd *cobra.Command, ranking []domain.RankingEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCATEGORIA\tSUBCATEGORIA\tMERCADO 6M\tTICKET MERCADO\tSCORE\tSTATUS\tLEITURA\t")

	for _, e := range ranking {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.3f\t%s\t%s\t\n",
			e.Position, e.Category, e.Subcategory, utils.FormatBR(e.MarketSize),
			utils.FormatBRL(e.MarketTicket), e.Score, e.Status, e.Reading)
	}

	return w.Flush()
}
