package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/market-analyzer-api/infrastructure/report"
)

func newReportCmd(root *rootOptions) *cobra.Command {
	var (
		category    string
		subcategory string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório executivo em PDF de uma subcategoria.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := root.loadSession()
			if err != nil {
				return err
			}

			category, err := resolveCategory(session, category)
			if err != nil {
				return err
			}

			data := session.Report(category, subcategory)
			if data == nil {
				return fmt.Errorf("subcategoria não encontrada: %s / %s", category, subcategory)
			}
			data.GeneratedAt = time.Now()

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := report.NewPDFGenerator().Generate(f, data); err != nil {
				return fmt.Errorf("erro ao gerar relatório: %w", err)
			}

			logrus.WithField("out", out).Info("Relatório gerado")
			fmt.Fprintf(cmd.OutOrStdout(), "Relatório gerado em %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Categoria macro (padrão: categoria do cliente)")
	cmd.Flags().StringVarP(&subcategory, "subcategory", "s", "", "Subcategoria do relatório")
	cmd.Flags().StringVarP(&out, "out", "o", "relatorio.pdf", "Arquivo PDF de saída")
	_ = cmd.MarkFlagRequired("subcategory")

	return cmd
}
