// Package cli expõe o motor de priorização em linha de comando, lendo uma planilha local
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/market-analyzer-api/infrastructure/importer"
	"github.com/vfg2006/market-analyzer-api/internal/analyzer"
)

type rootOptions struct {
	file      string
	headerRow int
	logLevel  string
}

// NewRootCmd monta o comando raiz com todos os subcomandos
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "market-analyzer",
		Short: "Prioriza subcategorias de marketplace a partir de uma planilha de mercado.",
		Long: `market-analyzer lê a planilha com as abas Cliente, Mercado_Categoria e Mercado_Subcategoria
e responde às mesmas análises da API: ranking, cenários, tendência e relatório em PDF.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("nível de log inválido: %s", opts.logLevel)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Planilha .xlsx com os dados do cliente e do mercado")
	rootCmd.PersistentFlags().IntVar(&opts.headerRow, "header-row", importer.DefaultHeaderRow, "Linha do cabeçalho nas abas de mercado")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "loglevel", "l", "warn", "Nível de log: debug, info, warn, error")

	rootCmd.AddCommand(
		newRankCmd(opts),
		newSimulateCmd(opts),
		newTrendCmd(opts),
		newReportCmd(opts),
	)

	return rootCmd
}

// Execute roda o comando raiz; chamado por main.main()
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSession importa a planilha informada em --file
func (o *rootOptions) loadSession() (*analyzer.Session, error) {
	if strings.TrimSpace(o.file) == "" {
		return nil, fmt.Errorf("informe a planilha com --file")
	}

	f, err := os.Open(o.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("planilha não encontrada: %s", o.file)
		}
		return nil, err
	}
	defer f.Close()

	session, summary, err := importer.NewWorkbookImporter(o.headerRow).Import(f)
	if err != nil {
		return nil, fmt.Errorf("erro ao importar planilha: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file":             o.file,
		"category_periods": summary.CategoryPeriods,
		"subcategories":    summary.Subcategories,
	}).Info("Planilha importada")

	for _, warning := range summary.Warnings {
		logrus.Warn(warning)
	}

	return session, nil
}

// resolveCategory usa a categoria do perfil do cliente quando --category não foi informado
func resolveCategory(session *analyzer.Session, category string) (string, error) {
	category = strings.TrimSpace(category)
	if category != "" {
		return category, nil
	}

	if profile, ok := session.Profile(); ok && profile.Category != "" {
		return profile.Category, nil
	}

	return "", fmt.Errorf("informe a categoria com --category")
}
