// Package main はカタログをローカルで検索・表示するCLIです
//
// 使い方:
//
//	catalogctl search whatsapp --page-size 5
//	catalogctl categories
//	catalogctl show com-whatsapp-2-25-17-75
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"jo3qma.com/zona_apk/internal/config"
	"jo3qma.com/zona_apk/internal/infrastructure/datafile"
	"jo3qma.com/zona_apk/internal/logging"
	"jo3qma.com/zona_apk/internal/usecase"
)

// maxPageSize は CATALOG_PAGE_SIZE と同じ上限です
const maxPageSize = 100

// rootOptions は全サブコマンド共通のフラグです
// 未指定の値は環境変数の設定（config.Load）で補います
type rootOptions struct {
	dataPath string
	pageSize int
	locale   string
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Search and browse the APK catalog from the command line",
		Long:          `Loads the catalog data file once and runs searches, category listings and lookups against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "catalog data file (.js or .html); defaults to CATALOG_DATA_PATH")
	cmd.PersistentFlags().IntVar(&opts.pageSize, "page-size", 0, "listings per page; defaults to CATALOG_PAGE_SIZE")
	cmd.PersistentFlags().StringVar(&opts.locale, "locale", "", "locale for category ordering; defaults to CATALOG_LOCALE")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newSearchCmd(opts),
		newCategoriesCmd(opts),
		newShowCmd(opts),
	)
	return cmd
}

// newUsecase はフラグと設定からユースケースを組み立てます
func (o *rootOptions) newUsecase() (*usecase.CatalogUsecase, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if o.dataPath != "" {
		cfg.Catalog.DataPath = o.dataPath
	}
	if o.pageSize < 0 || o.pageSize > maxPageSize {
		return nil, nil, fmt.Errorf("--page-size must be between 1 and %d: %d", maxPageSize, o.pageSize)
	}
	if o.pageSize > 0 {
		cfg.Catalog.PageSize = o.pageSize
	}
	locale := cfg.Catalog.LocaleTag()
	if o.locale != "" {
		tag, err := language.Parse(o.locale)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid locale %q: %w", o.locale, err)
		}
		locale = tag
	}
	level := cfg.Log.Level
	if o.verbose {
		level = "debug"
	}

	logger, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}

	repo := datafile.NewFileRepository(cfg.Catalog.DataPath, logger)
	uc := usecase.NewCatalogUsecase(repo,
		usecase.WithPageSize(cfg.Catalog.PageSize),
		usecase.WithLocale(locale),
		usecase.WithLogger(logger),
	)
	return uc, logger, nil
}
