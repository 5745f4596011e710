package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/digest-curator/internal/classifier"
	"github.com/jonesrussell/digest-curator/internal/config"
	"github.com/jonesrussell/digest-curator/internal/curator"
	"github.com/jonesrussell/digest-curator/internal/domain"
	"github.com/jonesrussell/digest-curator/internal/editorial"
	"github.com/jonesrussell/digest-curator/internal/engagement"
	"github.com/jonesrussell/digest-curator/internal/logger"
	"github.com/jonesrussell/digest-curator/internal/processor"
	"github.com/jonesrussell/digest-curator/internal/records"
	"github.com/jonesrussell/digest-curator/internal/render"
	"github.com/jonesrussell/digest-curator/internal/taxonomy"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "curator",
		Short:         "Newsletter curation pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newCurateCommand())
	rootCmd.AddCommand(newTaxonomyCommand())
	return rootCmd
}

func newCurateCommand() *cobra.Command {
	var (
		inputPath    string
		outputPath   string
		configPath   string
		minRelevance float64
		poolSize     int
		publishCount int
		preview      bool
	)

	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Curate a raw batch file into a newsletter document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags win over config file values.
			if cmd.Flags().Changed("min-relevance") {
				cfg.Curation.MinRelevance = minRelevance
			}
			if cmd.Flags().Changed("pool-size") {
				cfg.Curation.PoolSize = poolSize
			}
			if cmd.Flags().Changed("publish") {
				cfg.Curation.PublishCount = publishCount
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			tax := taxonomy.Default()
			if cfg.Taxonomy.Path != "" {
				if tax, err = taxonomy.Load(cfg.Taxonomy.Path); err != nil {
					return fmt.Errorf("load taxonomy: %w", err)
				}
			}

			batch, err := records.LoadBatch(inputPath)
			if err != nil {
				return err
			}

			source := batch.Source
			if source == "" {
				source = cfg.Service.Source
			}

			cur := curator.New(
				classifier.New(tax, log),
				engagement.New(log),
				editorial.New(),
				processor.New(cfg.Service.Concurrency, log),
				nil,
				log,
				curator.Options{
					Defaults: domain.CurationConfig{
						MinRelevance: cfg.Curation.MinRelevance,
						PoolSize:     cfg.Curation.PoolSize,
						PublishCount: cfg.Curation.PublishCount,
					},
					Source: source,
				},
			)

			output, err := cur.Curate(cmd.Context(), batch.Items)
			if err != nil {
				return err
			}

			if outputPath == "" {
				outputPath = records.DefaultOutputPath("output", time.Now())
			}
			if err := records.SaveOutput(outputPath, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d published items to %s\n",
				output.Stats.PublishedItems, outputPath)

			if preview {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), render.Markdown(output))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Input JSON file with raw items")
	cmd.Flags().StringVar(&outputPath, "output", "", "Output JSON file (default: output/newsletter_curated_<ts>.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().Float64Var(&minRelevance, "min-relevance", curator.DefaultMinRelevance, "Minimum relevance score")
	cmd.Flags().IntVar(&poolSize, "pool-size", curator.DefaultPoolSize, "Internal candidate pool size")
	cmd.Flags().IntVar(&publishCount, "publish", curator.DefaultPublishCount, "Items to publish (8 daily, 12 weekly)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Print a markdown preview")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newTaxonomyCommand() *cobra.Command {
	var taxonomyPath string

	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the active topic taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			tax := taxonomy.Default()
			if taxonomyPath != "" {
				var err error
				if tax, err = taxonomy.Load(taxonomyPath); err != nil {
					return err
				}
			}

			for _, topic := range tax.Topics {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s weight=%.2f  %s (%d keywords)\n",
					topic.ID, topic.Weight, topic.Label, len(topic.Keywords))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d noise phrases\n", len(tax.NoiseKeywords))
			return nil
		},
	}

	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "Taxonomy YAML file (default: built-in)")
	return cmd
}
