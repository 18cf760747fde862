package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"craigmix/internal/config"
	"craigmix/internal/logging"
	"craigmix/internal/merge"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		directoryFlag string
		outputDirFlag string
		formatFlag    string
		qualityFlag   string
		deleteFlag    string
		dryRunFlag    bool
		verboseFlag   bool
	)

	rootCmd := &cobra.Command{
		Use:   "craigmix",
		Short: "Merge Craig Discord recordings into single normalized audio files",
		Long: `craigmix scans a directory for Craig session folders (craig-<identifier>),
merges each folder's per-speaker tracks with ffmpeg, normalizes loudness, and
writes one encoded file per session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if err := applyFlagOverrides(cmd, cfg, flagOverrides{
				directory: directoryFlag,
				outputDir: outputDirFlag,
				format:    formatFlag,
				quality:   qualityFlag,
				delete:    deleteFlag,
			}); err != nil {
				return err
			}

			level := cfg.Logging.Level
			if verboseFlag {
				level = "debug"
			}
			logger, err := logging.New(logging.Options{
				Level:  level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			opts := []merge.Option{
				merge.WithConfirmer(newStdinConfirmer()),
			}
			if factory := newProgressFactory(); factory != nil {
				opts = append(opts, merge.WithProgress(factory))
			}

			processor, err := merge.New(cfg, logger, opts...)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if dryRunFlag {
				plans, err := processor.Plan(ctx)
				if err != nil {
					return err
				}
				renderDryRun(cmd, plans)
				return nil
			}

			summary, err := processor.Run(ctx)
			if err != nil {
				return err
			}
			renderSummary(cmd, summary)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&directoryFlag, "directory", "d", "", "Base directory to scan for Craig folders (default: current directory)")
	rootCmd.Flags().StringVar(&outputDirFlag, "output-dir", "", "Output directory for merged files (default: base directory)")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: mp3, wav, ogg, aac (default: mp3)")
	rootCmd.Flags().StringVar(&qualityFlag, "quality", "", "Output quality: low, medium, high (default: medium)")
	rootCmd.Flags().StringVar(&deleteFlag, "delete-originals", "", "Delete source tracks after a successful merge: never, always, prompt")
	rootCmd.Flags().Lookup("delete-originals").NoOptDefVal = config.DeletePrompt
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report what would be processed without invoking ffmpeg")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newDepsCommand())
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

type flagOverrides struct {
	directory string
	outputDir string
	format    string
	quality   string
	delete    string
}

// applyFlagOverrides layers explicit CLI flags over file-sourced config, then
// re-validates so flag typos get the same error text as config mistakes.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, overrides flagOverrides) error {
	if cmd.Flags().Changed("directory") {
		expanded, err := config.ExpandPath(overrides.directory)
		if err != nil {
			return fmt.Errorf("resolve directory: %w", err)
		}
		cfg.Paths.BaseDirectory = expanded
		// Track the base directory unless the output location was pinned
		// by flag or file.
		if !cmd.Flags().Changed("output-dir") {
			cfg.Paths.OutputDir = expanded
		}
	}
	if cmd.Flags().Changed("output-dir") {
		expanded, err := config.ExpandPath(overrides.outputDir)
		if err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
		cfg.Paths.OutputDir = expanded
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = overrides.format
	}
	if cmd.Flags().Changed("quality") {
		cfg.Output.Quality = overrides.quality
	}
	if cmd.Flags().Changed("delete-originals") {
		cfg.Cleanup.DeleteOriginals = overrides.delete
	}
	return cfg.Validate()
}
