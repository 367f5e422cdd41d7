package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imgforge/bootstage/pkg/config"
	"github.com/imgforge/bootstage/pkg/filesystem"
	"github.com/imgforge/bootstage/pkg/install"
	"github.com/imgforge/bootstage/pkg/logging"
	"github.com/imgforge/bootstage/pkg/output"
	"github.com/imgforge/bootstage/pkg/spec"
)

var (
	artifactDir string
	destDir     string
	bootFiles   string
	formatName  string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Resolve the boot file specification and copy the results",
	Long: `Resolve the boot file specification against the artifact directory and
copy every matched file into the destination tree.

Configuration comes from bootstage.toml and BOOTSTAGE_* environment
variables; flags override both. When no specification is configured at
all, the step is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.install")

		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("artifact-dir") {
			cfg.ArtifactDir = artifactDir
		}
		if cmd.Flags().Changed("dest-dir") {
			cfg.DestDir = destDir
		}
		if cmd.Flags().Changed("boot-files") {
			cfg.BootFiles = &bootFiles
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		format, err := output.ParseFormat(formatName)
		if err != nil {
			return err
		}

		fsys := filesystem.NewOS()
		res, err := spec.Resolve(fsys, cfg.ArtifactDir, cfg.BootFiles)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to resolve boot file specification")
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}

		if dryRun {
			for _, pair := range res.Pairs() {
				fmt.Printf("%s -> %s\n", pair.Source, pair.Dest)
			}
			return nil
		}

		installer := install.New(fsys)
		report, err := installer.Install(res, cfg.ArtifactDir, cfg.DestDir, func(msg string) {
			logger.Warn().Msg(msg)
		})
		if err != nil {
			logger.Error().Err(err).Msg("Boot file installation failed")
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}

		fmt.Print(output.RenderReport(report, format))
		return nil
	},
}

func init() {
	installCmd.Flags().StringVar(&artifactDir, "artifact-dir", "", "Directory containing build artifacts")
	installCmd.Flags().StringVar(&destDir, "dest-dir", "", "Root of the boot staging tree")
	installCmd.Flags().StringVar(&bootFiles, "boot-files", "", "Boot file specification (whitespace-separated entries)")
	installCmd.Flags().StringVar(&formatName, "format", "auto", "Output format: auto, term or text")
}
