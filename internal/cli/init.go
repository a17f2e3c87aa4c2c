package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcheck/internal/logging"
	"github.com/yaklabco/mdcheck/pkg/config"
	"github.com/yaklabco/mdcheck/pkg/fsutil"
	"github.com/yaklabco/mdcheck/pkg/lint"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigName is the file written by init.
const defaultConfigName = ".mdcheck.yml"

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .mdcheck.yml configuration file",
		Long: `Write a configuration file listing every rule with its default
enablement and options, ready to be edited.

Examples:
  mdcheck init                      Create .mdcheck.yml
  mdcheck init --force              Overwrite an existing file
  mdcheck init --output docs.yml    Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigName, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	_, statErr := os.Stat(absPath)
	switch {
	case statErr == nil && !flags.force:
		return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
	case statErr == nil:
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	case !errors.Is(statErr, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", flags.output, statErr)
	}

	infos, err := templateRules(lint.DefaultRegistry)
	if err != nil {
		return err
	}
	content, err := config.GenerateTemplate(infos)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	written, err := fsutil.WriteAtomicIfChanged(cmd.Context(), absPath, content, configFilePermissions)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if !written {
		logger.Info("configuration file is already up to date", logging.FieldPath, flags.output)
		return nil
	}

	logger.Info("created configuration file",
		logging.FieldPath, flags.output,
		logging.FieldRules, len(infos),
	)
	return nil
}

// templateRules collects the metadata GenerateTemplate renders.
func templateRules(registry *lint.Registry) ([]config.RuleInfo, error) {
	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		opts, err := defaultOptionsMap(rule)
		if err != nil {
			return nil, err
		}
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Tags:        rule.Tags(),
			Options:     opts,
		})
	}
	return infos, nil
}
