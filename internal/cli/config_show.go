package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagekit/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  # Show configuration as YAML
  pagekit config show

  # Show configuration as JSON
  pagekit config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			w := cmd.OutOrStdout()

			switch outputFormat {
			case config.OutputJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			case config.OutputYAML, "":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("marshalling config: %w", err)
				}
				_, err = w.Write(data)
				return err
			default:
				return fmt.Errorf("unsupported output format: %s (supported: yaml, json)", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", config.OutputYAML, "output format: yaml or json")

	return cmd
}
