package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopybayes/internal/models"
)

// modelInfo describes a bundled model for listing.
type modelInfo struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	DefaultSteps int                 `json:"default_steps"`
	Variables    map[string][]string `json:"variables"`
	order        []string
}

// NewModelsCommand creates the models command, which lists bundled networks.
func NewModelsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "models",
		Short:        "List bundled networks and their variables",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]modelInfo, 0)
			for _, name := range models.Names() {
				m, err := models.Build(name)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to build model", err)
				}
				info := modelInfo{
					Name:         m.Name,
					Description:  m.Description,
					DefaultSteps: m.DefaultSteps,
					Variables:    make(map[string][]string, len(m.Variables)),
				}
				for _, v := range m.Variables {
					info.Variables[v.Name] = v.Values
					info.order = append(info.order, v.Name)
				}
				infos = append(infos, info)
			}

			w := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(w, "%s - %s (default %d steps)\n", info.Name, info.Description, info.DefaultSteps)
				for _, name := range info.order {
					fmt.Fprintf(w, "  %-12s %s\n", name, strings.Join(info.Variables[name], "|"))
				}
			}
			return nil
		},
	}
}
