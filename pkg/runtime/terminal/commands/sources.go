package commands

import (
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

// NewSourcesCmd lists the registered metrics source kinds.
func NewSourcesCmd(sources source.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List available metrics source kinds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range sources.ListKinds() {
				cmd.Println(kind)
			}
			return nil
		},
	}
}
