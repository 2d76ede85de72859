package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
)

// NewUseCommand creates the use command for switching PHP versions
func NewUseCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "use <version>",
		Short: "Switch the linked PHP version",
		Long: `Switch the system-linked PHP version. The version may be given in any of
the usual spellings: 8.2, php8.2 or php@8.2.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := container.Php.Use(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now using %s.\n", formula)
			return nil
		},
	}
}
