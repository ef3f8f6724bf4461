package cli

import (
	"fmt"

	"childscreen-service/internal/credential"
	"github.com/spf13/cobra"
)

// NewCardsCmd prints the generated access-card set. Cards are handed out
// physically, so operators need the full listing to print from.
func NewCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "Print the generated access-card set",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, record := range credential.BuildRegistry().Records() {
				role := string(record.Instrument)
				if record.IsAdmin {
					role = "ADMIN"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", record.AccountID, record.Secret, role)
			}
			return nil
		},
	}
}
