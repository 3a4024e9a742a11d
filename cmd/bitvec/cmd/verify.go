package cmd

import (
	"fmt"

	"github.com/astef/bitvec/order"
	"github.com/spf13/cobra"
)

// verifyOrderCmd represents the verify-order command.
var verifyOrderCmd = &cobra.Command{
	Use:   "verify-order",
	Short: "Check that the built-in bit orders are bijections",
	Long: `verify-order checks, for every supported element width, that each built-in
bit order maps the in-element indices onto distinct bit positions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, o := range []order.Order{order.Lsb0{}, order.Msb0{}} {
			if err := order.VerifyAll(o); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: ok\n", o)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyOrderCmd)
}
