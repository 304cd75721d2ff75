package commands

import (
	"github.com/spf13/cobra"

	"cryptouri/internal/app"
)

func decodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [cryptouri]",
		Short: "Describe a CryptoURI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			u, err := c.app.Config.Parse(in)
			if err != nil {
				return err
			}
			defer u.Zeroize()

			c.app.Log.Debug("decoded", "kind", u.Kind(), "algorithm", u.Algorithm())
			return c.printer(cmd).PrintDescription(app.Describe(u, c.app.Config.Reveal))
		},
	}
}
