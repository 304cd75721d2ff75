package commands

import (
	"github.com/spf13/cobra"

	"cryptouri/internal/app"
	"cryptouri/internal/cryptouri"
	"cryptouri/internal/encoding"
)

func convertCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [cryptouri]",
		Short: "Re-encode a CryptoURI in the other style",
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

			from, err := cryptouri.DetectProfile(in)
			if err != nil {
				return err
			}
			to := encoding.Dasherized
			if from == encoding.Dasherized {
				to = encoding.URI
			}
			if _, ok := u.Fragment(); ok && !to.HasFragment() {
				c.app.Log.Warn("fragment dropped", "profile", to.Name)
			}
			c.app.Log.Debug("converting", "from", from.Name, "to", to.Name)
			return c.printer(cmd).PrintURI(app.Encode(u, to))
		},
	}
}
