package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptouri/internal/crypto"
	"cryptouri/internal/cryptouri"
)

func fingerprintCmd(c *cli) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "fingerprint [public-key-uri]",
		Short: "Print the SHA-256 digest of a public key",
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

			pub, ok := u.PublicKey()
			if !ok {
				return fmt.Errorf("fingerprint needs a public key, got %s", u.Kind())
			}
			if short {
				return c.printer(cmd).PrintURI(crypto.ShortFingerprint(pub))
			}
			fp := cryptouri.FromDigest(crypto.Fingerprint(pub))
			return c.printer(cmd).PrintURI(c.app.Render(fp, in))
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print a 20 character hex fingerprint instead")
	return cmd
}
