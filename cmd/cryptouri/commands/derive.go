package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"cryptouri/internal/crypto"
	"cryptouri/internal/cryptouri"
	"cryptouri/internal/secretkey"
)

// derive <hkdf-key-uri>: expand a combined HKDF key into the key it names.
func deriveCmd(c *cli) *cobra.Command {
	var (
		salt string
		info string
	)
	cmd := &cobra.Command{
		Use:   "derive [hkdf-secret-key-uri]",
		Short: "Derive a secret key from a combined HKDF-SHA-256 key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saltBytes, err := hex.DecodeString(salt)
			if err != nil {
				return fmt.Errorf("decode --salt: %w", err)
			}
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			u, err := c.app.Config.Parse(in)
			if err != nil {
				return err
			}
			defer u.Zeroize()

			sk, ok := u.SecretKey()
			if !ok {
				return fmt.Errorf("derive needs a secret key, got %s", u.Kind())
			}
			ikm, ok := secretkey.AsHkdfSha256(sk)
			if !ok {
				return fmt.Errorf("derive needs an hkdfsha256 key, got %s", sk.Algorithm())
			}
			out, err := crypto.Derive(ikm, saltBytes, []byte(info))
			if err != nil {
				return err
			}
			defer out.Zeroize()

			c.app.Log.Debug("derived", "algorithm", out.Algorithm())
			return c.printer(cmd).PrintURI(c.app.Render(cryptouri.FromSecretKey(out), in))
		},
	}
	cmd.Flags().StringVar(&salt, "salt", "", "HKDF salt in hex")
	cmd.Flags().StringVar(&info, "info", "", "HKDF info string")
	return cmd
}
