package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"cryptouri/internal/app"
	"cryptouri/internal/cryptouri"
	"cryptouri/internal/digest"
	"cryptouri/internal/encoding"
	"cryptouri/internal/publickey"
	"cryptouri/internal/secretkey"
	"cryptouri/internal/signature"
	"cryptouri/internal/util/memzero"
)

// encode --kind <kind> --alg <id> --hex <bytes>: build a CryptoURI.
func encodeCmd(c *cli) *cobra.Command {
	var (
		kind     string
		alg      string
		payload  string
		fragment string
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a CryptoURI from hex bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hex.DecodeString(payload)
			if err != nil {
				return fmt.Errorf("decode --hex: %w", err)
			}
			defer memzero.Zero(b)

			p := c.app.Config.OutputProfile("")
			u, err := build(kind, alg, b)
			if err != nil {
				return err
			}
			defer u.Zeroize()

			if cmd.Flags().Changed("fragment") {
				if !p.HasFragment() {
					c.app.Log.Warn("fragment dropped", "profile", p.Name)
				}
				u = u.WithFragment(fragment)
			}
			return c.printer(cmd).PrintURI(app.Encode(u, p))
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "object kind (digest, public-key, secret-key, signature)")
	cmd.Flags().StringVar(&alg, "alg", "", "algorithm identifier, e.g. ed25519 or hkdfsha256+aes256gcm")
	cmd.Flags().StringVar(&payload, "hex", "", "object bytes in hex")
	cmd.Flags().StringVar(&fragment, "fragment", "", "fragment to append (uri style only)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("alg")
	_ = cmd.MarkFlagRequired("hex")
	return cmd
}

// build accepts either combine character in alg, independent of the
// output style.
func build(kind, alg string, b []byte) (*cryptouri.URI, error) {
	switch kind {
	case encoding.KindDigest.String():
		d, err := digest.New(alg, b)
		if err != nil {
			return nil, err
		}
		return cryptouri.FromDigest(d), nil
	case encoding.KindPublicKey.String():
		k, err := publickey.New(alg, b)
		if err != nil {
			return nil, err
		}
		return cryptouri.FromPublicKey(k), nil
	case encoding.KindSecretKey.String():
		p := encoding.URI
		if encoding.Dasherized.IsCombined(alg) {
			p = encoding.Dasherized
		}
		k, err := secretkey.New(p, alg, b)
		if err != nil {
			return nil, err
		}
		return cryptouri.FromSecretKey(k), nil
	case encoding.KindSignature.String():
		s, err := signature.New(alg, b)
		if err != nil {
			return nil, err
		}
		return cryptouri.FromSignature(s), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}
