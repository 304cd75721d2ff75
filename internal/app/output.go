package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"cryptouri/internal/cryptouri"
	"cryptouri/internal/encoding"
	"cryptouri/internal/secretkey"
)

// Redacted replaces secret payloads unless Reveal is set.
const Redacted = "<redacted>"

// Description is the printable summary of a decoded CryptoURI.
type Description struct {
	Kind             string  `json:"kind"`
	Algorithm        string  `json:"algorithm"`
	DerivedAlgorithm string  `json:"derived_algorithm,omitempty"`
	Fragment         *string `json:"fragment,omitempty"`
	Payload          string  `json:"payload"`
}

// Describe summarizes u. Secret key payloads are hex encoded only when
// reveal is true.
func Describe(u *cryptouri.URI, reveal bool) Description {
	d := Description{
		Kind:      u.Kind().String(),
		Algorithm: u.Algorithm().String(),
	}
	if frag, ok := u.Fragment(); ok {
		d.Fragment = &frag
	}

	switch u.Kind() {
	case encoding.KindDigest:
		v, _ := u.Digest()
		d.Payload = hex.EncodeToString(v.Bytes())
	case encoding.KindPublicKey:
		v, _ := u.PublicKey()
		d.Payload = hex.EncodeToString(v.Bytes())
	case encoding.KindSignature:
		v, _ := u.Signature()
		d.Payload = hex.EncodeToString(v.Bytes())
	case encoding.KindSecretKey:
		v, _ := u.SecretKey()
		if h, ok := secretkey.AsHkdfSha256(v); ok {
			if derived, ok := h.DerivedAlgorithm(); ok {
				d.DerivedAlgorithm = derived.String()
			}
		}
		d.Payload = Redacted
		if reveal {
			d.Payload = hex.EncodeToString(v.ExposeSecret())
		}
	}
	return d
}

// Printer writes command results in the configured output.
type Printer struct {
	format Output
	writer io.Writer
}

// NewPrinter creates a Printer.
func NewPrinter(format Output, w io.Writer) *Printer {
	return &Printer{format: format, writer: w}
}

// PrintDescription prints a decoded object.
func (p *Printer) PrintDescription(d Description) error {
	switch p.format {
	case OutputJSON:
		return p.printJSON(d)
	case OutputText:
		fmt.Fprintf(p.writer, "Kind:      %s\n", d.Kind)
		fmt.Fprintf(p.writer, "Algorithm: %s\n", d.Algorithm)
		if d.DerivedAlgorithm != "" {
			fmt.Fprintf(p.writer, "Derives:   %s\n", d.DerivedAlgorithm)
		}
		if d.Fragment != nil {
			fmt.Fprintf(p.writer, "Fragment:  %s\n", *d.Fragment)
		}
		fmt.Fprintf(p.writer, "Payload:   %s\n", d.Payload)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintURI prints an encoded CryptoURI.
func (p *Printer) PrintURI(s string) error {
	switch p.format {
	case OutputJSON:
		return p.printJSON(map[string]string{"uri": s})
	case OutputText:
		_, err := fmt.Fprintln(p.writer, s)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
