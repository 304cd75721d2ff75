package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cryptouri/internal/app"
)

// cli is the state shared by the subcommands of one root command.
type cli struct {
	v   *viper.Viper
	app *app.App
}

func (c *cli) printer(cmd *cobra.Command) *app.Printer {
	return app.NewPrinter(c.app.Config.Output, cmd.OutOrStdout())
}

// Execute runs the cryptouri command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:          "cryptouri",
		Short:        "Encode and decode checksummed CryptoURIs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(c.v)
			if err != nil {
				return err
			}
			c.app = app.New(cfg, cmd.ErrOrStderr())
			c.app.Log.Debug("config loaded", "format", cfg.Format, "output", cfg.Output, "reveal", cfg.Reveal)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.StringP("format", "f", string(app.FormatAuto), "output style (uri, dasherized, auto)")
	pf.StringP("output", "o", string(app.OutputText), "output format (text, json)")
	pf.Bool("reveal", false, "print secret key material")
	pf.BoolP("verbose", "v", false, "debug logging")
	_ = c.v.BindPFlags(pf)

	root.AddCommand(
		decodeCmd(c),
		encodeCmd(c),
		convertCmd(c),
		fingerprintCmd(c),
		deriveCmd(c),
	)
	return root
}

// readInput returns the CryptoURI argument, or the first line of stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no CryptoURI given")
	}
	return line, nil
}
