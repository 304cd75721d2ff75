package app_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptouri/internal/app"
	"cryptouri/internal/cryptouri"
	"cryptouri/internal/encoding"
)

const (
	pubURI  = "crypto:pub:key:ed25519:6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqf03cvv"
	pubDash = "crypto-pub-key-ed25519-6adfsqvzky9t042tlmfujeq88g8wzuhnm2nzxfd0qgdx3ac82ydqlu986g"
	hkdfURI = "crypto:sec:key:hkdfsha256+aes256gcm:qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0st4eyar"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, app.FormatAuto, cfg.Format)
	assert.Equal(t, app.OutputText, cfg.Output)
	assert.False(t, cfg.Reveal)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("CRYPTOURI_FORMAT", "Dasherized")
	t.Setenv("CRYPTOURI_REVEAL", "true")

	cfg, err := app.LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, app.FormatDasherized, cfg.Format)
	assert.True(t, cfg.Reveal)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cryptouri.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: uri\noutput: json\nverbose: true\n"), 0o600))

	v := viper.New()
	v.Set("config", path)
	cfg, err := app.LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, app.FormatURI, cfg.Format)
	assert.Equal(t, app.OutputJSON, cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := app.LoadConfig(v)
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("format", "base64")
	_, err := app.LoadConfig(v)
	assert.ErrorContains(t, err, "unknown format")

	v = viper.New()
	v.Set("output", "yaml")
	_, err = app.LoadConfig(v)
	assert.ErrorContains(t, err, "unknown output")
}

func TestOutputProfile(t *testing.T) {
	assert.Same(t, encoding.URI, app.Config{Format: app.FormatURI}.OutputProfile(pubDash))
	assert.Same(t, encoding.Dasherized, app.Config{Format: app.FormatDasherized}.OutputProfile(pubURI))
	assert.Same(t, encoding.Dasherized, app.Config{Format: app.FormatAuto}.OutputProfile(pubDash))
	assert.Same(t, encoding.URI, app.Config{Format: app.FormatAuto}.OutputProfile(pubURI))
	assert.Same(t, encoding.URI, app.Config{Format: app.FormatAuto}.OutputProfile("garbage"))
}

func TestRender(t *testing.T) {
	var logs bytes.Buffer
	a := app.New(app.Config{Format: app.FormatDasherized, Verbose: true}, &logs)

	u, err := a.Config.Parse("  " + pubURI + "#laptop\n")
	require.NoError(t, err)
	assert.Equal(t, pubDash, a.Render(u, pubURI))
	assert.Contains(t, logs.String(), "level=DEBUG")
	assert.Contains(t, logs.String(), "profile=dasherized")

	assert.Equal(t, pubURI+"#laptop", app.Encode(u, encoding.URI))
}

func TestNew_QuietByDefault(t *testing.T) {
	var logs bytes.Buffer
	a := app.New(app.Config{Format: app.FormatAuto}, &logs)
	u, err := cryptouri.ParseURI(pubURI)
	require.NoError(t, err)
	a.Render(u, pubURI)
	assert.Empty(t, logs.String())
}

func TestDescribe(t *testing.T) {
	u, err := cryptouri.ParseURI(pubURI + "#laptop")
	require.NoError(t, err)

	d := app.Describe(u, false)
	assert.Equal(t, "public-key", d.Kind)
	assert.Equal(t, "ed25519", d.Algorithm)
	require.NotNil(t, d.Fragment)
	assert.Equal(t, "laptop", *d.Fragment)
	assert.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", d.Payload)
}

func TestDescribe_SecretKey(t *testing.T) {
	u, err := cryptouri.ParseURI(hkdfURI)
	require.NoError(t, err)

	d := app.Describe(u, false)
	assert.Equal(t, "secret-key", d.Kind)
	assert.Equal(t, "hkdfsha256", d.Algorithm)
	assert.Equal(t, "aes256gcm", d.DerivedAlgorithm)
	assert.Equal(t, app.Redacted, d.Payload)
	assert.Nil(t, d.Fragment)

	d = app.Describe(u, true)
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", d.Payload)
}

func TestPrinter_Text(t *testing.T) {
	u, err := cryptouri.ParseURI(hkdfURI)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, app.NewPrinter(app.OutputText, &out).PrintDescription(app.Describe(u, false)))
	assert.Equal(t, strings.Join([]string{
		"Kind:      secret-key",
		"Algorithm: hkdfsha256",
		"Derives:   aes256gcm",
		"Payload:   <redacted>",
		"",
	}, "\n"), out.String())
}

func TestPrinter_JSON(t *testing.T) {
	u, err := cryptouri.ParseURI(pubURI)
	require.NoError(t, err)

	var out bytes.Buffer
	p := app.NewPrinter(app.OutputJSON, &out)
	require.NoError(t, p.PrintDescription(app.Describe(u, false)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "public-key", got["kind"])
	assert.NotContains(t, got, "fragment")
	assert.NotContains(t, got, "derived_algorithm")

	out.Reset()
	require.NoError(t, p.PrintURI(pubURI))
	assert.JSONEq(t, `{"uri": "`+pubURI+`"}`, out.String())
}

func TestPrinter_UnknownFormat(t *testing.T) {
	p := app.NewPrinter(app.Output("table"), &bytes.Buffer{})
	assert.Error(t, p.PrintURI(pubURI))
	assert.Error(t, p.PrintDescription(app.Description{}))
}
