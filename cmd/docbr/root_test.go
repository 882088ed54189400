package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbr/docbr/internal/domain/values"
	"github.com/docbr/docbr/internal/infrastructure/config"
)

func runCommand(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "warn",
		Output:   config.OutputConfig{Format: "text"},
		Generate: config.GenerateConfig{Formatted: true, Mercosul: true},
	}
}

func TestRootDetect(t *testing.T) {
	out, err := runCommand(t, testConfig(), "123.456.789-09")
	require.NoError(t, err)
	assert.Contains(t, out, "type:  cpf")
	assert.Contains(t, out, "valid: true")
	assert.Contains(t, out, "formatted: 123.456.789-09")
}

func TestRootDetectJSON(t *testing.T) {
	cfg := testConfig()
	cfg.Output.Format = "json"
	out, err := runCommand(t, cfg, "11222333000181")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "cnpj"`)
	assert.Contains(t, out, `"valid": true`)
}

func TestValidateCommand(t *testing.T) {
	_, err := runCommand(t, testConfig(), "validate", "-t", "cpf", "123.456.789-09")
	require.NoError(t, err)

	_, err = runCommand(t, testConfig(), "validate", "-t", "cpf", "123.456.789-00")
	assert.Error(t, err)

	_, err = runCommand(t, testConfig(), "validate", "01310-100")
	require.NoError(t, err)
}

func TestFormatCommand(t *testing.T) {
	out, err := runCommand(t, testConfig(), "format", "cnpj", "11222333000181")
	require.NoError(t, err)
	assert.Contains(t, out, "11.222.333/0001-81")
}

func TestGenerateCommand(t *testing.T) {
	t.Run("cpf count", func(t *testing.T) {
		out, err := runCommand(t, testConfig(), "generate", "cpf", "-n", "3", "--raw")
		require.NoError(t, err)
		lines := strings.Fields(strings.TrimSpace(out))
		require.Len(t, lines, 3)
		for _, line := range lines {
			_, err := values.NewCPF(line)
			assert.NoError(t, err, "generated %q", line)
		}
	})

	t.Run("phone with pinned area code", func(t *testing.T) {
		out, err := runCommand(t, testConfig(), "generate", "phone", "--ddd", "11", "--raw")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "11"))
	})

	t.Run("rejects unknown area code", func(t *testing.T) {
		_, err := runCommand(t, testConfig(), "generate", "phone", "--ddd", "20")
		assert.Error(t, err)
	})

	t.Run("rejects out of range branch", func(t *testing.T) {
		_, err := runCommand(t, testConfig(), "generate", "cnpj", "--branch", "10000")
		assert.Error(t, err)
	})
}

func TestInfoCommand(t *testing.T) {
	out, err := runCommand(t, testConfig(), "info", "11.222.333/0001-81")
	require.NoError(t, err)
	assert.Contains(t, out, "type: cnpj")
	assert.Contains(t, out, "branch: 1")
	assert.Contains(t, out, "headquarters: true")

	out, err = runCommand(t, testConfig(), "info", "(11) 98765-4321")
	require.NoError(t, err)
	assert.Contains(t, out, "area_code: 11")
	assert.Contains(t, out, "state: SP")
	assert.Contains(t, out, "mobile: true")

	_, err = runCommand(t, testConfig(), "info", "11111111111")
	assert.Error(t, err)
}

func TestBanksCommand(t *testing.T) {
	out, err := runCommand(t, testConfig(), "banks", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Banco do Brasil")

	out, err = runCommand(t, testConfig(), "banks")
	require.NoError(t, err)
	assert.Contains(t, out, "Nubank")
	assert.Contains(t, out, "Sicoob")

	_, err = runCommand(t, testConfig(), "banks", "999")
	assert.Error(t, err)
}
