package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.DataFile != "data.txt" {
		t.Errorf("DataFile = %q, want data.txt", cfg.DataFile)
	}
	if cfg.Currency != "RUB" {
		t.Errorf("Currency = %q, want RUB", cfg.Currency)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("Server.Addr = %q, want :3000", cfg.Server.Addr)
	}
	if cfg.YNAB.TokenEnv != "YNAB_TOKEN" {
		t.Errorf("YNAB.TokenEnv = %q, want YNAB_TOKEN", cfg.YNAB.TokenEnv)
	}
	if !cfg.UseCustomID {
		t.Error("UseCustomID default should be true")
	}
}

func TestBuildFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fintrack.yaml")
	content := `data_file: ledger.txt
currency: USD
ynab:
  budget_id: b-123
  account_id: a-456
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.DataFile != "ledger.txt" {
		t.Errorf("DataFile = %q, want ledger.txt", cfg.DataFile)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}
	if cfg.YNAB.BudgetID != "b-123" || cfg.YNAB.AccountID != "a-456" {
		t.Errorf("YNAB = %+v", cfg.YNAB)
	}
}

func TestBuildMissingExplicitFile(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatal("explicit config file that does not exist must be an error")
	}
}

func TestBuildEnvOverride(t *testing.T) {
	t.Setenv("FINTRACK_CURRENCY", "EUR")
	t.Setenv("FINTRACK_YNAB_BUDGET_ID", "env-budget")

	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
	if cfg.YNAB.BudgetID != "env-budget" {
		t.Errorf("YNAB.BudgetID = %q, want env-budget", cfg.YNAB.BudgetID)
	}
}

func TestBuildFlagOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("file", "f", "", "data file")
	if err := flags.Set("file", "override.txt"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := Build("", flags)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.DataFile != "override.txt" {
		t.Errorf("DataFile = %q, want override.txt", cfg.DataFile)
	}
}

func TestToken(t *testing.T) {
	cfg := &Config{YNAB: YNABConfig{TokenEnv: "FINTRACK_TEST_TOKEN"}}

	if _, err := cfg.Token(); err == nil {
		t.Fatal("expected error when token env is not set")
	}

	t.Setenv("FINTRACK_TEST_TOKEN", "secret")
	token, err := cfg.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token != "secret" {
		t.Errorf("token = %q, want secret", token)
	}
}
