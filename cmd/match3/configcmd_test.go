package main

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
)

func TestRunConfig(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() {
		configCmd.SetOut(nil)
		flagConfigEffective = false
	})

	flagConfigEffective = false
	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if !bytes.Equal(out.Bytes(), config.DefaultYAML()) {
		t.Errorf("default output differs from embedded YAML:\n%s", out.String())
	}

	out.Reset()
	gameCfg = config.DefaultMatch3Config()
	gameCfg.Board.Width = 6
	flagConfigEffective = true
	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig --effective: %v", err)
	}
	var got config.Match3Config
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != gameCfg {
		t.Errorf("effective config = %+v, want %+v", got, gameCfg)
	}
}
