package cmd

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petrosquatr/vlan-replacer/internal/config"
	"github.com/petrosquatr/vlan-replacer/internal/errors"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestOutputMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fw.conf")
	if err := os.WriteFile(path, []byte("set vlanid 160\n"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if got := outputMode(path); got != 0600 {
		t.Errorf("expected input mode to be mirrored, got %v", got)
	}
	if got := outputMode(filepath.Join(t.TempDir(), "absent.conf")); got != 0644 {
		t.Errorf("expected fallback mode 0644, got %v", got)
	}
}

func TestBuildRules(t *testing.T) {
	dir := t.TempDir()
	mappingPath := filepath.Join(dir, "mappings.json")
	if err := os.WriteFile(mappingPath, []byte(`{"160": 2500}`), 0644); err != nil {
		t.Fatalf("failed to write mapping file: %v", err)
	}

	tests := []struct {
		name           string
		config         *config.Config
		expectError    bool
		expectExplicit bool
		expectRange    bool
	}{
		{
			name:           "mapping file only",
			config:         &config.Config{MappingFile: mappingPath},
			expectExplicit: true,
		},
		{
			name: "range only",
			config: &config.Config{
				OldRange: []int{100, 200},
				NewRange: []int{500, 600},
			},
			expectRange: true,
		},
		{
			name: "both sources",
			config: &config.Config{
				MappingFile: mappingPath,
				OldRange:    []int{100, 200},
				NewRange:    []int{500, 600},
			},
			expectExplicit: true,
			expectRange:    true,
		},
		{
			name:        "missing mapping file",
			config:      &config.Config{MappingFile: filepath.Join(dir, "absent.json")},
			expectError: true,
		},
		{
			name: "mismatched range sizes",
			config: &config.Config{
				OldRange: []int{100, 200},
				NewRange: []int{500, 550},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := buildRules(tt.config)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rules.HasExplicit() != tt.expectExplicit {
				t.Errorf("HasExplicit() = %v, want %v", rules.HasExplicit(), tt.expectExplicit)
			}
			if rules.HasRange() != tt.expectRange {
				t.Errorf("HasRange() = %v, want %v", rules.HasRange(), tt.expectRange)
			}
		})
	}
}

func TestExecuteReplace(t *testing.T) {
	dir := t.TempDir()

	inputPath := filepath.Join(dir, "fw.conf")
	if err := os.WriteFile(inputPath, []byte("set vlanid 160\nset vlanid 151\n"), 0600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	mappingPath := filepath.Join(dir, "mappings.json")
	if err := os.WriteFile(mappingPath, []byte(`{"160": 2500}`), 0644); err != nil {
		t.Fatalf("failed to write mapping file: %v", err)
	}

	outPath := filepath.Join(dir, "out.conf")
	cfg := &config.Config{
		InputFile:   inputPath,
		OutputFile:  outPath,
		MappingFile: mappingPath,
		OldRange:    []int{100, 200},
		NewRange:    []int{500, 600},
		Quiet:       true,
	}

	if err := executeReplace(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "set vlanid 2500\nset vlanid 551\n" {
		t.Errorf("unexpected output content %q", string(data))
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("failed to stat output: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected output to mirror input mode 0600, got %v", info.Mode().Perm())
	}

	orig, err := os.ReadFile(inputPath)
	if err != nil {
		t.Fatalf("failed to read input back: %v", err)
	}
	if string(orig) != "set vlanid 160\nset vlanid 151\n" {
		t.Error("input file must never be modified")
	}
}

func TestExecuteReplaceMissingInput(t *testing.T) {
	cfg := &config.Config{
		InputFile: filepath.Join(t.TempDir(), "absent.conf"),
		OldRange:  []int{100, 200},
		NewRange:  []int{500, 600},
		Quiet:     true,
	}

	err := executeReplace(cfg)
	if err == nil {
		t.Fatal("expected error for missing input, got nil")
	}
	if !stderrors.Is(err, &errors.ReplacerError{Type: errors.ErrTypeFile}) {
		t.Errorf("expected file error, got %T", err)
	}
}
