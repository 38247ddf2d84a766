package settings

import (
	"path/filepath"
	"strings"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoad_ValidSettings(t *testing.T) {
	s, err := Load(testPath("settings.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if s.Defaults["category"] != "party" {
		t.Errorf("Defaults[category] = %v, want party", s.Defaults["category"])
	}
	if !s.KnownGameType("html") || !s.KnownGameType("unity3d") {
		t.Error("expected html and unity3d to be known game types")
	}
	if s.KnownGameType("flash") {
		t.Error("flash should not be a known game type")
	}
	if len(s.APIVersionSettings) != 3 {
		t.Errorf("APIVersionSettings len = %d, want 3", len(s.APIVersionSettings))
	}
	if s.APIVersionSettings["2.0.0"]["menuSize"] != 24 {
		t.Errorf("2.0.0 menuSize = %v, want 24", s.APIVersionSettings["2.0.0"]["menuSize"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		file    string
		mention string
	}{
		{"invalid-missing-versions.yaml", "apiVersionSettings"},
		{"invalid-bad-version-key.yaml", "apiVersionSettings"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(testPath(tt.file))
			if err == nil {
				t.Fatal("expected schema violation error")
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error = %q, want it to mention %q", err, tt.mention)
			}
		})
	}
}

func TestParse_NotYAML(t *testing.T) {
	_, err := Parse([]byte("\t{ not yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestParse_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
