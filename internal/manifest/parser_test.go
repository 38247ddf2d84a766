package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testSettings() *Settings {
	return &Settings{
		Defaults: map[string]interface{}{
			"category": "party",
		},
		GameTypeDefaults: map[string]map[string]interface{}{
			"html": {"minPlayers": 2},
		},
		APIVersionSettings: map[string]VersionSettings{
			"1.0.0": {"apiVersion": "1.0.0"},
			"1.2.0": {"apiVersion": "1.2.0"},
			"2.0.0": {"apiVersion": "2.0.0"},
		},
	}
}

// writePackage writes a package.json with the given hft section into a fresh
// game directory and returns the descriptor path.
func writePackage(t *testing.T, section map[string]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	data, err := json.Marshal(map[string]interface{}{
		"name":     "test-game",
		SectionKey: section,
	})
	if err != nil {
		t.Fatalf("marshaling package: %v", err)
	}
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatalf("writing package: %v", err)
	}
	return p
}

func baseSection() map[string]interface{} {
	return map[string]interface{}{
		"gameId":     "jumpjump",
		"apiVersion": "1.0.0",
		"gameType":   "html",
	}
}

func TestParseFile_RoundTrip(t *testing.T) {
	p := writePackage(t, baseSection())

	r, err := ParseFile(p, testSettings())
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	wantBase, _ := filepath.Abs(filepath.Dir(p))
	if r.BasePath != wantBase {
		t.Errorf("BasePath = %q, want %q", r.BasePath, wantBase)
	}
	if r.GameID() != "jumpjump" {
		t.Errorf("GameID = %q, want jumpjump", r.GameID())
	}
	if r.NeedNewHFT {
		t.Error("NeedNewHFT = true, want false")
	}
	if r.VersionSettings == nil {
		t.Fatal("VersionSettings = nil, want the 1.2.0 bundle")
	}
	if r.VersionSettings["apiVersion"] != "1.2.0" {
		t.Errorf("VersionSettings = %v, want the 1.2.0 bundle", r.VersionSettings)
	}
}

func TestParse_DefaultsSatisfyRequiredChecks(t *testing.T) {
	// category comes from global defaults, minPlayers from html defaults;
	// both pass validation without being declared by the game.
	p := writePackage(t, baseSection())

	r, err := ParseFile(p, testSettings())
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if r.Category() != "party" {
		t.Errorf("category = %q, want party", r.Category())
	}
	if r.Fields[FieldMinPlayers] != 2 {
		t.Errorf("minPlayers = %v, want 2", r.Fields[FieldMinPlayers])
	}
}

func TestParse_InputNotMutated(t *testing.T) {
	section := baseSection()
	data, _ := json.Marshal(map[string]interface{}{SectionKey: section})

	r, err := Parse(data, filepath.Join(t.TempDir(), FileName), testSettings())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	r.Fields["category"] = "mutated"

	// Re-parsing the same bytes sees the original content.
	r2, err := Parse(data, filepath.Join(t.TempDir(), FileName), testSettings())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if r2.Category() != "party" {
		t.Errorf("category = %q, want party", r2.Category())
	}
}

func TestParse_MissingSectionRejects(t *testing.T) {
	_, err := Parse([]byte(`{"name":"plain-npm-package"}`), "/games/foo/package.json", testSettings())
	if !IsRejection(err) {
		t.Fatalf("err = %v, want rejection for missing section", err)
	}
}

func TestParse_BadJSONIsFatal(t *testing.T) {
	_, err := Parse([]byte(`{not json`), "/games/foo/package.json", testSettings())
	if err == nil {
		t.Fatal("expected error for bad JSON")
	}
	if IsRejection(err) {
		t.Errorf("err = %v, want fatal fault, not rejection", err)
	}
}

func TestParse_InvalidFieldRejects(t *testing.T) {
	section := baseSection()
	section["gameId"] = "bad/id"
	p := writePackage(t, section)

	_, err := ParseFile(p, testSettings())
	if !IsRejection(err) {
		t.Fatalf("err = %v, want rejection", err)
	}
	if !strings.Contains(err.Error(), "gameId") {
		t.Errorf("err = %q, want gameId mentioned", err)
	}
}

func TestParse_UnknownGameTypeRejects(t *testing.T) {
	section := baseSection()
	section["gameType"] = "unity"
	p := writePackage(t, section)

	_, err := ParseFile(p, testSettings())
	if !IsRejection(err) {
		t.Fatalf("err = %v, want rejection", err)
	}
	if !strings.Contains(err.Error(), "unity") {
		t.Errorf("err = %q, want the unknown gameType named", err)
	}
}

func TestParse_UnsatisfiableAPIVersionRejects(t *testing.T) {
	section := baseSection()
	section["apiVersion"] = "9.0.0"
	p := writePackage(t, section)

	_, err := ParseFile(p, testSettings())
	re := AsRejection(err)
	if re == nil {
		t.Fatalf("err = %v, want rejection", err)
	}
	if !re.NeedNewHFT {
		t.Error("NeedNewHFT = false, want true on version mismatch")
	}
}

func TestParse_RewritesPublicURLs(t *testing.T) {
	section := baseSection()
	section["gameArtUrl"] = "art.png"
	section["screenshotUrl"] = "shots/one.png"
	p := writePackage(t, section)

	r, err := ParseFile(p, testSettings())
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if got := r.Fields.str(FieldGameArtURL); got != "/games/jumpjump/art.png" {
		t.Errorf("gameArtUrl = %q, want /games/jumpjump/art.png", got)
	}
	if got := r.Fields.str(FieldScreenshotURL); got != "/games/jumpjump/shots/one.png" {
		t.Errorf("screenshotUrl = %q, want /games/jumpjump/shots/one.png", got)
	}
}

func TestParse_ExecutableResolvedInsideGameDir(t *testing.T) {
	section := baseSection()
	section["gameExecutable"] = "bin/game"
	p := writePackage(t, section)

	r, err := ParseFile(p, testSettings())
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	want := filepath.Join(r.BasePath, "bin", "game")
	if r.GameExecutable() != want {
		t.Errorf("gameExecutable = %q, want %q", r.GameExecutable(), want)
	}
}

func TestParse_ExecutableEscapeIsFatal(t *testing.T) {
	escapes := []string{
		"../bar.exe",
		"bin/../../bar",
		"../../../../etc/passwd",
	}
	for _, exe := range escapes {
		t.Run(exe, func(t *testing.T) {
			section := baseSection()
			section["gameExecutable"] = exe
			p := writePackage(t, section)

			_, err := ParseFile(p, testSettings())
			if err == nil {
				t.Fatal("expected error for escaping executable")
			}
			if IsRejection(err) {
				t.Errorf("err = %v, want fatal fault, not rejection", err)
			}
		})
	}
}

func TestParseFile_MissingFileIsFatal(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), FileName), testSettings())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if IsRejection(err) {
		t.Errorf("err = %v, want fatal fault, not rejection", err)
	}
}
