package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	lang, err := cat.Language("en")
	if err != nil {
		t.Fatalf("Language(en) error = %v", err)
	}
	if lang.Name != "English" || lang.OCRLang != "eng" {
		t.Fatalf("unexpected language entry: %+v", lang)
	}

	tpl, err := cat.Template("concise")
	if err != nil {
		t.Fatalf("Template(concise) error = %v", err)
	}
	if tpl.Instruction == "" {
		t.Fatalf("expected non-empty instruction")
	}

	role, err := cat.Role("assistant")
	if err != nil {
		t.Fatalf("Role(assistant) error = %v", err)
	}
	if role.System == "" {
		t.Fatalf("expected non-empty system prompt")
	}
}

func TestLoadFromFileOverridesEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	custom := `
languages:
  - id: nl
    name: Dutch
    ocr_lang: nld
templates:
  - id: brief
    name: Brief
    instruction: Keep it brief.
roles:
  - id: clerk
    name: Clerk
    system: You are a clerk.
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := cat.Language("nl"); err != nil {
		t.Fatalf("expected custom language, got %v", err)
	}
	if _, err := cat.Language("en"); err == nil {
		t.Fatalf("expected embedded entries replaced")
	}
}

func TestLookupUnknownIDs(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := cat.Language("xx"); err == nil || !strings.Contains(err.Error(), "unknown language id") {
		t.Fatalf("expected unknown language error, got %v", err)
	}
	if _, err := cat.Template("xx"); err == nil || !strings.Contains(err.Error(), "unknown template id") {
		t.Fatalf("expected unknown template error, got %v", err)
	}
	if _, err := cat.Role("xx"); err == nil || !strings.Contains(err.Error(), "unknown role id") {
		t.Fatalf("expected unknown role error, got %v", err)
	}
}

func TestParseRejectsIncompleteCatalog(t *testing.T) {
	if _, err := Parse([]byte("languages: []\ntemplates: []\nroles: []\n")); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
	if _, err := Parse([]byte("languages:\n  - name: NoID\n")); err == nil {
		t.Fatalf("expected error for missing sections")
	}
	if _, err := Parse([]byte("not: [valid")); err == nil {
		t.Fatalf("expected yaml error")
	}
}
