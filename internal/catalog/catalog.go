// Package catalog holds the static lookup tables the pipeline is keyed by:
// supported languages, prompt templates and generation roles. A built-in
// table is embedded; deployments may point CATALOG_PATH at their own file.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pvolkov/briefly/internal/core/domain"
)

//go:embed catalog.yaml
var builtin []byte

type Catalog struct {
	languages map[string]domain.Language
	templates map[string]domain.PromptTemplate
	roles     map[string]domain.Role
}

type document struct {
	Languages []domain.Language       `yaml:"languages"`
	Templates []domain.PromptTemplate `yaml:"templates"`
	Roles     []domain.Role           `yaml:"roles"`
}

// Load reads the catalog from path, or the embedded table when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(builtin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if len(doc.Languages) == 0 || len(doc.Templates) == 0 || len(doc.Roles) == 0 {
		return nil, fmt.Errorf("catalog must declare languages, templates and roles")
	}

	c := &Catalog{
		languages: make(map[string]domain.Language, len(doc.Languages)),
		templates: make(map[string]domain.PromptTemplate, len(doc.Templates)),
		roles:     make(map[string]domain.Role, len(doc.Roles)),
	}
	for _, lang := range doc.Languages {
		if lang.ID == "" {
			return nil, fmt.Errorf("catalog language with empty id")
		}
		c.languages[lang.ID] = lang
	}
	for _, tpl := range doc.Templates {
		if tpl.ID == "" {
			return nil, fmt.Errorf("catalog template with empty id")
		}
		c.templates[tpl.ID] = tpl
	}
	for _, role := range doc.Roles {
		if role.ID == "" {
			return nil, fmt.Errorf("catalog role with empty id")
		}
		c.roles[role.ID] = role
	}
	return c, nil
}

func (c *Catalog) Language(id string) (domain.Language, error) {
	lang, ok := c.languages[id]
	if !ok {
		return domain.Language{}, fmt.Errorf("unknown language id %q", id)
	}
	return lang, nil
}

func (c *Catalog) Template(id string) (domain.PromptTemplate, error) {
	tpl, ok := c.templates[id]
	if !ok {
		return domain.PromptTemplate{}, fmt.Errorf("unknown template id %q", id)
	}
	return tpl, nil
}

func (c *Catalog) Role(id string) (domain.Role, error) {
	role, ok := c.roles[id]
	if !ok {
		return domain.Role{}, fmt.Errorf("unknown role id %q", id)
	}
	return role, nil
}
