package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var embeddedLayoutYAML []byte

var ErrInvalidLayout = errors.New("invalid layout")

type FieldDef struct {
	Label  string `yaml:"label"`
	Column string `yaml:"column"`
}

type PageDef struct {
	Title   string     `yaml:"title"`
	Menu    string     `yaml:"menu"`
	Warning string     `yaml:"warning"`
	Fields  []FieldDef `yaml:"fields"`
}

func (p PageDef) Labels() []string {
	out := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		out[i] = f.Label
	}
	return out
}

// Columns returns the table headings; a field without a column uses its label.
func (p PageDef) Columns() []string {
	out := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		out[i] = f.Column
		if out[i] == "" {
			out[i] = f.Label
		}
	}
	return out
}

// Layout carries the texts of the fixed pages. It can relabel them but not add
// or remove pages.
type Layout struct {
	Title        string  `yaml:"title"`
	WarningTitle string  `yaml:"warning_title"`
	Teacher      PageDef `yaml:"teacher"`
	Student      PageDef `yaml:"student"`
}

func DefaultLayout() Layout {
	l, err := decodeLayout(embeddedLayoutYAML)
	if err == nil {
		err = l.Validate()
	}
	if err != nil {
		panic(fmt.Sprintf("embedded layout: %v", err))
	}
	return l
}

func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes a layout file. Texts it leaves out are taken from the
// embedded layout; fields are never filled in.
func ParseLayout(data []byte) (Layout, error) {
	l, err := decodeLayout(data)
	if err != nil {
		return Layout{}, err
	}
	l.fillTexts(DefaultLayout())
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func decodeLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	l.trim()
	return l, nil
}

func (l *Layout) fillTexts(def Layout) {
	orDefault(&l.Title, def.Title)
	orDefault(&l.WarningTitle, def.WarningTitle)
	for _, pair := range []struct{ p, d *PageDef }{{&l.Teacher, &def.Teacher}, {&l.Student, &def.Student}} {
		orDefault(&pair.p.Title, pair.d.Title)
		orDefault(&pair.p.Menu, pair.d.Menu)
		orDefault(&pair.p.Warning, pair.d.Warning)
	}
}

func orDefault(s *string, def string) {
	if *s == "" {
		*s = def
	}
}

func (l *Layout) trim() {
	l.Title = strings.TrimSpace(l.Title)
	l.WarningTitle = strings.TrimSpace(l.WarningTitle)
	for _, p := range []*PageDef{&l.Teacher, &l.Student} {
		p.Title = strings.TrimSpace(p.Title)
		p.Menu = strings.TrimSpace(p.Menu)
		p.Warning = strings.TrimSpace(p.Warning)
		for i := range p.Fields {
			p.Fields[i].Label = strings.TrimSpace(p.Fields[i].Label)
			p.Fields[i].Column = strings.TrimSpace(p.Fields[i].Column)
		}
	}
}

func (l Layout) Validate() error {
	if l.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidLayout)
	}
	if l.WarningTitle == "" {
		return fmt.Errorf("%w: missing warning_title", ErrInvalidLayout)
	}
	if err := validatePage("teacher", l.Teacher); err != nil {
		return err
	}
	return validatePage("student", l.Student)
}

func validatePage(name string, p PageDef) error {
	for _, text := range []struct{ key, value string }{{"title", p.Title}, {"menu", p.Menu}, {"warning", p.Warning}} {
		if text.value == "" {
			return fmt.Errorf("%w: %s page has no %s", ErrInvalidLayout, name, text.key)
		}
	}
	if len(p.Fields) == 0 {
		return fmt.Errorf("%w: %s page has no fields", ErrInvalidLayout, name)
	}
	seen := make(map[string]struct{}, len(p.Fields))
	for i, f := range p.Fields {
		if f.Label == "" {
			return fmt.Errorf("%w: %s field %d has no label", ErrInvalidLayout, name, i+1)
		}
		if _, ok := seen[f.Label]; ok {
			return fmt.Errorf("%w: %s field %q repeated", ErrInvalidLayout, name, f.Label)
		}
		seen[f.Label] = struct{}{}
	}
	return nil
}
