package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l.Title != "School Management System" {
		t.Fatalf("unexpected title %q", l.Title)
	}
	if l.WarningTitle != "Missing Data" {
		t.Fatalf("unexpected warning title %q", l.WarningTitle)
	}
	if got := l.Teacher.Labels(); !reflect.DeepEqual(got, []string{"Teacher ID", "Name", "Subject", "Salary", "Phone"}) {
		t.Fatalf("unexpected teacher labels: %#v", got)
	}
	if got := l.Student.Labels(); !reflect.DeepEqual(got, []string{"Roll No", "Name", "Class", "Fees", "Phone"}) {
		t.Fatalf("unexpected student labels: %#v", got)
	}
	if got := l.Teacher.Columns(); !reflect.DeepEqual(got, []string{"ID", "Name", "Subject", "Salary", "Phone"}) {
		t.Fatalf("unexpected teacher columns: %#v", got)
	}
	if got := l.Student.Columns(); !reflect.DeepEqual(got, []string{"Roll", "Name", "Class", "Fees", "Phone"}) {
		t.Fatalf("unexpected student columns: %#v", got)
	}
	if l.Teacher.Warning != "Please fill all fields." || l.Student.Warning != "All fields required!" {
		t.Fatalf("unexpected warnings: %q / %q", l.Teacher.Warning, l.Student.Warning)
	}
}

func TestParseLayoutRejectsEmptyPage(t *testing.T) {
	yml := `teacher:
  fields:
    - label: Name
student:
  fields: []
`
	if _, err := ParseLayout([]byte(yml)); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
}

func TestParseLayoutRejectsDuplicateLabels(t *testing.T) {
	yml := `teacher:
  fields:
    - label: Name
    - label: " Name "
student:
  fields:
    - label: Name
`
	if _, err := ParseLayout([]byte(yml)); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
}

func TestParseLayoutFillsMissingTexts(t *testing.T) {
	yml := `teacher:
  fields:
    - label: Name
student:
  menu: Alunni
  fields:
    - label: Name
`
	l, err := ParseLayout([]byte(yml))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if l.Title != "School Management System" || l.WarningTitle != "Missing Data" {
		t.Fatalf("expected default titles, got %q / %q", l.Title, l.WarningTitle)
	}
	if l.Teacher.Menu != "Teacher Data Page" || l.Teacher.Warning != "Please fill all fields." {
		t.Fatalf("expected default teacher texts, got %+v", l.Teacher)
	}
	if l.Student.Menu != "Alunni" || l.Student.Warning != "All fields required!" {
		t.Fatalf("unexpected student texts: %+v", l.Student)
	}
}

func TestValidateRequiresTexts(t *testing.T) {
	l := DefaultLayout()
	l.Student.Warning = ""
	if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for blank warning, got %v", err)
	}
	l = DefaultLayout()
	l.WarningTitle = ""
	if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for blank warning title, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCHOOL_LAYOUT", "")
	t.Setenv("SCHOOL_LOG_FILE", "")
	t.Setenv("SCHOOL_LOG_LEVEL", "")
	t.Setenv("SCHOOL_MOUSE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LogLevel != "info" || !cfg.Mouse || cfg.LogFile != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Layout.Teacher.Title != "Teacher Data" {
		t.Fatalf("expected embedded layout, got %+v", cfg.Layout.Teacher)
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	yml := `title: Scuola
teacher:
  title: Docenti
  fields:
    - label: Matricola
    - label: Nome
student:
  title: Studenti
  fields:
    - label: Nome
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Setenv("SCHOOL_LAYOUT", path)
	t.Setenv("SCHOOL_LOG_FILE", filepath.Join(dir, "school.log"))
	t.Setenv("SCHOOL_LOG_LEVEL", "DEBUG")
	t.Setenv("SCHOOL_MOUSE", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Layout.Title != "Scuola" || len(cfg.Layout.Teacher.Fields) != 2 {
		t.Fatalf("unexpected layout: %+v", cfg.Layout)
	}
	if cfg.LogLevel != "debug" || cfg.Mouse {
		t.Fatalf("unexpected settings: %+v", cfg)
	}
}

func TestLoadBadMouseValue(t *testing.T) {
	t.Setenv("SCHOOL_LAYOUT", "")
	t.Setenv("SCHOOL_MOUSE", "maybe")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SCHOOL_MOUSE=maybe")
	}
}

func TestLoadMissingLayoutFile(t *testing.T) {
	t.Setenv("SCHOOL_MOUSE", "")
	t.Setenv("SCHOOL_LAYOUT", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
