// ABOUTME: Tests for the install-skill command
// ABOUTME: Covers directory creation, file writing, and overwrite scenarios

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSkillWritesFile(t *testing.T) {
	skillPath := filepath.Join(t.TempDir(), ".claude", "skills", "datepage", "SKILL.md")

	if err := installSkillToPath(skillPath); err != nil {
		t.Fatalf("installSkillToPath failed: %v", err)
	}

	info, err := os.Stat(skillPath)
	if err != nil {
		t.Fatalf("skill file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("skill file should not be empty")
	}
}

func TestSkillFileContent(t *testing.T) {
	skillPath := filepath.Join(t.TempDir(), "SKILL.md")
	if err := installSkillToPath(skillPath); err != nil {
		t.Fatalf("installSkillToPath failed: %v", err)
	}

	content, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("failed to read skill file: %v", err)
	}

	for _, want := range []string{"name: datepage", "# datepage", "datepage add", "datepage page", "page_open"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("skill file missing %q", want)
		}
	}
}

func TestSkillOverwritesExisting(t *testing.T) {
	skillPath := filepath.Join(t.TempDir(), "SKILL.md")
	if err := os.WriteFile(skillPath, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := installSkillToPath(skillPath); err != nil {
		t.Fatalf("installSkillToPath failed: %v", err)
	}

	embedded, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("failed to read embedded skill file: %v", err)
	}
	installed, _ := os.ReadFile(skillPath)
	if string(installed) != string(embedded) {
		t.Error("installed content does not match embedded content")
	}
}
