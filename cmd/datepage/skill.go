// ABOUTME: Install agent skill for datepage
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/atomicfile"
	"github.com/harper/datepage/internal/config"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install the datepage agent skill",
	Long: `Install the datepage skill for AI coding agents.

This copies the skill definition to ~/.claude/skills/datepage/
so agents can use datepage commands contextually.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		skillPath := filepath.Join(home, ".claude", "skills", "datepage", "SKILL.md")

		if err := installSkillToPath(skillPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Installed datepage skill to %s\n", skillPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installSkillCmd)
}

func installSkillToPath(skillPath string) error {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(skillPath), config.DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	if err := atomicfile.WriteFile(skillPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}
	return nil
}
