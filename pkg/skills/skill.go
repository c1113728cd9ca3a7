// Package skills implements the skill directory convention: a skill is a
// directory containing a SKILL.md file with YAML frontmatter declaring its
// name and description, followed by free-form instructions, plus optional
// scripts/, references/, and assets/ subdirectories.
package skills

import "regexp"

// SkillFileName is the required instructions file at the root of every skill directory.
const SkillFileName = "SKILL.md"

// Skill represents a discovered skill with its metadata
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description of what the skill does
	License     string // Optional license reference from frontmatter
	Directory   string // Full path to the skill directory
	Content     string // Full content of SKILL.md (body, not frontmatter)
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	License     string `yaml:"license,omitempty"`
}

// Skill names are lowercase words joined by single hyphens.
var nameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsValidName reports whether name follows the skill naming convention:
// lowercase alphanumeric words joined by single hyphens, no leading,
// trailing, or consecutive separators.
func IsValidName(name string) bool {
	return nameRe.MatchString(name)
}
