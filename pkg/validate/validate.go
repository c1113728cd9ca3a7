// Package validate checks skill directories against the skill convention and
// verifies protective licensing. Results are reported as named pass/fail
// checks suitable for human-readable output.
package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/skills"
)

// Check is a single named validation with its outcome.
type Check struct {
	Name    string
	OK      bool
	Message string
}

// Report collects the checks run against one skill directory.
type Report struct {
	SkillDir string
	Checks   []Check
}

func (r *Report) add(name string, ok bool, format string, args ...interface{}) {
	r.Checks = append(r.Checks, Check{Name: name, OK: ok, Message: fmt.Sprintf(format, args...)})
}

// Passed reports whether every check succeeded.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Failures returns the checks that did not pass.
func (r *Report) Failures() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.OK {
			failed = append(failed, c)
		}
	}
	return failed
}

// Err aggregates all failed checks into a single error, or nil if the report
// passed.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, c := range r.Checks {
		if !c.OK {
			result = multierror.Append(result, errors.Errorf("%s: %s", c.Name, c.Message))
		}
	}
	return result.ErrorOrNil()
}

// Merge appends another report's checks into this one.
func (r *Report) Merge(other *Report) {
	r.Checks = append(r.Checks, other.Checks...)
}

// resolveSkillDir normalizes and sanity checks the skill path.
func resolveSkillDir(skillPath string) (string, error) {
	dir, err := filepath.Abs(skillPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve skill path")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", errors.Wrapf(err, "skill directory not found: %s", dir)
	}
	if !info.IsDir() {
		return "", errors.Errorf("path is not a directory: %s", dir)
	}

	return dir, nil
}

// Skill validates a skill directory against the structural convention:
// SKILL.md present, well-formed frontmatter with the required fields, and the
// directory name matching the declared skill name.
func Skill(skillPath string) (*Report, error) {
	dir, err := resolveSkillDir(skillPath)
	if err != nil {
		return nil, err
	}

	report := &Report{SkillDir: dir}

	skillFile := filepath.Join(dir, skills.SkillFileName)
	content, err := os.ReadFile(skillFile)
	if err != nil {
		report.add("SKILL.md", false, "%s not found in %s", skills.SkillFileName, dir)
		return report, nil
	}
	report.add("SKILL.md", true, "instructions file present")

	metadata, err := skills.ParseFrontmatter(content)
	if err != nil {
		report.add("Frontmatter", false, "%v", err)
		return report, nil
	}
	report.add("Frontmatter", true, "frontmatter parsed")

	if metadata.Name == "" {
		report.add("Name", false, "missing required 'name' field in frontmatter")
	} else if !skills.IsValidName(metadata.Name) {
		report.add("Name", false, "name '%s' violates naming convention (lowercase words joined by single hyphens)", metadata.Name)
	} else {
		report.add("Name", true, "name '%s' follows naming convention", metadata.Name)
	}

	if metadata.Description == "" {
		report.add("Description", false, "missing required 'description' field in frontmatter")
	} else {
		report.add("Description", true, "description present")
	}

	if metadata.Name != "" {
		dirName := filepath.Base(dir)
		if dirName != metadata.Name {
			report.add("Directory", false, "directory name '%s' does not match declared name '%s'", dirName, metadata.Name)
		} else {
			report.add("Directory", true, "directory name matches declared name")
		}
	}

	return report, nil
}
