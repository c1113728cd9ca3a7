package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillkit/skillkit/pkg/license"
	"github.com/skillkit/skillkit/pkg/skills"
)

// maximumProvisions are the clauses a maximum protection license must carry,
// paired with the failure message reported when absent.
var maximumProvisions = []struct {
	element string
	message string
}{
	{"MAXIMUM PROTECTION v2.0", "not a maximum protection license version"},
	{"LIQUIDATED DAMAGES SCHEDULE", "missing liquidated damages schedule"},
	{"$250,000", "missing $250,000 AI training penalty"},
	{"$100,000", "missing $100,000 commercial use penalty"},
	{"$500,000", "missing $500,000 circumvention penalty"},
	{"CRIMINAL LAW NOTICE", "missing criminal law notice section"},
	{"PERSONAL LIABILITY", "missing personal liability section"},
	{"Corporate veils SHALL be pierced", "missing corporate veil piercing"},
	{"TREBLE DAMAGES", "missing treble damages provision"},
	{"$10,000,000", "missing punitive damages cap"},
	{"3x multiplier", "missing attorney fee multiplier"},
	{"AUDIT RIGHTS", "missing audit rights"},
	{"48-hour notice", "missing forensic audit provision"},
	{"$1,000,000 bond", "missing challenge bond requirement"},
	{"NO DEFENSE CLAUSE", "missing no defense clause"},
	{"Fair use or research exception", "missing fair use exclusion"},
	{"DIGITAL FINGERPRINT", "missing digital fingerprint requirement"},
	{"forensic evidence", "missing forensic tracking"},
	{"INTERNATIONAL ENFORCEMENT", "missing international enforcement"},
	{"Berne Convention", "missing Berne Convention reference"},
	{"SEVERABILITY WITH TEETH", "missing enhanced severability"},
	{"DOUBLING of remaining", "missing damage doubling provision"},
	{"10x all damages", "missing major tech company multiplier"},
	{"RICO", "missing RICO Act reference"},
	{"NO JURY TRIAL", "missing jury trial waiver for violators"},
	{"Superior Court of California", "missing exclusive jurisdiction"},
	{"10 years from discovery", "missing extended limitations period"},
}

// criminalStatutes must each be cited for the criminal provisions to pass.
var criminalStatutes = []struct {
	statute string
	name    string
}{
	{"18 U.S.C. §1030", "Computer Fraud and Abuse Act"},
	{"18 U.S.C. §1831", "Economic Espionage Act"},
	{"17 U.S.C. §1201", "DMCA anti-circumvention"},
	{"18 U.S.C. §1343", "Wire Fraud"},
	{"18 U.S.C. §1961", "RICO Act"},
	{"Cal. Penal Code §502", "California computer crimes"},
}

// damageSchedule maps violation types to the amount string that must appear.
var damageSchedule = []struct {
	violation string
	amount    string
}{
	{"AI/ML Training", "$250,000"},
	{"Commercial Use", "$100,000"},
	{"Redistribution", "$50,000"},
	{"Modification", "$75,000"},
	{"Reverse Engineering", "$150,000"},
	{"Circumvention", "$500,000"},
	{"Continuing", "$10,000 per day"},
	{"Major Tech", "$2.5M"},
}

// enforcementFeatures are the remedies the maximum tier must declare.
var enforcementFeatures = []struct {
	feature     string
	description string
}{
	{"IMMEDIATE INJUNCTIVE RELIEF", "immediate injunction"},
	{"without bond", "bond waiver for injunctions"},
	{"PUNITIVE DAMAGES", "punitive damages"},
	{"3x multiplier", "attorney fee multiplier"},
	{"DISGORGEMENT", "profit disgorgement"},
	{"PUBLIC DISCLOSURE", "public disclosure remedy"},
	{"DESTRUCTION of all copies", "destruction remedy"},
	{"forensic examination", "forensic audit rights"},
	{"48-hour notice", "audit notice period"},
	{"$1,000,000 bond", "challenge bond requirement"},
}

// forensicRequiredFields must be present in .forensic_metadata.json.
var forensicRequiredFields = []string{
	"license_version",
	"entity",
	"digital_signature",
	"registration_marker",
	"forensic_tracking",
	"enforcement",
}

// MaximumProtection validates that a skill carries the full maximum
// protection licensing: the v2.0 license provisions, forensic metadata,
// criminal statutes, the complete damages schedule, and all enforcement
// mechanisms.
func MaximumProtection(skillPath string) (*Report, error) {
	dir, err := resolveSkillDir(skillPath)
	if err != nil {
		return nil, err
	}

	report := &Report{SkillDir: dir}

	licensePath := filepath.Join(dir, license.LicenseFileName)
	content, readErr := os.ReadFile(licensePath)

	checkMaximumLicenseFile(report, content, readErr)
	checkForensicMetadata(report, dir)

	if readErr == nil {
		text := string(content)
		checkCriminalProvisions(report, text)
		checkLiquidatedDamages(report, text)
		checkEnforcementMechanisms(report, text)
	}

	checkMaximumSkillRef(report, dir)

	return report, nil
}

func checkMaximumLicenseFile(report *Report, content []byte, readErr error) {
	if readErr != nil {
		report.add("License File", false, "%s not found", license.LicenseFileName)
		return
	}

	text := string(content)
	var failed []string
	for _, req := range maximumProvisions {
		if !strings.Contains(text, req.element) {
			failed = append(failed, req.message)
		}
	}

	if len(failed) > 0 {
		msg := strings.Join(failed, "; ")
		if len(failed) > 5 {
			msg = strings.Join(failed[:5], "; ") + fmt.Sprintf("; and %d more", len(failed)-5)
		}
		report.add("License File", false, "maximum protection requirements missing: %s", msg)
		return
	}

	report.add("License File", true, "all maximum protection license provisions present")
}

func checkForensicMetadata(report *Report, dir string) {
	raw, err := os.ReadFile(filepath.Join(dir, license.ForensicFileName))
	if err != nil {
		report.add("Forensic Metadata", false, "missing %s forensic tracking file", license.ForensicFileName)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		report.add("Forensic Metadata", false, "invalid JSON in forensic metadata file")
		return
	}

	var missing []string
	for _, field := range forensicRequiredFields {
		if _, ok := fields[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		report.add("Forensic Metadata", false, "forensic metadata missing fields: %s", strings.Join(missing, ", "))
		return
	}

	metadata, err := license.ReadForensicMetadata(dir)
	if err != nil {
		report.add("Forensic Metadata", false, "%v", err)
		return
	}

	if !strings.Contains(metadata.LicenseVersion, "MAXIMUM-PROTECTION") {
		report.add("Forensic Metadata", false, "forensic metadata not tagged as maximum protection")
		return
	}

	if len(metadata.Enforcement.LiquidatedDamages) == 0 {
		report.add("Forensic Metadata", false, "missing liquidated damages in forensic metadata")
		return
	}

	if metadata.Enforcement.LiquidatedDamages["ai_training"] != 250000 {
		report.add("Forensic Metadata", false, "incorrect AI training damage amount in metadata")
		return
	}

	report.add("Forensic Metadata", true, "forensic metadata properly configured")
}

func checkCriminalProvisions(report *Report, content string) {
	var missing []string
	for _, s := range criminalStatutes {
		if !strings.Contains(content, s.statute) {
			missing = append(missing, fmt.Sprintf("%s (%s)", s.statute, s.name))
		}
	}

	if len(missing) > 0 {
		report.add("Criminal Provisions", false, "missing criminal statutes: %s", strings.Join(missing, ", "))
		return
	}

	if !strings.Contains(content, "WILL seek criminal prosecution") {
		report.add("Criminal Provisions", false, "missing affirmative criminal prosecution commitment")
		return
	}

	report.add("Criminal Provisions", true, "all criminal law provisions present")
}

func checkLiquidatedDamages(report *Report, content string) {
	var missing []string
	for _, d := range damageSchedule {
		if !strings.Contains(content, d.amount) {
			missing = append(missing, fmt.Sprintf("%s: %s", d.violation, d.amount))
		}
	}

	if len(missing) > 0 {
		report.add("Liquidated Damages", false, "incomplete damage schedule: %s", strings.Join(missing, ", "))
		return
	}

	if !strings.Contains(content, "TRIPLE all damages") {
		report.add("Liquidated Damages", false, "missing willful violation tripling provision")
		return
	}

	if !strings.Contains(content, "10x all damages") {
		report.add("Liquidated Damages", false, "missing major tech company 10x multiplier")
		return
	}

	report.add("Liquidated Damages", true, "complete liquidated damages schedule")
}

func checkEnforcementMechanisms(report *Report, content string) {
	var missing []string
	for _, f := range enforcementFeatures {
		if !strings.Contains(content, f.feature) {
			missing = append(missing, f.description)
		}
	}

	if len(missing) > 0 {
		msg := strings.Join(missing, ", ")
		if len(missing) > 3 {
			msg = strings.Join(missing[:3], ", ") + fmt.Sprintf(" (+%d more)", len(missing)-3)
		}
		report.add("Enforcement", false, "missing enforcement mechanisms: %s", msg)
		return
	}

	report.add("Enforcement", true, "all enforcement mechanisms present")
}

func checkMaximumSkillRef(report *Report, dir string) {
	content, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	if err != nil {
		report.add("SKILL.md", false, "%s not found", skills.SkillFileName)
		return
	}

	if !strings.Contains(string(content), "MAXIMUM PROTECTION") {
		report.add("SKILL.md", false, "missing maximum protection reference")
		return
	}

	report.add("SKILL.md", true, "maximum protection reference found")
}
