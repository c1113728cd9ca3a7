package license

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// ForensicFileName is the tracking metadata file written next to maximum
// tier licenses.
const ForensicFileName = ".forensic_metadata.json"

// MaximumLicenseVersion tags forensic metadata produced by the maximum tier.
const MaximumLicenseVersion = "2.0-MAXIMUM-PROTECTION"

// DamagesSchedule is the liquidated damages schedule recorded in forensic
// metadata, in USD per instance.
var DamagesSchedule = map[string]int{
	"ai_training":         250000,
	"commercial_use":      100000,
	"redistribution":      50000,
	"modification":        75000,
	"reverse_engineering": 150000,
	"circumvention":       500000,
}

// CriminalStatutes lists the statutes referenced by the maximum tier license.
var CriminalStatutes = []string{
	"18 U.S.C. §1030 (CFAA)",
	"18 U.S.C. §1831 (Economic Espionage)",
	"17 U.S.C. §1201 (DMCA)",
	"18 U.S.C. §1343 (Wire Fraud)",
	"Cal. Penal Code §502",
}

// ForensicMetadata is the structure of .forensic_metadata.json.
type ForensicMetadata struct {
	LicenseVersion     string           `json:"license_version"`
	Entity             string           `json:"entity"`
	Generated          string           `json:"generated"`
	DigitalSignature   string           `json:"digital_signature"`
	RegistrationMarker string           `json:"registration_marker"`
	SkillPath          string           `json:"skill_path"`
	ForensicTracking   ForensicTracking `json:"forensic_tracking"`
	Enforcement        Enforcement      `json:"enforcement"`
}

// ForensicTracking describes the tracking mechanisms declared by the license.
type ForensicTracking struct {
	WatermarkType      string `json:"watermark_type"`
	SignatureAlgorithm string `json:"signature_algorithm"`
	TrackingEnabled    bool   `json:"tracking_enabled"`
	AuditLogRequired   bool   `json:"audit_log_required"`
}

// Enforcement captures the damages schedule and criminal statutes.
type Enforcement struct {
	LiquidatedDamages map[string]int `json:"liquidated_damages"`
	CriminalStatutes  []string       `json:"criminal_statutes"`
}

// NewForensicMetadata builds the metadata recorded for a maximum tier
// application.
func NewForensicMetadata(skillPath, entityName, signature, marker string, now time.Time) *ForensicMetadata {
	// Per-instance copies keep callers from mutating the package-level schedule
	damages := make(map[string]int, len(DamagesSchedule))
	for violation, amount := range DamagesSchedule {
		damages[violation] = amount
	}
	statutes := append([]string(nil), CriminalStatutes...)

	return &ForensicMetadata{
		LicenseVersion:     MaximumLicenseVersion,
		Entity:             entityName,
		Generated:          now.UTC().Format(time.RFC3339),
		DigitalSignature:   signature,
		RegistrationMarker: marker,
		SkillPath:          skillPath,
		ForensicTracking: ForensicTracking{
			WatermarkType:      "steganographic",
			SignatureAlgorithm: "SHA256",
			TrackingEnabled:    true,
			AuditLogRequired:   true,
		},
		Enforcement: Enforcement{
			LiquidatedDamages: damages,
			CriminalStatutes:  statutes,
		},
	}
}

// Write serializes the metadata into the skill directory.
func (m *ForensicMetadata) Write(skillDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal forensic metadata")
	}

	path := filepath.Join(skillDir, ForensicFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write forensic metadata")
	}

	return nil
}

// ReadForensicMetadata loads and parses the forensic metadata file from a
// skill directory.
func ReadForensicMetadata(skillDir string) (*ForensicMetadata, error) {
	data, err := os.ReadFile(filepath.Join(skillDir, ForensicFileName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read forensic metadata")
	}

	var m ForensicMetadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "invalid JSON in forensic metadata file")
	}

	return &m, nil
}
