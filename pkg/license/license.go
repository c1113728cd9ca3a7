// Package license renders and applies protective license templates to skill
// directories. Two tiers are supported: the standard v1.0 license and the
// maximum protection v2.0 license with forensic tracking metadata.
package license

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tier selects which license template is applied.
type Tier string

const (
	// TierStandard is the protective skills license v1.0.
	TierStandard Tier = "standard"
	// TierMaximum is the maximum protection license v2.0 with liquidated
	// damages, criminal statutes, and forensic tracking.
	TierMaximum Tier = "maximum"
)

// ParseTier converts a user-supplied tier name into a Tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(s)) {
	case TierStandard:
		return TierStandard, nil
	case TierMaximum:
		return TierMaximum, nil
	default:
		return "", errors.Errorf("invalid license tier '%s': must be 'standard' or 'maximum'", s)
	}
}

// EntityType describes the legal form of the copyright holder.
type EntityType string

const (
	EntityIndividual         EntityType = "individual"
	EntityCorporation        EntityType = "corporation"
	EntityLLC                EntityType = "llc"
	EntityMedicalCorporation EntityType = "medical_corporation"
)

// ParseEntityType converts a user-supplied entity type into an EntityType.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(strings.ToLower(s)) {
	case EntityIndividual, EntityCorporation, EntityLLC, EntityMedicalCorporation:
		return EntityType(strings.ToLower(s)), nil
	default:
		return "", errors.Errorf("invalid entity type '%s': must be one of individual, corporation, llc, medical_corporation", s)
	}
}

// Config holds the entity and jurisdiction data substituted into the template.
type Config struct {
	Tier            Tier
	EntityName      string
	EntityType      EntityType
	Jurisdiction    string
	County          string // Maximum tier forum selection, defaults to Los Angeles
	ContactName     string
	ContactEmail    string
	SecondaryEntity string // Joint ownership when set
}

// Validate checks that the required config fields are present.
func (c *Config) Validate() error {
	if c.EntityName == "" {
		return errors.New("entity name is required")
	}
	if c.Jurisdiction == "" {
		return errors.New("jurisdiction is required")
	}
	if _, err := ParseEntityType(string(c.EntityType)); err != nil {
		return err
	}
	if _, err := ParseTier(string(c.Tier)); err != nil {
		return err
	}
	return nil
}

// Joint reports whether the license names two copyright holders.
func (c *Config) Joint() bool {
	return c.SecondaryEntity != ""
}

// FullEntityName returns the copyright holder line, combining both entities
// for joint ownership.
func (c *Config) FullEntityName() string {
	if c.Joint() {
		return c.EntityName + " and " + c.SecondaryEntity
	}
	return c.EntityName
}

// templateData carries the resolved substitution fields for a template.
type templateData struct {
	Year               int
	EntityName         string
	OwnershipStatement string
	Plural             string
	PluralUpper        string
	Verb               string
	ContactInfo        string
	Jurisdiction       string
	County             string
	Date               string
	DigitalSignature   string
	RegistrationMarker string
}

// Render produces the finished license text for the config. skillPath feeds
// the forensic signature on the maximum tier. The returned signature and
// marker are empty for the standard tier.
func Render(config *Config, skillPath string, now time.Time) (content, signature, marker string, err error) {
	if err := config.Validate(); err != nil {
		return "", "", "", err
	}

	data := templateData{
		Year:         now.Year(),
		EntityName:   config.FullEntityName(),
		Jurisdiction: config.Jurisdiction,
		County:       config.County,
		Date:         now.Format("January 2, 2006"),
	}
	if data.County == "" {
		data.County = "Los Angeles"
	}
	if config.Joint() {
		data.Plural = "s"
		data.PluralUpper = "S"
	} else {
		// "copyright holder retains" vs "copyright holders retain"
		data.Verb = "s"
	}

	tmplText := standardTemplate
	if config.Tier == TierMaximum {
		tmplText = maximumTemplate
		data.DigitalSignature = DigitalSignature(skillPath, config.FullEntityName(), now)
		data.RegistrationMarker = RegistrationMarker()
		signature = data.DigitalSignature
		marker = data.RegistrationMarker
	}

	data.OwnershipStatement = ownershipStatement(config)
	data.ContactInfo = contactInfo(config)

	tmpl, err := template.New("license").Parse(tmplText)
	if err != nil {
		return "", "", "", errors.Wrap(err, "failed to parse license template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", "", errors.Wrap(err, "failed to execute license template")
	}

	return buf.String(), signature, marker, nil
}

// ownershipStatement produces the statement of ownership appropriate for the
// entity type, with the enhanced trade secret language on the maximum tier.
func ownershipStatement(config *Config) string {
	var statement string

	switch {
	case config.Joint():
		if config.Tier == TierMaximum && config.EntityType == EntityMedicalCorporation {
			statement = fmt.Sprintf("This work is jointly owned by %s, a medical corporation organized under %s law, and %s, a limited liability company.",
				config.EntityName, config.Jurisdiction, config.SecondaryEntity)
		} else {
			statement = fmt.Sprintf("This work is jointly owned by %s (%s) and %s.",
				config.EntityName, entityTypeLabel(config.EntityType), config.SecondaryEntity)
		}
		if config.Tier == TierMaximum {
			statement += "\n\nBoth entities retain full enforcement rights independently and jointly."
		}
	case config.EntityType == EntityIndividual:
		if config.Tier == TierMaximum {
			statement = fmt.Sprintf("This work is solely owned by %s, an individual.", config.EntityName)
		}
		// Standard tier carries no ownership statement for individuals
	case config.EntityType == EntityCorporation:
		statement = fmt.Sprintf("This work is owned by %s, a corporation.", config.EntityName)
	case config.EntityType == EntityLLC:
		statement = fmt.Sprintf("This work is owned by %s, a limited liability company.", config.EntityName)
	case config.EntityType == EntityMedicalCorporation:
		statement = fmt.Sprintf("This work is owned by %s, a medical corporation.", config.EntityName)
	}

	if config.Tier == TierMaximum {
		statement += "\n\nThis work constitutes valuable trade secrets and proprietary information."
		statement += "\nUnauthorized use may result in both civil and criminal prosecution."
	}

	return statement
}

func entityTypeLabel(et EntityType) string {
	words := strings.Split(string(et), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// contactInfo formats the permission request contact block.
func contactInfo(config *Config) string {
	var lines []string

	switch {
	case config.ContactName != "" && config.ContactEmail != "":
		lines = []string{config.ContactName, config.EntityName, "Email: " + config.ContactEmail}
	case config.ContactEmail != "":
		lines = []string{config.EntityName, "Email: " + config.ContactEmail}
	default:
		if config.Tier == TierMaximum {
			lines = []string{config.EntityName, "[SEALED - Contact through counsel only]"}
		} else {
			lines = []string{config.EntityName, "[Contact information to be provided]"}
		}
	}

	if config.Tier == TierMaximum && config.ContactEmail != "" {
		lines = append(lines, "NOTICE: Permission requests require $10,000 processing fee")
	}

	return strings.Join(lines, "\n")
}

// DigitalSignature computes the SHA-256 fingerprint recorded in maximum tier
// licenses and forensic metadata.
func DigitalSignature(skillPath, entityName string, now time.Time) string {
	content := fmt.Sprintf("%s:%s:%s", skillPath, entityName, now.UTC().Format(time.RFC3339Nano))
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// RegistrationMarker generates the registration marker embedded in maximum
// tier licenses.
func RegistrationMarker() string {
	return "REG-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
