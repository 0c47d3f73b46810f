package model

import "fmt"

// SetField assigns value to the named scalar field of the document. Paths use
// the wire-format spelling, e.g. "hero.name", "about.p1", "theme.accentColor",
// "manifesto.p3". List sections are edited through the Append/Remove helpers
// below so the document shape can never drift from the typed structure.
func (c *SiteContent) SetField(path, value string) error {
	targets := map[string]*string{
		"theme.fontSerif":       &c.Theme.FontSerif,
		"theme.fontSans":        &c.Theme.FontSans,
		"theme.primaryColor":    &c.Theme.PrimaryColor,
		"theme.backgroundColor": &c.Theme.BackgroundColor,
		"theme.textColor":       &c.Theme.TextColor,
		"theme.accentColor":     &c.Theme.AccentColor,
		"theme.profileImage":    &c.Theme.ProfileImage,
		"hero.badge":            &c.Hero.Badge,
		"hero.name":             &c.Hero.Name,
		"hero.quote":            &c.Hero.Quote,
		"hero.aiText":           &c.Hero.AIText,
		"about.title":           &c.About.Title,
		"about.p1":              &c.About.P1,
		"about.p2":              &c.About.P2,
		"manifesto.title":       &c.Manifesto.Title,
		"manifesto.p1":          &c.Manifesto.P1,
		"manifesto.p2":          &c.Manifesto.P2,
		"manifesto.p3":          &c.Manifesto.P3,
		"manifesto.p4":          &c.Manifesto.P4,
	}
	dst, ok := targets[path]
	if !ok {
		return fmt.Errorf("%w: unknown content field %q", ErrValidation, path)
	}
	*dst = value
	return nil
}

// AppendExperience adds an entry at the end of the experience list.
func (c *SiteContent) AppendExperience(e ExperienceItem) {
	c.Experiences = append(c.Experiences, e)
}

// RemoveExperience deletes the entry at index i, preserving the order of the
// survivors.
func (c *SiteContent) RemoveExperience(i int) error {
	if i < 0 || i >= len(c.Experiences) {
		return fmt.Errorf("%w: experience index %d out of range", ErrValidation, i)
	}
	c.Experiences = append(c.Experiences[:i], c.Experiences[i+1:]...)
	return nil
}

// AppendEducation adds an entry at the end of the education list.
func (c *SiteContent) AppendEducation(e EducationItem) {
	c.Education = append(c.Education, e)
}

// RemoveEducation deletes the entry at index i.
func (c *SiteContent) RemoveEducation(i int) error {
	if i < 0 || i >= len(c.Education) {
		return fmt.Errorf("%w: education index %d out of range", ErrValidation, i)
	}
	c.Education = append(c.Education[:i], c.Education[i+1:]...)
	return nil
}

// AppendLanguage adds an entry at the end of the language list.
func (c *SiteContent) AppendLanguage(l LanguageItem) {
	c.Languages = append(c.Languages, l)
}

// RemoveLanguage deletes the entry at index i.
func (c *SiteContent) RemoveLanguage(i int) error {
	if i < 0 || i >= len(c.Languages) {
		return fmt.Errorf("%w: language index %d out of range", ErrValidation, i)
	}
	c.Languages = append(c.Languages[:i], c.Languages[i+1:]...)
	return nil
}

// AppendSkill adds a skill. An empty category defaults to professional.
func (c *SiteContent) AppendSkill(s Skill) {
	if s.Category == "" {
		s.Category = SkillProfessional
	}
	c.Skills = append(c.Skills, s)
}

// RemoveSkill deletes the skill at index i.
func (c *SiteContent) RemoveSkill(i int) error {
	if i < 0 || i >= len(c.Skills) {
		return fmt.Errorf("%w: skill index %d out of range", ErrValidation, i)
	}
	c.Skills = append(c.Skills[:i], c.Skills[i+1:]...)
	return nil
}

// Clone returns a deep copy so an editing draft never aliases the original
// document's slices.
func (c *SiteContent) Clone() *SiteContent {
	out := *c
	out.Experiences = append([]ExperienceItem(nil), c.Experiences...)
	out.Education = append([]EducationItem(nil), c.Education...)
	out.Languages = append([]LanguageItem(nil), c.Languages...)
	out.Skills = append([]Skill(nil), c.Skills...)
	return &out
}
