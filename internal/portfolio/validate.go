package portfolio

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// ValidationError describes a single invalid content field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks that s is a bare address (no display name)
func ValidateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return fmt.Errorf("invalid email %q", s)
	}
	if addr.Name != "" || addr.Address != s {
		return fmt.Errorf("invalid email %q: display names are not allowed", s)
	}
	return nil
}

// ValidateURL checks that s is an absolute http(s) URL
func ValidateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", s, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", s)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", s)
	}
	return nil
}

// Validate checks the whole portfolio and returns every problem found
func (p *Portfolio) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(p.Name) == "" {
		add("name", "is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		add("title", "is required")
	}

	for i, e := range p.Experience {
		field := fmt.Sprintf("experience[%d]", i)
		if e.Role == "" || e.Company == "" {
			add(field, "role and company are required")
		}
		if e.Period == "" {
			add(field, "period is required")
		}
	}

	for i, g := range p.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		if g.Category == "" {
			add(field, "category is required")
		}
		for j, s := range g.Skills {
			if s.Name == "" {
				add(fmt.Sprintf("%s.skills[%d]", field, j), "name is required")
			}
			if s.Level < 1 || s.Level > MaxSkillLevel {
				add(fmt.Sprintf("%s.skills[%d]", field, j), "level %d out of range 1-%d", s.Level, MaxSkillLevel)
			}
		}
	}

	for i, pr := range p.Projects {
		field := fmt.Sprintf("projects[%d]", i)
		if pr.Name == "" {
			add(field, "name is required")
		}
		if pr.URL != "" {
			if err := ValidateURL(pr.URL); err != nil {
				add(field+".url", "%v", err)
			}
		}
	}

	if err := ValidateEmail(p.Contact.Email); err != nil {
		add("contact.email", "%v", err)
	}
	links := []struct {
		field string
		value string
	}{
		{"contact.website", p.Contact.Website},
		{"contact.github", p.Contact.GitHub},
		{"contact.linkedin", p.Contact.LinkedIn},
	}
	for _, l := range links {
		if l.value == "" {
			continue
		}
		if err := ValidateURL(l.value); err != nil {
			add(l.field, "%v", err)
		}
	}

	return errors.Join(errs...)
}
