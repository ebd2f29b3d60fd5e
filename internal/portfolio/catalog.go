package portfolio

import (
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Section identifies one of the fixed content panels
type Section string

const (
	SectionHome       Section = "home"
	SectionAbout      Section = "about"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionContact    Section = "contact"
)

// sections is the catalog order. It drives next/previous and the 1-6 shortcuts.
var sections = []Section{
	SectionHome,
	SectionAbout,
	SectionExperience,
	SectionSkills,
	SectionProjects,
	SectionContact,
}

var labels = map[Section]string{
	SectionHome:       "Home",
	SectionAbout:      "About",
	SectionExperience: "Experience",
	SectionSkills:     "Skills",
	SectionProjects:   "Projects",
	SectionContact:    "Contact",
}

// Sections returns the catalog in display order
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Count returns the number of sections in the catalog
func Count() int {
	return len(sections)
}

// First returns the first catalog entry
func First() Section {
	return sections[0]
}

// Last returns the last catalog entry
func Last() Section {
	return sections[len(sections)-1]
}

// At returns the section at index i, or false when i is out of range
func At(i int) (Section, bool) {
	if i < 0 || i >= len(sections) {
		return "", false
	}
	return sections[i], true
}

// IndexOf returns the catalog index of s, or -1 if s is not a section
func IndexOf(s Section) int {
	for i, sec := range sections {
		if sec == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a catalog member
func (s Section) Valid() bool {
	return IndexOf(s) >= 0
}

// Label returns the display label, falling back to the raw identifier
func (s Section) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Shortcut returns the numeric key ("1".."6") bound to s, or "" if s is unknown
func (s Section) Shortcut() string {
	i := IndexOf(s)
	if i < 0 {
		return ""
	}
	return strconv.Itoa(i + 1)
}

// FromShortcut resolves a numeric shortcut key to its section
func FromShortcut(key string) (Section, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return "", false
	}
	return At(int(key[0] - '1'))
}

// ParseSection resolves a section identifier, accepting labels case-insensitively
func ParseSection(name string) (Section, bool) {
	for _, s := range sections {
		if string(s) == name || strings.EqualFold(s.Label(), name) {
			return s, true
		}
	}
	return "", false
}

// Suggest returns the section a mistyped name most likely meant
func Suggest(name string) (Section, bool) {
	if name == "" {
		return "", false
	}
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	matches := fuzzy.Find(strings.ToLower(name), names)
	if len(matches) == 0 {
		return "", false
	}
	return sections[matches[0].Index], true
}
