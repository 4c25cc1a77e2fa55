package keywords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

var ErrUnknownRole = errors.New("unknown job role")

// Roles maps a job role to its mandatory keywords.
type Roles map[string][]string

// DefaultRoles are the built-in job roles.
var DefaultRoles = Roles{
	"Data Analyst":       {"python", "sql", "power bi", "excel"},
	"Data Scientist":     {"python", "machine learning", "statistics", "numpy"},
	"Frontend Developer": {"html", "css", "javascript", "react"},
}

// Merge returns the default roles overlaid with extra. Keywords of extra roles
// are trimmed and lowercased.
func (r Roles) Merge(extra map[string][]string) Roles {
	merged := make(Roles, len(r)+len(extra))
	for role, kws := range r {
		merged[role] = append([]string(nil), kws...)
	}
	for role, kws := range extra {
		clean := make([]string, 0, len(kws))
		for _, kw := range kws {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				clean = append(clean, kw)
			}
		}
		merged[role] = clean
	}
	return merged
}

func (r Roles) Mandatory(role string) ([]string, error) {
	kws, ok := r[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return append([]string(nil), kws...), nil
}

// Names returns the role names sorted.
func (r Roles) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize returns the (plural, singular) forms of kw. A trailing "s" is
// stripped for the singular, otherwise one is appended for the plural.
func Normalize(kw string) (plural, singular string) {
	s := strings.ToLower(strings.TrimSpace(kw))
	if strings.HasSuffix(s, "s") {
		return s, s[:len(s)-1]
	}
	return s + "s", s
}

// ParseOptional reads one keyword per line. Lines are trimmed and lowercased,
// blank lines skipped, order and duplicates kept.
func ParseOptional(r io.Reader) ([]string, error) {
	const op = "keywords.ParseOptional"

	var kws []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if kw := strings.ToLower(strings.TrimSpace(scanner.Text())); kw != "" {
			kws = append(kws, kw)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return kws, nil
}

// Combine concatenates mandatory and optional keywords without deduplication.
func Combine(mandatory, optional []string) []string {
	kws := make([]string, 0, len(mandatory)+len(optional))
	kws = append(kws, mandatory...)
	return append(kws, optional...)
}

// StopWords returns the keywords that are English stop words. They are still
// searched for; callers only warn about them.
func StopWords(kws []string) []string {
	var stop []string
	for _, kw := range kws {
		if snowballeng.IsStopWord(strings.ToLower(strings.TrimSpace(kw))) {
			stop = append(stop, kw)
		}
	}
	return stop
}
