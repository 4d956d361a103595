package domain

import "strings"

// Difficulty levels used by the seed catalog. Records may carry any string.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// DemoNone marks a project without a hosted demo.
const DemoNone = "none"

// Project is a single portfolio entry of the catalog.
// It is storage-agnostic and shared by the catalog, query and HTTP layers.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Demo        string   `json:"demo" yaml:"demo"`
	Repo        string   `json:"repo" yaml:"repo"`
	Excerpt     string   `json:"excerpt" yaml:"excerpt"`
	CreatedAt   Date     `json:"created_at" yaml:"created_at"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty"`
}

// SearchText is the lower-cased haystack used by free-text search.
func (p Project) SearchText() string {
	return strings.ToLower(p.Title + " " + p.Description + " " + p.Excerpt)
}

// HasTag reports whether the project carries tag, ignoring case.
// The match is exact: "pyth" does not match "Python".
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the tag slice.
func (p Project) Clone() Project {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}
