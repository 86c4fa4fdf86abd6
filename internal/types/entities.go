// Package types provides shared types used across multiple packages.
// This package has no dependencies on other dramatis packages to avoid import cycles.
package types

// Role classifies how central a character is to the story.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleSupporting Role = "supporting"
	RoleBackground Role = "background"
)

// ParseRole converts a string to a Role.
// Returns RoleBackground if the string is not recognized.
func ParseRole(s string) Role {
	switch s {
	case "primary":
		return RolePrimary
	case "secondary":
		return RoleSecondary
	case "supporting":
		return RoleSupporting
	case "background":
		return RoleBackground
	default:
		return RoleBackground
	}
}

// SceneStructure distinguishes interior from exterior locations.
type SceneStructure string

const (
	StructureInterior SceneStructure = "interior"
	StructureExterior SceneStructure = "exterior"
)

// SceneType classifies the narrative function of a location.
type SceneType string

const (
	SceneCoreLocation SceneType = "core-location"
	ScenePlotPoint    SceneType = "plot-point"
	SceneTransition   SceneType = "transition"
)

// ClothingStyle describes a character's outfit during one phase of the story.
type ClothingStyle struct {
	Phase       string `json:"phase" yaml:"phase"`
	Description string `json:"description" yaml:"description"`
}

// Weapon describes a weapon or signature item carried by a character.
type Weapon struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Character is a canonical character record accumulated across segments.
// GroupName is the stable cross-form identity anchor; Name is the surface
// form in the current context. The pair (normalized group, normalized name)
// is unique within one accumulated result set.
type Character struct {
	ID             string          `json:"id" yaml:"id"`
	GroupName      string          `json:"group_name" yaml:"group_name"`
	Name           string          `json:"name" yaml:"name"`
	Aliases        []string        `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Role           Role            `json:"role,omitempty" yaml:"role,omitempty"`
	Age            string          `json:"age,omitempty" yaml:"age,omitempty"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	VisualTraits   string          `json:"visual_traits,omitempty" yaml:"visual_traits,omitempty"`
	ClothingStyles []ClothingStyle `json:"clothing_styles,omitempty" yaml:"clothing_styles,omitempty"`
	Weapons        []Weapon        `json:"weapons,omitempty" yaml:"weapons,omitempty"`
}

// Scene is a canonical location record accumulated across segments.
// Frequency counts how many segments contributed the location; it only
// increases across merges.
type Scene struct {
	ID          string         `json:"id" yaml:"id"`
	GroupName   string         `json:"group_name" yaml:"group_name"`
	Name        string         `json:"name" yaml:"name"`
	Aliases     []string       `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Structure   SceneStructure `json:"structure,omitempty" yaml:"structure,omitempty"`
	Atmosphere  string         `json:"atmosphere,omitempty" yaml:"atmosphere,omitempty"`
	Style       string         `json:"style,omitempty" yaml:"style,omitempty"`
	Type        SceneType      `json:"type,omitempty" yaml:"type,omitempty"`
	Frequency   int            `json:"frequency" yaml:"frequency"`
}

// ChapterMetadata describes one chapter located in the source text.
// AnchorLine is a short excerpt usable to re-locate the chapter start.
type ChapterMetadata struct {
	Title      string `json:"title" yaml:"title"`
	Summary    string `json:"summary" yaml:"summary"`
	AnchorLine string `json:"anchor_line" yaml:"anchor_line"`
}
