package types

// ExtractionPayload is the structured response decoded from one
// extraction call over a single segment.
type ExtractionPayload struct {
	Characters []CharacterCandidate `json:"characters"`
	Scenes     []SceneCandidate     `json:"scenes"`
}

// CharacterCandidate is one character as reported by the extraction
// service for a single segment, before merging.
type CharacterCandidate struct {
	GroupName      string          `json:"group_name"`
	Name           string          `json:"name"`
	Aliases        []string        `json:"aliases,omitempty"`
	Role           string          `json:"role,omitempty"`
	Age            string          `json:"age,omitempty"`
	Description    string          `json:"description,omitempty"`
	VisualTraits   string          `json:"visual_traits,omitempty"`
	ClothingStyles []ClothingStyle `json:"clothing_styles,omitempty"`
	Weapons        []Weapon        `json:"weapons,omitempty"`
}

// SceneCandidate is one location as reported by the extraction service
// for a single segment, before merging. Count is the number of
// occurrences the segment contributed (defaults to 1 when omitted).
type SceneCandidate struct {
	GroupName   string   `json:"group_name"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description,omitempty"`
	Structure   string   `json:"structure,omitempty"`
	Atmosphere  string   `json:"atmosphere,omitempty"`
	Style       string   `json:"style,omitempty"`
	Type        string   `json:"type,omitempty"`
	Count       int      `json:"count,omitempty"`
}
