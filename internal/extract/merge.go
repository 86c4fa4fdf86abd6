package extract

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/jackzampolin/dramatis/internal/types"
)

// NormalizeKey lower-cases s and strips whitespace, hyphen, and underscore
// characters so that surface variants of the same name collide.
func NormalizeKey(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

func mergeKey(group, name string) string {
	return NormalizeKey(group) + "_" + NormalizeKey(name)
}

// resolveIdentity fills a missing group name from the name and vice versa.
// Returns ok=false when the candidate has neither.
func resolveIdentity(group, name string) (string, string, bool) {
	group = strings.TrimSpace(group)
	name = strings.TrimSpace(name)
	if group == "" {
		group = name
	}
	if name == "" {
		name = group
	}
	if group == "" && name == "" {
		return "", "", false
	}
	return group, name, true
}

// Accumulator holds the canonical entity maps for one extraction run.
// It is owned by a single run; fold candidates in segment order.
type Accumulator struct {
	characters map[string]*types.Character
	charOrder  []string
	scenes     map[string]*types.Scene
	sceneOrder []string
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		characters: make(map[string]*types.Character),
		scenes:     make(map[string]*types.Scene),
	}
}

// MergeCharacter folds one candidate into the accumulated characters.
// A new key inserts the candidate with a fresh id. An existing key unions
// aliases (set semantics), concatenates clothing and weapon lists (duplicates
// kept), and leaves scalar fields untouched; later segments never overwrite
// earlier descriptions in this pass.
func (a *Accumulator) MergeCharacter(c types.CharacterCandidate) {
	group, name, ok := resolveIdentity(c.GroupName, c.Name)
	if !ok {
		return
	}
	key := mergeKey(group, name)

	existing, found := a.characters[key]
	if !found {
		a.characters[key] = &types.Character{
			ID:             uuid.New().String(),
			GroupName:      group,
			Name:           name,
			Aliases:        unionAliases(nil, c.Aliases),
			Role:           types.ParseRole(c.Role),
			Age:            c.Age,
			Description:    c.Description,
			VisualTraits:   c.VisualTraits,
			ClothingStyles: append([]types.ClothingStyle(nil), c.ClothingStyles...),
			Weapons:        append([]types.Weapon(nil), c.Weapons...),
		}
		a.charOrder = append(a.charOrder, key)
		return
	}

	existing.Aliases = unionAliases(existing.Aliases, c.Aliases)
	existing.ClothingStyles = append(existing.ClothingStyles, c.ClothingStyles...)
	existing.Weapons = append(existing.Weapons, c.Weapons...)
}

// EnrichCharacter is the enrichment-pass counterpart of MergeCharacter:
// non-empty scalar fields of the candidate do overwrite the accumulated
// record. Aliases and lists merge the same way as the segment pass.
func (a *Accumulator) EnrichCharacter(c types.CharacterCandidate) {
	group, name, ok := resolveIdentity(c.GroupName, c.Name)
	if !ok {
		return
	}
	key := mergeKey(group, name)

	existing, found := a.characters[key]
	if !found {
		a.MergeCharacter(c)
		return
	}

	if c.Role != "" {
		existing.Role = types.ParseRole(c.Role)
	}
	if c.Age != "" {
		existing.Age = c.Age
	}
	if c.Description != "" {
		existing.Description = c.Description
	}
	if c.VisualTraits != "" {
		existing.VisualTraits = c.VisualTraits
	}
	existing.Aliases = unionAliases(existing.Aliases, c.Aliases)
	existing.ClothingStyles = append(existing.ClothingStyles, c.ClothingStyles...)
	existing.Weapons = append(existing.Weapons, c.Weapons...)
}

// MergeScene folds one candidate into the accumulated scenes.
// A new key inserts the candidate; an existing key only increments Frequency
// by the candidate's contributed count (default 1). Aliases and description
// of the first-seen record are retained as authoritative.
func (a *Accumulator) MergeScene(s types.SceneCandidate) {
	group, name, ok := resolveIdentity(s.GroupName, s.Name)
	if !ok {
		return
	}
	key := mergeKey(group, name)

	count := s.Count
	if count <= 0 {
		count = 1
	}

	existing, found := a.scenes[key]
	if found {
		existing.Frequency += count
		return
	}

	a.scenes[key] = &types.Scene{
		ID:          uuid.New().String(),
		GroupName:   group,
		Name:        name,
		Aliases:     unionAliases(nil, s.Aliases),
		Description: s.Description,
		Structure:   types.SceneStructure(s.Structure),
		Atmosphere:  s.Atmosphere,
		Style:       s.Style,
		Type:        types.SceneType(s.Type),
		Frequency:   count,
	}
	a.sceneOrder = append(a.sceneOrder, key)
}

// Characters returns the accumulated characters in insertion order.
func (a *Accumulator) Characters() []*types.Character {
	out := make([]*types.Character, 0, len(a.charOrder))
	for _, key := range a.charOrder {
		out = append(out, a.characters[key])
	}
	return out
}

// Scenes returns the accumulated scenes in insertion order.
func (a *Accumulator) Scenes() []*types.Scene {
	out := make([]*types.Scene, 0, len(a.sceneOrder))
	for _, key := range a.sceneOrder {
		out = append(out, a.scenes[key])
	}
	return out
}

// Len returns the number of accumulated characters and scenes.
func (a *Accumulator) Len() (characters, scenes int) {
	return len(a.charOrder), len(a.sceneOrder)
}

// unionAliases appends the incoming aliases that are not already present,
// preserving existing order. Blank aliases are dropped.
func unionAliases(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a] = true
	}
	out := existing
	for _, a := range incoming {
		a = strings.TrimSpace(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
