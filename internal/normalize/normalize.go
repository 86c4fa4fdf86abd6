// Package normalize rewrites raw prose by substituting every known entity
// alias with its canonical <group>_<name> tag, longest key first.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jackzampolin/dramatis/internal/types"
)

type replacement struct {
	key     string
	value   string
	keyLen  int // in runes
	ordinal int // build order, for a stable sort
}

// Rewrite replaces every character and scene name or alias in text with the
// entity's canonical group_name tag. Substitutions are applied longest key
// first, each as a global literal replacement over the current state of the
// string, so a longer alias is consumed before any shorter alias that is a
// substring of it. Keys are first rewritten to opaque placeholders and the
// tags restored at the end, so a later pass cannot re-substitute inside an
// already-produced tag (aliases routinely contain the group name itself).
//
// This is a best-effort heuristic, not a tokenizer: overlapping aliases
// matching at overlapping text positions can still corrupt text in
// pathological alias sets.
func Rewrite(text string, characters []*types.Character, scenes []*types.Scene) string {
	var repls []replacement
	seen := make(map[string]bool)

	add := func(key, value string) {
		key = strings.TrimSpace(key)
		if key == "" || key == value || seen[key] {
			return
		}
		seen[key] = true
		repls = append(repls, replacement{
			key:     key,
			value:   value,
			keyLen:  len([]rune(key)),
			ordinal: len(repls),
		})
	}

	for _, c := range characters {
		tag := c.GroupName + "_" + c.Name
		add(c.Name, tag)
		for _, alias := range c.Aliases {
			if len([]rune(alias)) > 1 {
				add(alias, tag)
			}
		}
	}
	for _, s := range scenes {
		tag := s.GroupName + "_" + s.Name
		add(s.Name, tag)
		for _, alias := range s.Aliases {
			if len([]rune(alias)) > 1 {
				add(alias, tag)
			}
		}
	}

	sort.SliceStable(repls, func(i, j int) bool {
		if repls[i].keyLen != repls[j].keyLen {
			return repls[i].keyLen > repls[j].keyLen
		}
		return repls[i].ordinal < repls[j].ordinal
	})

	for i, r := range repls {
		text = strings.ReplaceAll(text, r.key, placeholder(i))
	}
	for i, r := range repls {
		text = strings.ReplaceAll(text, placeholder(i), r.value)
	}
	return text
}

// placeholder returns an opaque marker that cannot occur in prose.
func placeholder(i int) string {
	return fmt.Sprintf("\x00%d\x00", i)
}
