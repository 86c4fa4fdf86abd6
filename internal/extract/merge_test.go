package extract

import (
	"testing"

	"github.com/jackzampolin/dramatis/internal/types"
)

func TestNormalizeKey(t *testing.T) {
	t.Run("case and separator insensitive", func(t *testing.T) {
		pairs := [][2]string{
			{"唐 僧", "唐僧"},
			{"Sun-Wukong", "sunwukong"},
			{"sun_wu kong", "SunWuKong"},
		}
		for _, p := range pairs {
			if NormalizeKey(p[0]) != NormalizeKey(p[1]) {
				t.Errorf("NormalizeKey(%q) = %q, NormalizeKey(%q) = %q; want equal",
					p[0], NormalizeKey(p[0]), p[1], NormalizeKey(p[1]))
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, s := range []string{"唐 僧", "Sun-Wukong", "  spaced  out  "} {
			once := NormalizeKey(s)
			if NormalizeKey(once) != once {
				t.Errorf("NormalizeKey not idempotent for %q", s)
			}
		}
	})
}

func TestMergeCharacter(t *testing.T) {
	t.Run("same key never produces two records", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeCharacter(types.CharacterCandidate{GroupName: "唐僧", Name: "三 藏"})
		acc.MergeCharacter(types.CharacterCandidate{GroupName: "唐 僧", Name: "三藏"})
		if n, _ := acc.Len(); n != 1 {
			t.Fatalf("expected 1 character, got %d", n)
		}
	})

	t.Run("alias sets union", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeCharacter(types.CharacterCandidate{
			GroupName: "唐僧", Name: "三藏", Aliases: []string{"唐僧", "大唐和尚"},
		})
		acc.MergeCharacter(types.CharacterCandidate{
			GroupName: "唐僧", Name: "三藏", Aliases: []string{"大唐和尚", "金蝉子"},
		})
		chars := acc.Characters()
		if len(chars) != 1 {
			t.Fatalf("expected 1 character, got %d", len(chars))
		}
		want := []string{"唐僧", "大唐和尚", "金蝉子"}
		got := chars[0].Aliases
		if len(got) != len(want) {
			t.Fatalf("aliases = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("aliases[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("scalars not overwritten by later segments", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeCharacter(types.CharacterCandidate{
			GroupName: "悟空", Name: "孙悟空", Description: "石猴", Age: "500",
		})
		acc.MergeCharacter(types.CharacterCandidate{
			GroupName: "悟空", Name: "孙悟空", Description: "行者", Age: "501",
		})
		c := acc.Characters()[0]
		if c.Description != "石猴" {
			t.Errorf("description overwritten: got %q", c.Description)
		}
		if c.Age != "500" {
			t.Errorf("age overwritten: got %q", c.Age)
		}
	})

	t.Run("weapon and clothing lists concatenate with duplicates", func(t *testing.T) {
		acc := NewAccumulator()
		staff := types.Weapon{Name: "金箍棒"}
		acc.MergeCharacter(types.CharacterCandidate{
			GroupName: "悟空", Name: "孙悟空", Weapons: []types.Weapon{staff},
		})
		acc.MergeCharacter(types.CharacterCandidate{
			GroupName: "悟空", Name: "孙悟空",
			Weapons:        []types.Weapon{staff},
			ClothingStyles: []types.ClothingStyle{{Phase: "旅途", Description: "虎皮裙"}},
		})
		c := acc.Characters()[0]
		if len(c.Weapons) != 2 {
			t.Errorf("expected 2 weapon entries (duplicates kept), got %d", len(c.Weapons))
		}
		if len(c.ClothingStyles) != 1 {
			t.Errorf("expected 1 clothing entry, got %d", len(c.ClothingStyles))
		}
	})

	t.Run("missing group falls back to name", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeCharacter(types.CharacterCandidate{Name: "八戒"})
		c := acc.Characters()[0]
		if c.GroupName != "八戒" || c.Name != "八戒" {
			t.Errorf("fallback identity = (%q, %q), want (八戒, 八戒)", c.GroupName, c.Name)
		}
	})

	t.Run("candidate with no identity dropped", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeCharacter(types.CharacterCandidate{Description: "nameless"})
		if n, _ := acc.Len(); n != 0 {
			t.Errorf("expected 0 characters, got %d", n)
		}
	})

	t.Run("fresh id assigned on insert", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeCharacter(types.CharacterCandidate{GroupName: "悟空", Name: "孙悟空"})
		acc.MergeCharacter(types.CharacterCandidate{GroupName: "八戒", Name: "猪八戒"})
		chars := acc.Characters()
		if chars[0].ID == "" || chars[1].ID == "" || chars[0].ID == chars[1].ID {
			t.Errorf("expected distinct non-empty ids, got %q and %q", chars[0].ID, chars[1].ID)
		}
	})
}

func TestMergeScene(t *testing.T) {
	t.Run("frequency accumulates contributed counts", func(t *testing.T) {
		acc := NewAccumulator()
		for _, count := range []int{1, 1, 3} {
			acc.MergeScene(types.SceneCandidate{GroupName: "花果山", Name: "水帘洞", Count: count})
		}
		scenes := acc.Scenes()
		if len(scenes) != 1 {
			t.Fatalf("expected 1 scene, got %d", len(scenes))
		}
		if scenes[0].Frequency != 5 {
			t.Errorf("frequency = %d, want 5", scenes[0].Frequency)
		}
	})

	t.Run("zero count defaults to 1", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeScene(types.SceneCandidate{GroupName: "花果山", Name: "水帘洞"})
		acc.MergeScene(types.SceneCandidate{GroupName: "花果山", Name: "水帘洞"})
		if f := acc.Scenes()[0].Frequency; f != 2 {
			t.Errorf("frequency = %d, want 2", f)
		}
	})

	t.Run("first-seen description and aliases retained", func(t *testing.T) {
		acc := NewAccumulator()
		acc.MergeScene(types.SceneCandidate{
			GroupName: "花果山", Name: "水帘洞", Description: "瀑布后的洞府", Aliases: []string{"洞府"},
		})
		acc.MergeScene(types.SceneCandidate{
			GroupName: "花果山", Name: "水帘洞", Description: "猴群巢穴", Aliases: []string{"猴窝"},
		})
		s := acc.Scenes()[0]
		if s.Description != "瀑布后的洞府" {
			t.Errorf("description overwritten: got %q", s.Description)
		}
		if len(s.Aliases) != 1 || s.Aliases[0] != "洞府" {
			t.Errorf("aliases changed on merge: got %v", s.Aliases)
		}
	})
}

func TestEnrichCharacter(t *testing.T) {
	acc := NewAccumulator()
	acc.MergeCharacter(types.CharacterCandidate{
		GroupName: "悟空", Name: "孙悟空", Description: "石猴",
	})
	acc.EnrichCharacter(types.CharacterCandidate{
		GroupName: "悟空", Name: "孙悟空", Description: "齐天大圣，火眼金睛", Role: "primary",
	})
	c := acc.Characters()[0]
	if c.Description != "齐天大圣，火眼金睛" {
		t.Errorf("enrichment did not overwrite description: got %q", c.Description)
	}
	if c.Role != types.RolePrimary {
		t.Errorf("enrichment did not set role: got %q", c.Role)
	}
}
