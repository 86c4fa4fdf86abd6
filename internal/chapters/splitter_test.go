package chapters

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Run("no headings yields one fallback chapter", func(t *testing.T) {
		got := Split("只是一段没有任何章节标记的普通文字，讲述一只猴子的故事。")
		if len(got) != 1 {
			t.Fatalf("expected 1 chapter, got %d", len(got))
		}
		if got[0].Title != "Full text" {
			t.Errorf("title = %q", got[0].Title)
		}
		if got[0].AnchorLine == "" {
			t.Error("fallback chapter has no anchor line")
		}
	})

	t.Run("splits on chapter headings", func(t *testing.T) {
		text := "第一章 开篇\n" +
			"东胜神洲有一座花果山，山顶一块仙石孕育出一只石猴。\n" +
			"\n" +
			"第二章 风起\n" +
			"石猴拜师学艺，得名孙悟空，习得七十二般变化。\n"

		got := Split(text)
		if len(got) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(got))
		}
		if got[0].Title != "第一章 开篇" {
			t.Errorf("chapter 0 title = %q", got[0].Title)
		}
		if got[1].Title != "第二章 风起" {
			t.Errorf("chapter 1 title = %q", got[1].Title)
		}
		if !strings.Contains(got[0].Summary, "花果山") {
			t.Errorf("chapter 0 summary = %q", got[0].Summary)
		}
		if !strings.Contains(got[1].AnchorLine, "石猴拜师学艺") {
			t.Errorf("chapter 1 anchor = %q", got[1].AnchorLine)
		}
	})

	t.Run("preface before first heading is not its own chapter", func(t *testing.T) {
		text := "序言文字若干。\n第一章 开篇\n正文内容，足够长的一行用于锚点选择。\n"
		got := Split(text)
		if len(got) != 1 {
			t.Fatalf("expected 1 chapter, got %d", len(got))
		}
		if got[0].Title != "第一章 开篇" {
			t.Errorf("title = %q", got[0].Title)
		}
	})

	t.Run("recognizes numeral words and unit variants", func(t *testing.T) {
		text := "第十二回 师徒初会\n一行人在五行山下相遇，从此踏上取经之路。\n" +
			"第一百零三节 路遇妖风\n忽有狂风卷地而起，飞沙走石遮天蔽日。\n"
		got := Split(text)
		if len(got) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(got))
		}
		if got[0].Title != "第十二回 师徒初会" {
			t.Errorf("chapter 0 title = %q", got[0].Title)
		}
	})

	t.Run("indented heading still matches", func(t *testing.T) {
		text := "　　第一章 开篇\n正文内容，足够长的一行用于锚点选择。\n"
		got := Split(text)
		if len(got) != 1 || got[0].Title != "第一章 开篇" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("short lines skipped when picking the anchor", func(t *testing.T) {
		text := "第一章 开篇\n短句。\n这一行足够长，可以作为定位锚点使用了。\n"
		got := Split(text)
		if !strings.HasPrefix(got[0].AnchorLine, "这一行足够长") {
			t.Errorf("anchor = %q", got[0].AnchorLine)
		}
	})

	t.Run("heading-only chapter anchors on its title", func(t *testing.T) {
		text := "第一章 开篇\n第二章 风起\n正文内容，足够长的一行用于锚点选择。\n"
		got := Split(text)
		if len(got) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(got))
		}
		if got[0].AnchorLine != "第一章 开篇" {
			t.Errorf("empty chapter anchor = %q", got[0].AnchorLine)
		}
	})
}
