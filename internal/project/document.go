// Package project persists project documents: the source text plus
// everything the pipeline has produced for it.
package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/dramatis/internal/calllog"
	"github.com/jackzampolin/dramatis/internal/extract"
	"github.com/jackzampolin/dramatis/internal/types"
)

// Document is one persisted project.
type Document struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`

	// FullText is the source document the pipeline reads.
	FullText string `yaml:"full_text" json:"full_text"`

	// Prompt overrides the embedded system prompt when non-empty.
	Prompt string `yaml:"prompt,omitempty" json:"prompt,omitempty"`

	Characters []*types.Character      `yaml:"characters,omitempty" json:"characters,omitempty"`
	Scenes     []*types.Scene          `yaml:"scenes,omitempty" json:"scenes,omitempty"`
	Chapters   []types.ChapterMetadata `yaml:"chapters,omitempty" json:"chapters,omitempty"`
	DebugLog   []calllog.Entry         `yaml:"debug_log,omitempty" json:"debug_log,omitempty"`
}

// NewDocument creates a document with a fresh id.
func NewDocument(name, fullText string) *Document {
	now := time.Now()
	return &Document{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		FullText:  fullText,
	}
}

// ApplyResult merges a finished (or cancelled) extraction run into the
// document, replacing prior entities and appending the run's debug log.
func (d *Document) ApplyResult(res *extract.Result) {
	if res == nil {
		return
	}
	d.Characters = res.Characters
	d.Scenes = res.Scenes
	d.DebugLog = append(d.DebugLog, res.DebugLog...)
	d.UpdatedAt = time.Now()
}

// Summary is a listing row for a document.
type Summary struct {
	ID         string    `yaml:"id" json:"id"`
	Name       string    `yaml:"name" json:"name"`
	UpdatedAt  time.Time `yaml:"updated_at" json:"updated_at"`
	TextChars  int       `yaml:"text_chars" json:"text_chars"`
	Characters int       `yaml:"characters" json:"characters"`
	Scenes     int       `yaml:"scenes" json:"scenes"`
}

// Summarize returns the listing row for this document.
func (d *Document) Summarize() Summary {
	return Summary{
		ID:         d.ID,
		Name:       d.Name,
		UpdatedAt:  d.UpdatedAt,
		TextChars:  len([]rune(d.FullText)),
		Characters: len(d.Characters),
		Scenes:     len(d.Scenes),
	}
}
