// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/optional"
)

// note is a minimal content kind exercising every generic code path.
type note struct {
	content.Record
	TitleEN  string     `json:"title_en"`
	TitleID  string     `json:"title_id"`
	BodyEN   string     `json:"body_en"`
	BodyID   string     `json:"body_id"`
	Rank     int        `json:"rank"`
	Live     bool       `json:"live"`
	Tags     []string   `json:"tags"`
	ClosedAt *time.Time `json:"closed_at"`
}

func (n *note) Translation(field string) (any, any, bool) {
	switch field {
	case "title":
		return n.TitleEN, n.TitleID, true
	case "body":
		return n.BodyEN, n.BodyID, true
	}
	return nil, nil, false
}

func (n *note) Visible() bool { return n.Live }

func (n *note) Attributes() map[string]any {
	return map[string]any{"rank": n.Rank, "tags": n.Tags}
}

func (n *note) Validate(v *validate.Validator) {
	v.Required("title_en", n.TitleEN).Required("title_id", n.TitleID)
	v.Min("rank", n.Rank, 0)
}

type notePatch struct {
	TitleEN optional.Value[string] `json:"title_en"`
	TitleID optional.Value[string] `json:"title_id"`
	Slug    optional.Value[string] `json:"slug"`
	Rank    optional.Value[int]    `json:"rank"`
	Live    optional.Value[bool]   `json:"live"`
}

func (patch *notePatch) ApplyTo(n *note) error {
	err := content.RejectNulls(
		content.NotNull("title_en", patch.TitleEN),
		content.NotNull("title_id", patch.TitleID),
		content.NotNull(content.FieldSlug, patch.Slug),
		content.NotNull("rank", patch.Rank),
		content.NotNull("live", patch.Live),
	)
	if err != nil {
		return err
	}

	patch.TitleEN.Apply(&n.TitleEN)
	patch.TitleID.Apply(&n.TitleID)
	patch.Slug.Apply(&n.Slug)
	patch.Rank.Apply(&n.Rank)
	patch.Live.Apply(&n.Live)
	return nil
}

func noteSchema(order content.Order) content.Schema[*note] {
	return content.Schema[*note]{
		Resource:   "Note",
		Table:      "notes",
		Columns:    []string{"title_en", "title_id", "slug", "body_en", "body_id", "rank", "live", "tags", "closed_at"},
		Visibility: "live",
		Order:      order,
		Bilingual:  []string{"title", "body"},
		Body:       []string{"body"},
		SlugSource: "title",
		New:        func() *note { return &note{} },
		Values: func(n *note) []any {
			return []any{n.TitleEN, n.TitleID, n.Slug, n.BodyEN, n.BodyID, n.Rank, n.Live, n.Tags, n.ClosedAt}
		},
		Targets: func(n *note) []any {
			return []any{&n.TitleEN, &n.TitleID, &n.Slug, &n.BodyEN, &n.BodyID, &n.Rank, &n.Live, &n.Tags, &n.ClosedAt}
		},
	}
}

func newNoteService(order content.Order) (*content.Service[*note], *content.MemoryRepository[*note]) {
	schema := noteSchema(order)
	repo := content.NewMemoryRepository(schema)
	return content.NewService(schema, repo, discardLogger()), repo
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func liveNote(slug string, rank int) *note {
	return &note{
		Record:  content.Record{Slug: slug},
		TitleEN: "Title " + slug, TitleID: "Judul " + slug,
		BodyEN: "Body", BodyID: "Isi",
		Rank: rank, Live: true,
	}
}
