package store

import (
	"encoding/json/v2"
	"time"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// Sanitize turns a raw persisted blob into a well-formed snapshot.
//
// It is the single point where malformed input is neutralized: an
// absent or unparseable blob yields the first-run seed; a blob from an
// older schema version is projected field by field with safe defaults.
// The relaxed two-step parse (generic value first, then typed
// projection) is deliberate — a strict typed decode would reject
// legacy records outright instead of backfilling them.
//
// Sanitize is pure: it never fails, never mutates its input, and
// running it on its own output is a no-op.
func Sanitize(raw []byte) domain.AppData {
	if len(raw) == 0 {
		return Seed()
	}

	var blob any
	if err := json.Unmarshal(raw, &blob); err != nil {
		return Seed()
	}

	obj, ok := blob.(map[string]any)
	if !ok {
		// Parseable but not an object: every collection defaults to empty.
		obj = map[string]any{}
	}

	data := domain.AppData{
		Candidates:   sanitizeCandidates(obj["candidates"]),
		Notes:        sanitizeNotes(obj["notes"]),
		Interactions: sanitizeInteractions(obj["interactions"]),
		Tags:         sanitizeTags(obj["tags"]),
	}
	return data
}

func sanitizeCandidates(v any) []domain.Candidate {
	items, ok := v.([]any)
	if !ok {
		return []domain.Candidate{}
	}

	out := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		c := domain.Candidate{
			ID:           asString(obj["id"]),
			Name:         asString(obj["name"]),
			Age:          asNonNegativeInt(obj["age"]),
			Gender:       asString(obj["gender"]),
			City:         asString(obj["city"]),
			Job:          asString(obj["job"]),
			Avatar:       asString(obj["avatar"]),
			NotesSummary: asString(obj["notesSummary"]),
			Tags:         sanitizeTags(obj["tags"]),
			CreatedAt:    asTime(obj["createdAt"]),
			UpdatedAt:    asTime(obj["updatedAt"]),
		}

		// Unknown statuses collapse to "new" rather than being dropped.
		c.Status, _ = domain.ParseStatus(asString(obj["status"]))

		// updatedAt may never precede createdAt.
		if c.UpdatedAt.Before(c.CreatedAt) {
			c.UpdatedAt = c.CreatedAt
		}

		out = append(out, c)
	}
	return out
}

func sanitizeNotes(v any) []domain.Note {
	items, ok := v.([]any)
	if !ok {
		return []domain.Note{}
	}

	out := make([]domain.Note, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.Note{
			ID:          asString(obj["id"]),
			CandidateID: asString(obj["candidateId"]),
			Content:     asString(obj["content"]),
			CreatedAt:   asTime(obj["createdAt"]),
		})
	}
	return out
}

func sanitizeInteractions(v any) []domain.Interaction {
	items, ok := v.([]any)
	if !ok {
		return []domain.Interaction{}
	}

	out := make([]domain.Interaction, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		in := domain.Interaction{
			ID:          asString(obj["id"]),
			CandidateID: asString(obj["candidateId"]),
			Summary:     asString(obj["summary"]),
			Date:        asTime(obj["date"]),
		}
		in.Type, _ = domain.ParseInteractionType(asString(obj["type"]))
		out = append(out, in)
	}
	return out
}

func sanitizeTags(v any) []domain.Tag {
	items, ok := v.([]any)
	if !ok {
		return []domain.Tag{}
	}

	out := make([]domain.Tag, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.Tag{
			ID:    asString(obj["id"]),
			Label: asString(obj["label"]),
			Color: asString(obj["color"]),
		})
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNonNegativeInt(v any) int {
	f, ok := v.(float64)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

// asTime parses an RFC 3339 timestamp. Anything else becomes the zero
// time, which round-trips stably through JSON so repeated sanitization
// stays idempotent.
func asTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
