package export

import (
	"encoding/json/v2"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchboardapp/matchboard-server/internal/domain"
	"github.com/matchboardapp/matchboard-server/internal/store"
)

func TestJSONFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "matchboard-export-2026-08-30.json", JSONFilename(now))
}

func TestPDFFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "matchboard-roster-2026-08-30.pdf", PDFFilename(now))
}

func TestJSON_RoundTrips(t *testing.T) {
	data := store.Seed()

	out, err := JSON(data)
	require.NoError(t, err)

	var got domain.AppData
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Len(t, got.Candidates, 2)
	assert.Len(t, got.Tags, 5)
	assert.Equal(t, "Sarah Jenkins", got.Candidates[0].Name)
}

func TestJSON_UsesWireFieldNames(t *testing.T) {
	out, err := JSON(store.Seed())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"notesSummary"`)
	assert.Contains(t, s, `"createdAt"`)
	assert.NotContains(t, s, `"NotesSummary"`)
}

func TestPDF_RendersSeed(t *testing.T) {
	out, err := PDF(store.Seed(), time.Now())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDF_PaginatesLargeRoster(t *testing.T) {
	data := domain.AppData{
		Notes:        []domain.Note{},
		Interactions: []domain.Interaction{},
		Tags:         []domain.Tag{},
	}
	for i := 0; i < 200; i++ {
		data.Candidates = append(data.Candidates, domain.Candidate{
			ID:           store.Seed().Candidates[0].ID,
			Name:         "Candidate With A Rather Long Name",
			Age:          30,
			City:         "Munich",
			Job:          "Engineer",
			Status:       domain.StatusNew,
			NotesSummary: "A notes summary long enough to exercise the cell truncation path in the renderer.",
		})
	}

	small, err := PDF(store.Seed(), time.Now())
	require.NoError(t, err)
	large, err := PDF(data, time.Now())
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}

func TestPDF_EmptyRoster(t *testing.T) {
	out, err := PDF(domain.AppData{}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTruncate_KeepsRunesIntact(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 9)

	long := strings.Repeat("Jürgen Müßig-Schäfer ", 10)
	got := truncate(pdf, long, 45)

	assert.True(t, utf8.ValidString(got), "truncation must never split a rune")
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Less(t, pdf.GetStringWidth(got), 45.0)
}

func TestTruncate_ShortValueUntouched(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 9)

	assert.Equal(t, "Sarah", truncate(pdf, "Sarah", 45))
}
