// Package export renders the current snapshot into downloadable
// formats: a raw JSON backup and a printable PDF roster.
package export

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"time"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// JSONFilename returns the dated filename for a JSON backup,
// e.g. "matchboard-export-2026-08-30.json".
func JSONFilename(now time.Time) string {
	return fmt.Sprintf("matchboard-export-%s.json", now.Format("2006-01-02"))
}

// JSON renders the snapshot as an indented JSON document. The shape is
// exactly the persisted blob shape, so a backup can be inspected or
// restored by hand.
func JSON(data domain.AppData) ([]byte, error) {
	out, err := json.Marshal(data, jsontext.WithIndent("  "))
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return out, nil
}
