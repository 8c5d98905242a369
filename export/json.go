package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/examtable/model"
)

// WriteJSON writes rows as an indented JSON array. Greek text is written
// as is rather than as \u escapes.
func WriteJSON(w io.Writer, rows []model.Row) error {
	if rows == nil {
		rows = []model.Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
