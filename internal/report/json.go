package report

import (
	"encoding/json"

	"devcheck/internal/doctor"
)

// JSON renders the report as a single JSON document.
func JSON(rep doctor.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}
