package movie

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ettle/strcase"
)

// envelope keys describe the API reply rather than the movie and never
// reach the view.
var envelopeKeys = map[string]bool{
	FieldResponse: true,
	"error":       true,
}

// Normalize classifies raw and, for a found movie, builds the view record.
func Normalize(raw RawResponse) Result {
	resp, _ := raw["Response"].(string)

	switch resp {
	case "True":
		return Result{Outcome: OutcomeFound, Movie: transform(raw)}
	case "False":
		msg, _ := raw["Error"].(string)
		return Result{Outcome: OutcomeNotFound, Message: msg}
	}

	if _, ok := raw["Response"]; !ok {
		return Result{Outcome: OutcomeMalformed, Message: "response field missing"}
	}
	return Result{Outcome: OutcomeMalformed, Message: fmt.Sprintf("unrecognised response value %q", display(raw["Response"]))}
}

func transform(raw RawResponse) Movie {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	// Sorted so colliding keys resolve the same way every time.
	sort.Strings(keys)

	m := make(Movie, len(raw))
	for _, k := range keys {
		// Upper-case runs are one word: imdbID -> imdbId, DVD -> dvd.
		field := strcase.ToCamel(k)
		if field == "" || envelopeKeys[field] {
			continue
		}
		value := display(raw[k])
		if value == NotAvailable {
			value = ""
		}
		m[field] = value
	}

	// "N/A" has already been cleared to "".
	if id := m[FieldIMDbID]; id != "" {
		m[FieldIMDbID] = IMDbTitleURL + id
	}

	return m
}

// display flattens a decoded JSON value into a display string.
func display(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := display(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		// Ratings entries: {"Source": "...", "Value": "..."}
		source, _ := val["Source"].(string)
		value, _ := val["Value"].(string)
		if source != "" || value != "" {
			return fmt.Sprintf("%s: %s", source, value)
		}
		return ""
	default:
		return fmt.Sprint(val)
	}
}
