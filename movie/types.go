package movie

// NotAvailable is the sentinel the API uses for unknown values.
const NotAvailable = "N/A"

// IMDbTitleURL is the prefix for rewritten IMDb identifiers.
const IMDbTitleURL = "https://www.imdb.com/title/"

// Field identifiers produced by Normalize for the keys OMDb returns.
const (
	FieldTitle      = "title"
	FieldYear       = "year"
	FieldRated      = "rated"
	FieldReleased   = "released"
	FieldRuntime    = "runtime"
	FieldGenre      = "genre"
	FieldDirector   = "director"
	FieldWriter     = "writer"
	FieldActors     = "actors"
	FieldPlot       = "plot"
	FieldLanguage   = "language"
	FieldCountry    = "country"
	FieldAwards     = "awards"
	FieldPoster     = "poster"
	FieldRatings    = "ratings"
	FieldMetascore  = "metascore"
	FieldIMDbRating = "imdbRating"
	FieldIMDbVotes  = "imdbVotes"
	FieldIMDbID     = "imdbId"
	FieldType       = "type"
	FieldDVD        = "dvd"
	FieldBoxOffice  = "boxOffice"
	FieldProduction = "production"
	FieldWebsite    = "website"
	FieldResponse   = "response"
)

// RawResponse is the decoded API body with API-native key names.
type RawResponse map[string]any

// Movie maps field identifiers to display strings.
type Movie map[string]string

// Get returns the value for a field, or "" when absent.
func (m Movie) Get(field string) string {
	return m[field]
}

// Outcome classifies a RawResponse
type Outcome int

const (
	// OutcomeMalformed means the Response field was missing or unrecognised
	OutcomeMalformed Outcome = iota
	// OutcomeFound means the API returned a movie
	OutcomeFound
	// OutcomeNotFound means the API answered Response "False"
	OutcomeNotFound
)

// String returns the string representation of an Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "FOUND"
	case OutcomeNotFound:
		return "NOT_FOUND"
	default:
		return "MALFORMED"
	}
}

// Result is the output of Normalize.
type Result struct {
	Outcome Outcome
	// Movie is only set when Outcome is OutcomeFound.
	Movie Movie
	// Message carries the API "Error" text for NotFound, or a short reason
	// for Malformed.
	Message string
}
