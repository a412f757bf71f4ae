// Package movie turns raw OMDb payloads into view-ready records.
//
// The OMDb API uses mixed key casing (Title, imdbID, BoxOffice) and the
// literal "N/A" for unknown values. Normalize renames every key to lower
// camel case, clears the sentinel, and rewrites the IMDb identifier into a
// profile URL. Its Result always carries one of three outcomes, so callers
// can switch on it without a fallthrough branch:
//
//	res := movie.Normalize(raw)
//	switch res.Outcome {
//	case movie.OutcomeFound:
//		// res.Movie is populated
//	case movie.OutcomeNotFound:
//		// res.Message holds the API error text
//	case movie.OutcomeMalformed:
//		// Response field missing or unrecognised
//	}
package movie
