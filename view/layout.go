package view

import "github.com/s0up4200/moviepeek/movie"

// Kind is the render instruction for an element.
type Kind int

const (
	// KindText sets the element's displayed text, "-" when empty
	KindText Kind = iota
	// KindLink sets the element's href
	KindLink
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	if k == KindLink {
		return "link"
	}
	return "text"
}

// Placeholder is shown for text elements with no value.
const Placeholder = "-"

// Element is one leaf of the movie region.
type Element struct {
	ID       string
	Label    string
	Kind     Kind
	Extended bool // only shown while the extended region is visible
}

// Layout is the fixed element set of the movie region. The poster image
// is kept apart from the leaf elements because it gates population.
type Layout struct {
	Image    string
	Elements []Element
}

// DefaultLayout returns the element set for OMDb movie records.
func DefaultLayout() Layout {
	return Layout{
		Image: movie.FieldPoster,
		Elements: []Element{
			{ID: movie.FieldTitle, Label: "Title"},
			{ID: movie.FieldYear, Label: "Year"},
			{ID: movie.FieldRated, Label: "Rated"},
			{ID: movie.FieldRuntime, Label: "Runtime"},
			{ID: movie.FieldGenre, Label: "Genre"},
			{ID: movie.FieldDirector, Label: "Director"},
			{ID: movie.FieldActors, Label: "Actors"},
			{ID: movie.FieldIMDbRating, Label: "IMDb Rating"},
			{ID: movie.FieldPlot, Label: "Plot"},
			{ID: movie.FieldIMDbID, Label: "IMDb", Kind: KindLink},
			{ID: movie.FieldReleased, Label: "Released", Extended: true},
			{ID: movie.FieldWriter, Label: "Writer", Extended: true},
			{ID: movie.FieldLanguage, Label: "Language", Extended: true},
			{ID: movie.FieldCountry, Label: "Country", Extended: true},
			{ID: movie.FieldAwards, Label: "Awards", Extended: true},
			{ID: movie.FieldRatings, Label: "Ratings", Extended: true},
			{ID: movie.FieldMetascore, Label: "Metascore", Extended: true},
			{ID: movie.FieldIMDbVotes, Label: "IMDb Votes", Extended: true},
			{ID: movie.FieldBoxOffice, Label: "Box Office", Extended: true},
			{ID: movie.FieldProduction, Label: "Production", Extended: true},
			{ID: movie.FieldWebsite, Label: "Website", Kind: KindLink, Extended: true},
		},
	}
}
