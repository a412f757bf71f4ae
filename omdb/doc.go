// Package omdb provides a client for the OMDb movie metadata API.
//
// The client issues a single GET per title lookup and classifies the
// outcome. It never retries. A lookup either returns the decoded body as a
// movie.RawResponse or one of the errors below.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := omdb.NewClient(
//		"http://www.omdbapi.com",
//		"your-api-key",
//		logger,
//		omdb.WithTimeout(5*time.Second),
//		omdb.WithPlot(omdb.PlotFull),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	raw, err := client.Lookup(ctx, "Inception")
//
// # Error Handling
//
//   - ErrInvalidConfig: missing URL or API key
//   - ErrTimeout: the request did not finish within the configured timeout
//   - ErrTransport: the request could not be sent or the body not read
//   - ErrMalformedBody: status 200 with a body that is not a JSON object
//   - APIError: any status other than 200
//
// Callers that only need to know "did it fail" can treat every error the
// same way; the view shows one error banner for all of them.
package omdb
