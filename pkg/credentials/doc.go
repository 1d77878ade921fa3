// Package credentials resolves the application id and admin API key the
// transport needs to authenticate against the search service.
//
// Credentials are modeled as a small value type behind a Provider interface
// so the transport can re-read them on every attempt. Key rotation between
// retries is therefore honored without any coordination: swap what the
// provider returns and the next attempt picks it up.
//
// Two providers are included:
//
//   - Static wraps fixed values, for programmatic configuration.
//   - FromEnv reads ALGOLIA_APPLICATION_ID and ALGOLIA_API_KEY (loading a
//     .env file if one exists) and caches the parsed result for the lifetime
//     of the process.
//
// Missing values surface as ErrMissingAppID or ErrMissingAPIKey before any
// network activity takes place; compare with errors.Is.
//
// Example:
//
//	provider := credentials.FromEnv()
//	creds, err := provider.Current()
//	if errors.Is(err, credentials.ErrMissingAPIKey) {
//	    // fail startup, not the request
//	}
package credentials
