package credentials

// Credentials carries the pair of values every request must present to the
// service. The zero value is invalid; Validate reports which half is missing.
type Credentials struct {
	AppID  string
	APIKey string
}

// Validate returns a configuration error if either value is empty.
func (c Credentials) Validate() error {
	if c.AppID == "" {
		return ErrMissingAppID
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Provider yields the credentials to use for the next request attempt.
// Implementations must be safe for concurrent use; the transport calls
// Current once per attempt so rotation mid-retry is picked up.
type Provider interface {
	Current() (Credentials, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() (Credentials, error)

func (f ProviderFunc) Current() (Credentials, error) {
	return f()
}

// StaticProvider returns the same credentials on every call.
type StaticProvider struct {
	creds Credentials
}

// Static creates a provider wrapping fixed credential values.
func Static(appID, apiKey string) StaticProvider {
	return StaticProvider{creds: Credentials{AppID: appID, APIKey: apiKey}}
}

func (p StaticProvider) Current() (Credentials, error) {
	if err := p.creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return p.creds, nil
}
