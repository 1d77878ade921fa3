package credentials

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig maps the well-known environment variables. Values are not marked
// required so that absence surfaces as our own sentinel errors instead of a
// parser error.
type envConfig struct {
	AppID  string `env:"ALGOLIA_APPLICATION_ID"`
	APIKey string `env:"ALGOLIA_API_KEY"`
}

// EnvProvider resolves credentials from the process environment exactly once
// and serves the cached copy on subsequent calls. Safe for concurrent use.
type EnvProvider struct {
	once  sync.Once
	creds Credentials
	err   error
}

// FromEnv creates a provider backed by ALGOLIA_APPLICATION_ID and
// ALGOLIA_API_KEY. A .env file in the working directory is loaded first if
// present; a missing file is not an error.
func FromEnv() *EnvProvider {
	return &EnvProvider{}
}

func (p *EnvProvider) Current() (Credentials, error) {
	p.once.Do(func() {
		_ = godotenv.Load()

		var cfg envConfig
		if err := env.Parse(&cfg); err != nil {
			p.err = errors.Join(ErrParsingEnv, err)
			return
		}
		p.creds = Credentials{AppID: cfg.AppID, APIKey: cfg.APIKey}
	})
	if p.err != nil {
		return Credentials{}, p.err
	}
	if err := p.creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return p.creds, nil
}
