package tiktok

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Production v2 endpoints.
const (
	DefaultAuthURL        = "https://www.tiktok.com/v2/auth/authorize/"
	DefaultTokenURL       = "https://open.tiktokapis.com/v2/oauth/token/"
	DefaultCreatorInfoURL = "https://open.tiktokapis.com/v2/post/publish/creator_info/query/"
)

// Endpoints is the set of provider URLs the client talks to. Sandbox or
// staging deployments can override them from a YAML file without a rebuild.
type Endpoints struct {
	AuthURL        string `yaml:"auth_url"`
	TokenURL       string `yaml:"token_url"`
	CreatorInfoURL string `yaml:"creator_info_url"`
}

// DefaultEndpoints returns the production endpoint set.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		AuthURL:        DefaultAuthURL,
		TokenURL:       DefaultTokenURL,
		CreatorInfoURL: DefaultCreatorInfoURL,
	}
}

// LoadEndpoints reads endpoint overrides from a YAML file. An empty path
// returns the defaults; fields absent from the file keep their defaults.
func LoadEndpoints(path string) (Endpoints, error) {
	eps := DefaultEndpoints()
	if path == "" {
		return eps, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Endpoints{}, fmt.Errorf("read endpoints file: %w", err)
	}
	if err := yaml.Unmarshal(data, &eps); err != nil {
		return Endpoints{}, fmt.Errorf("parse endpoints file %s: %w", path, err)
	}
	return eps, nil
}
