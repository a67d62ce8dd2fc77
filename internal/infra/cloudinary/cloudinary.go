package cloudinary

import (
	"fmt"

	cld "github.com/cloudinary/cloudinary-go/v2"
)

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

func NewClient(cfg Config) (*cld.Cloudinary, error) {
	if cfg.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud name is required")
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary api credentials are required")
	}

	client, err := cld.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}

	return client, nil
}
