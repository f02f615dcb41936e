package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/catboard/internal/flagx"
	"github.com/dmitrijs2005/catboard/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either "90s"-style strings or integer nanoseconds. Keys missing from the
// file leave the corresponding Config field untouched.
type JsonConfig struct {
	DatabaseDriver          *string         `json:"database_driver"`
	DatabaseDSN             *string         `json:"database_dsn"`
	Collection              *string         `json:"collection"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	S3RootUser              *string         `json:"s3_root_user"`
	S3RootPassword          *string         `json:"s3_root_password"`
	S3Bucket                *string         `json:"s3_bucket"`
	S3Region                *string         `json:"s3_region"`
	S3BaseEndpoint          *string         `json:"s3_base_endpoint"`
	BlobPrefix              *string         `json:"blob_prefix"`
	PublicBaseURL           *string         `json:"public_base_url"`
	CatAPIURL               *string         `json:"cat_api_url"`
	HTTPTimeout             *timex.Duration `json:"http_timeout"`
}

// parseJson overlays Config with the file named by -c/-config. No flag means
// nothing to do; an unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.Collection, c.Collection)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.BlobPrefix, c.BlobPrefix)
	setString(&config.PublicBaseURL, c.PublicBaseURL)
	setString(&config.CatAPIURL, c.CatAPIURL)

	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.HTTPTimeout != nil {
		config.HTTPTimeout = c.HTTPTimeout.Duration
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
