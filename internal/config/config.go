// Package config loads runtime settings for catboard.
//
// Sources, later ones winning:
//
//  1. built-in defaults (LoadDefaults),
//  2. an optional JSON file chosen with -c or -config (parseJson),
//  3. command-line flags (parseFlags).
package config

import (
	"time"

	"github.com/dmitrijs2005/catboard/internal/common"
)

// Config holds runtime settings for the catboard client.
//
// Fields:
//   - DatabaseDriver / DatabaseDSN: "pgx" (PostgreSQL) or "sqlite" plus its DSN.
//   - Collection: document collection the record list is bound to ("users" or "cats").
//   - SecretKey: HMAC secret used to sign session tokens (HS256).
//   - SessionValidityDuration: lifetime of a signed-in session.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: blob store.
//   - BlobPrefix: key prefix enumerated at mount and used for uploads.
//   - PublicBaseURL: when set, blob URLs are "<PublicBaseURL>/<bucket>/<key>";
//     otherwise presigned GET URLs are handed out.
//   - CatAPIURL / HTTPTimeout: random image endpoint and its request timeout.
type Config struct {
	DatabaseDriver          string
	DatabaseDSN             string
	Collection              string
	SecretKey               string
	SessionValidityDuration time.Duration
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
	BlobPrefix              string
	PublicBaseURL           string
	CatAPIURL               string
	HTTPTimeout             time.Duration
}

// LoadDefaults populates Config with development defaults (local SQLite file,
// local MinIO). They are not meant for production.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:catboard.db?_pragma=busy_timeout(5000)"
	c.Collection = common.CollectionUsers
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 60 * time.Minute
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "catboard"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.BlobPrefix = common.DefaultBlobPrefix
	c.PublicBaseURL = ""
	c.CatAPIURL = "https://api.thecatapi.com/v1/images/search"
	c.HTTPTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
