package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-o", "-k", "-t", "-u", "-p", "-b", "-g", "-e", "-x", "-w", "-i", "-m"}

// parseFlags overlays Config with command-line flags.
//
//	-d string   database driver: "pgx" or "sqlite"
//	-s string   database DSN
//	-o string   record collection
//	-k string   session signing key
//	-t int      session validity, minutes
//	-u string   S3 user
//	-p string   S3 password
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-x string   blob key prefix
//	-w string   public base URL for blobs
//	-i string   cat API URL
//	-m int      HTTP timeout, seconds
//
// Unknown arguments are filtered out first; a bad value panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "d", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "s", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Collection, "o", config.Collection, "record collection ("+common.CollectionUsers+" or "+common.CollectionCats+")")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "session signing key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.BlobPrefix, "x", config.BlobPrefix, "blob key prefix")
	fs.StringVar(&config.PublicBaseURL, "w", config.PublicBaseURL, "public base URL for blobs")
	fs.StringVar(&config.CatAPIURL, "i", config.CatAPIURL, "cat image API URL")

	httpTimeout := fs.Int("m", int(config.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
	config.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
