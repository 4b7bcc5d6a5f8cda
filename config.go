package main

import (
	"fmt"
	"os"

	"github.com/jinzhu/configor"
)

type AppConfig struct {
	Provider        string `default:"aws"`
	Region          string
	Profile         string
	Bucket          string
	SourceFolder    string
	DeleteStale     bool
	Force           bool
	MaxAge          int
	Exclude         []string
	TombstoneBucket string
	SnapshotBucket  string
	Interval        int
	SNSTopic        string
}

// LoadAppConfig reads an optional config file, then lets explicit flag values
// override whatever the file provided.
func LoadAppConfig(configFilePath string, flagConfig AppConfig, flagWasSet func(string) bool) (AppConfig, error) {
	var appConfig AppConfig
	appConfig.Provider = "aws"

	if configFilePath != "" {
		if _, statErr := os.Stat(configFilePath); statErr != nil {
			return appConfig, fmt.Errorf("Config file %s does not exist", configFilePath)
		}
		if configErr := configor.Load(&appConfig, configFilePath); configErr != nil {
			return appConfig, fmt.Errorf("Error loading config file %s: %s", configFilePath, configErr)
		}
	}

	if flagWasSet("provider") {
		appConfig.Provider = flagConfig.Provider
	}
	if flagWasSet("region") {
		appConfig.Region = flagConfig.Region
	}
	if flagWasSet("profile") {
		appConfig.Profile = flagConfig.Profile
	}
	if flagWasSet("bucket") {
		appConfig.Bucket = flagConfig.Bucket
	}
	if flagWasSet("files") {
		appConfig.SourceFolder = flagConfig.SourceFolder
	}
	if flagWasSet("delete-stale") {
		appConfig.DeleteStale = flagConfig.DeleteStale
	}
	if flagWasSet("force") {
		appConfig.Force = flagConfig.Force
	}
	if flagWasSet("max-age") {
		appConfig.MaxAge = flagConfig.MaxAge
	}
	if flagWasSet("exclude") {
		appConfig.Exclude = flagConfig.Exclude
	}
	if flagWasSet("tombstone-bucket") {
		appConfig.TombstoneBucket = flagConfig.TombstoneBucket
	}
	if flagWasSet("snapshot-bucket") {
		appConfig.SnapshotBucket = flagConfig.SnapshotBucket
	}
	if flagWasSet("interval") {
		appConfig.Interval = flagConfig.Interval
	}
	if flagWasSet("sns-topic") {
		appConfig.SNSTopic = flagConfig.SNSTopic
	}

	return appConfig, nil
}

// Validate runs before any network call so bad invocations fail fast.
func (c AppConfig) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("Required flag --bucket not set")
	}
	if c.Provider == "aws" && c.Region == "" {
		return fmt.Errorf("Required flag --region not set")
	}
	if c.SourceFolder == "" {
		return fmt.Errorf("Required flag --files not set")
	}
	stat, statErr := os.Stat(c.SourceFolder)
	if statErr != nil {
		return fmt.Errorf("Files directory %s does not exist", c.SourceFolder)
	}
	if !stat.IsDir() {
		return fmt.Errorf("Files path %s is not a directory", c.SourceFolder)
	}

	return nil
}

func (c AppConfig) ClientFromConfig() (BucketClient, error) {
	switch c.Provider {
	case "aws":
		return NewS3BucketClient(c)
	case "gcs":
		return NewGCSBucketClient()
	default:
		return nil, fmt.Errorf("Unknown cloud provider: %s", c.Provider)
	}
}

func (c AppConfig) SyncConfig() SyncConfig {
	return SyncConfig{
		SourceFolder:      c.SourceFolder,
		DestinationBucket: c.Bucket,
		TombstoneBucket:   c.TombstoneBucket,
		DeleteStale:       c.DeleteStale,
		Force:             c.Force,
		MaxAge:            c.MaxAge,
		Exclude:           c.Exclude,
	}
}
