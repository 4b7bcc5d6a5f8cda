package main

import (
	"os"
	"sync"

	"github.com/spf13/cobra"
)

var (
	configFilePath string
	flagConfig     AppConfig
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitesync",
		Short: "One-way sync of a local directory into an object store bucket",
		Long: `sitesync mirrors a local file tree into a remote bucket for static site
publishing: unchanged files are skipped, content types are inferred from
extensions, trailing .html is stripped from keys for extensionless URLs, and
remote objects with no local counterpart can be pruned after per-key
confirmation.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&flagConfig.Bucket, "bucket", "", "Destination bucket name")
	flags.StringVar(&flagConfig.Region, "region", "", "Bucket region")
	flags.StringVar(&flagConfig.SourceFolder, "files", "", "Directory to publish")
	flags.BoolVar(&flagConfig.DeleteStale, "delete-stale", false, "Offer to delete remote objects with no local file")
	flags.BoolVar(&flagConfig.Force, "force", false, "Upload every file regardless of timestamps")
	flags.IntVar(&flagConfig.MaxAge, "max-age", 0, "Cache-Control max-age in seconds for uploaded objects")
	flags.StringSliceVar(&flagConfig.Exclude, "exclude", nil, "Exclude patterns relative to --files (multiple allowed)")
	flags.StringVar(&flagConfig.Provider, "provider", "aws", "Object store provider (aws or gcs)")
	flags.StringVar(&flagConfig.Profile, "profile", "", "AWS shared config profile")
	flags.StringVar(&flagConfig.TombstoneBucket, "tombstone-bucket", "", "Copy confirmed stale objects here before deleting")
	flags.StringVar(&flagConfig.SnapshotBucket, "snapshot-bucket", "", "Upload a tar.gz snapshot of the directory before syncing")
	flags.IntVar(&flagConfig.Interval, "interval", 0, "Rerun the sync every N seconds instead of once")
	flags.StringVar(&flagConfig.SNSTopic, "sns-topic", "", "SNS topic ARN for run summaries")
	flags.StringVar(&configFilePath, "config", "", "Configuration file providing flag defaults")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	appConfig, configErr := LoadAppConfig(configFilePath, flagConfig, cmd.Flags().Changed)
	if configErr != nil {
		return configErr
	}
	if validateErr := appConfig.Validate(); validateErr != nil {
		return validateErr
	}

	client, clientErr := appConfig.ClientFromConfig()
	if clientErr != nil {
		return clientErr
	}

	var notifier Notifier
	if appConfig.SNSTopic != "" {
		snsNotifier, notifierErr := NewSNSNotifier(appConfig)
		if notifierErr != nil {
			return notifierErr
		}
		notifier = snsNotifier
	}

	if appConfig.SnapshotBucket != "" {
		if snapshotErr := uploadSnapshot(client, appConfig); snapshotErr != nil {
			return snapshotErr
		}
	}

	if appConfig.Interval > 0 {
		return runScheduled(client, appConfig, notifier)
	}

	lock := new(sync.Mutex)
	_, syncErr := doSync(client, appConfig.SyncConfig(), notifier, lock)

	return syncErr
}
