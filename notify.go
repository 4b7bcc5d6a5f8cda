package main

type Notifier interface {
	NotifySyncResults(SyncConfig, *SyncResult) error
}
