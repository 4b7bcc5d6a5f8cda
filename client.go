package main

import (
	"time"
)

// ObjectInfo is the slice of remote object metadata the sync cares about.
// Stores report last-modified at second precision, so staleness comparisons
// happen on epoch seconds.
type ObjectInfo struct {
	ModTime time.Time
}

// PutRequest carries everything a single upload needs. ContentType and
// CacheControl are optional; empty means the header is omitted. Every upload
// is published with a public-read ACL, that is not configurable.
type PutRequest struct {
	Bucket       string
	Key          string
	Body         []byte
	ContentType  string
	CacheControl string
}

type BucketClient interface {
	ListObjects(bucket string) (map[string]ObjectInfo, error)
	PutObject(req PutRequest) error
	CopyObject(sourceBucket string, destinationBucket string, key string) error
	DeleteObject(bucket string, key string) error
}
