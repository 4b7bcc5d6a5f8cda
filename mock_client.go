package main

type MockBucketClient struct {
	PutRequests    []PutRequest
	CopyRequests   []MockRequest
	DeleteRequests []MockRequest
	mockList       map[string]ObjectInfo
	ListErr        error
	PutErr         error
	DeleteErr      error
}

type MockRequest struct {
	SourceBucket string
	DestBucket   string
	Key          string
}

func NewMockClient(mocked map[string]ObjectInfo) *MockBucketClient {
	return &MockBucketClient{
		PutRequests:    make([]PutRequest, 0),
		CopyRequests:   make([]MockRequest, 0),
		DeleteRequests: make([]MockRequest, 0),
		mockList:       mocked,
	}
}

func (s *MockBucketClient) ListObjects(string) (map[string]ObjectInfo, error) {
	return s.mockList, s.ListErr
}

func (s *MockBucketClient) PutObject(req PutRequest) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.PutRequests = append(s.PutRequests, req)
	return nil
}

func (s *MockBucketClient) CopyObject(sourceBucket string, destinationBucket string, key string) error {
	request := MockRequest{SourceBucket: sourceBucket, DestBucket: destinationBucket, Key: key}
	s.CopyRequests = append(s.CopyRequests, request)
	return nil
}

func (s *MockBucketClient) DeleteObject(bucket string, key string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	request := MockRequest{DestBucket: bucket, Key: key}
	s.DeleteRequests = append(s.DeleteRequests, request)
	return nil
}
