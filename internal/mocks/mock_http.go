package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockHTTPClient is a mock implementation of ports.HTTPClient
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) FetchHTML(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}

// MockDownloader is a mock implementation of ports.Downloader
type MockDownloader struct {
	mock.Mock
}

func (m *MockDownloader) Download(ctx context.Context, fileURL string) ([]byte, error) {
	args := m.Called(ctx, fileURL)

	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}

// MockSaver is a mock implementation of ports.Saver
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}
