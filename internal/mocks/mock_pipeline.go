package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfharvest/internal/core/domain"
)

// MockScraper is a mock implementation of ports.Scraper
type MockScraper struct {
	mock.Mock
}

func (m *MockScraper) PDFLinks(ctx context.Context, pageURL string) ([]string, error) {
	args := m.Called(ctx, pageURL)

	var links []string
	if args.Get(0) != nil {
		links = args.Get(0).([]string)
	}
	return links, args.Error(1)
}

// MockFileManager is a mock implementation of ports.FileManager
type MockFileManager struct {
	mock.Mock
}

func (m *MockFileManager) SaveFile(ctx context.Context, fileURL string) (string, error) {
	args := m.Called(ctx, fileURL)
	return args.String(0), args.Error(1)
}

// MockCompressor is a mock implementation of ports.Compressor
type MockCompressor struct {
	mock.Mock
}

func (m *MockCompressor) CreateZip(ctx context.Context, archiveName, extension string) (*domain.Archive, error) {
	args := m.Called(ctx, archiveName, extension)

	var archive *domain.Archive
	if args.Get(0) != nil {
		archive = args.Get(0).(*domain.Archive)
	}
	return archive, args.Error(1)
}

// MockRemover is a mock implementation of ports.Remover
type MockRemover struct {
	mock.Mock
}

func (m *MockRemover) Remove(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
