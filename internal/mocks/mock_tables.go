package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfharvest/internal/core/domain"
)

// MockTableReader is a mock implementation of ports.TableReader
type MockTableReader struct {
	mock.Mock
}

func (m *MockTableReader) ReadTables(ctx context.Context, pdfPath, pages string) ([]domain.Table, error) {
	args := m.Called(ctx, pdfPath, pages)

	var tables []domain.Table
	if args.Get(0) != nil {
		tables = args.Get(0).([]domain.Table)
	}
	return tables, args.Error(1)
}

// MockTableWriter is a mock implementation of ports.TableWriter
type MockTableWriter struct {
	mock.Mock
}

func (m *MockTableWriter) Write(ctx context.Context, path string, table domain.Table) error {
	args := m.Called(ctx, path, table)
	return args.Error(0)
}
