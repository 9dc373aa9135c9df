package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
)

type MockCollection struct {
	mock.Mock
}

func (m *MockCollection) Get(ctx context.Context, id string) (map[string]any, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockCollection) Set(ctx context.Context, id string, data map[string]any) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *MockCollection) Add(ctx context.Context, data map[string]any) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockCollection) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollection) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docstore.Document), args.Error(1)
}
