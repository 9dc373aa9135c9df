package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Collection(name string) docstore.Collection {
	args := m.Called(name)
	return args.Get(0).(docstore.Collection)
}

func (m *MockStore) Batch() docstore.WriteBatch {
	args := m.Called()
	return args.Get(0).(docstore.WriteBatch)
}
