package pets

import (
	"context"
	"errors"
	"sync/atomic"
)

// Compile-time check to ensure MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// MockRepository is a func-field mock of the store contract.
type MockRepository struct {
	InsertFunc           func(ctx context.Context, p Pet) (Pet, error)
	GetByIDFunc          func(ctx context.Context, id int) (Pet, error)
	ListByOwnerEmailFunc func(ctx context.Context, ownerEmail string) ([]Pet, error)
	ExistsByIDFunc       func(ctx context.Context, id int) (bool, error)
	DeleteByIDFunc       func(ctx context.Context, id int) error

	InsertCallCount int32
	DeleteCallCount int32
}

func (m *MockRepository) Insert(ctx context.Context, p Pet) (Pet, error) {
	atomic.AddInt32(&m.InsertCallCount, 1)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, p)
	}
	return p, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (Pet, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return Pet{}, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockRepository) ListByOwnerEmail(ctx context.Context, ownerEmail string) ([]Pet, error) {
	if m.ListByOwnerEmailFunc != nil {
		return m.ListByOwnerEmailFunc(ctx, ownerEmail)
	}
	return nil, errors.New("ListByOwnerEmailFunc not implemented in mock")
}

func (m *MockRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, errors.New("ExistsByIDFunc not implemented in mock")
}

func (m *MockRepository) DeleteByID(ctx context.Context, id int) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}
