package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreate_RejectsAbsentFields(t *testing.T) {
	mockRepo := &MockRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"nil name", CreateInput{Type: strPtr("dog"), OwnerEmail: strPtr("u@example.com")}},
		{"nil type", CreateInput{Name: strPtr("Rex"), OwnerEmail: strPtr("u@example.com")}},
		{"nil ownerEmail", CreateInput{Name: strPtr("Rex"), Type: strPtr("dog")}},
		{"all nil", CreateInput{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// fail-fast: ninguna validación fallida debe haber tocado el store
	assert.Equal(t, int32(0), mockRepo.InsertCallCount)
}

func TestCreate_EmptyStringsAreValid(t *testing.T) {
	mockRepo := &MockRepository{
		InsertFunc: func(ctx context.Context, p Pet) (Pet, error) {
			p.ID = 7
			p.CreatedAt = time.Now()
			p.UpdatedAt = p.CreatedAt
			return p, nil
		},
	}
	svc := NewService(mockRepo)

	// requerido = presente, no no-vacío: "" pasa
	got, err := svc.Create(context.Background(), CreateInput{
		Name:       strPtr(""),
		Type:       strPtr(""),
		OwnerEmail: strPtr(""),
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, int32(1), mockRepo.InsertCallCount)
}

func TestCreate_ReturnsStoredRecord(t *testing.T) {
	mockRepo := &MockRepository{
		InsertFunc: func(ctx context.Context, p Pet) (Pet, error) {
			assert.Equal(t, 0, p.ID) // el service nunca manda un id propio
			p.ID = 1
			return p, nil
		},
	}
	svc := NewService(mockRepo)

	got, err := svc.Create(context.Background(), CreateInput{
		Name:       strPtr("Rex"),
		Type:       strPtr("dog"),
		OwnerEmail: strPtr("u@example.com"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, "dog", got.Type)
	assert.Equal(t, "u@example.com", got.OwnerEmail)
}

func TestCreate_PropagatesStorageFault(t *testing.T) {
	storageErr := errors.New("connection refused")
	mockRepo := &MockRepository{
		InsertFunc: func(ctx context.Context, p Pet) (Pet, error) {
			return Pet{}, storageErr
		},
	}
	svc := NewService(mockRepo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:       strPtr("Rex"),
		Type:       strPtr("dog"),
		OwnerEmail: strPtr("u@example.com"),
	})

	// sin retries ni fallback: la falla del store sube tal cual
	assert.ErrorIs(t, err, storageErr)
}

func TestListByOwnerEmail_RejectsEmpty(t *testing.T) {
	called := false
	mockRepo := &MockRepository{
		ListByOwnerEmailFunc: func(ctx context.Context, ownerEmail string) ([]Pet, error) {
			called = true
			return nil, nil
		},
	}
	svc := NewService(mockRepo)

	_, err := svc.ListByOwnerEmail(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, called)
}

func TestListByOwnerEmail_PassesThrough(t *testing.T) {
	want := []Pet{
		{ID: 1, Name: "Milo", Type: "dog", OwnerEmail: "a@x.com"},
		{ID: 2, Name: "Luna", Type: "cat", OwnerEmail: "a@x.com"},
	}
	mockRepo := &MockRepository{
		ListByOwnerEmailFunc: func(ctx context.Context, ownerEmail string) ([]Pet, error) {
			assert.Equal(t, "a@x.com", ownerEmail)
			return want, nil
		},
	}
	svc := NewService(mockRepo)

	got, err := svc.ListByOwnerEmail(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetByID_NotFound(t *testing.T) {
	mockRepo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id int) (Pet, error) {
			return Pet{}, ErrNotFound
		},
	}
	svc := NewService(mockRepo)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByID_NotFoundDoesNotMutate(t *testing.T) {
	mockRepo := &MockRepository{
		ExistsByIDFunc: func(ctx context.Context, id int) (bool, error) {
			return false, nil
		},
	}
	svc := NewService(mockRepo)

	err := svc.DeleteByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
	// chequeo de existencia primero: el delete nunca llega al store
	assert.Equal(t, int32(0), mockRepo.DeleteCallCount)
}

func TestDeleteByID_DeletesExisting(t *testing.T) {
	mockRepo := &MockRepository{
		ExistsByIDFunc: func(ctx context.Context, id int) (bool, error) {
			return true, nil
		},
		DeleteByIDFunc: func(ctx context.Context, id int) error {
			assert.Equal(t, 42, id)
			return nil
		},
	}
	svc := NewService(mockRepo)

	err := svc.DeleteByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int32(1), mockRepo.DeleteCallCount)
}

func TestDeleteByID_PropagatesExistsFault(t *testing.T) {
	storageErr := errors.New("connection refused")
	mockRepo := &MockRepository{
		ExistsByIDFunc: func(ctx context.Context, id int) (bool, error) {
			return false, storageErr
		},
	}
	svc := NewService(mockRepo)

	err := svc.DeleteByID(context.Background(), 42)

	assert.ErrorIs(t, err, storageErr)
	assert.Equal(t, int32(0), mockRepo.DeleteCallCount)
}
