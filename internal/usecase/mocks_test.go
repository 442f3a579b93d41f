package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
)

// MockAttractionRepository is a mock of AttractionRepository
type MockAttractionRepository struct {
	mock.Mock
}

func (m *MockAttractionRepository) List(ctx context.Context, filter domain.AttractionFilter) ([]*domain.Attraction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) ListAllActive(ctx context.Context, limit int) ([]*domain.Attraction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) GetByID(ctx context.Context, id string) (*domain.Attraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Attraction, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Create(ctx context.Context, attraction *domain.Attraction) error {
	args := m.Called(ctx, attraction)
	return args.Error(0)
}

func (m *MockAttractionRepository) CreateBatch(ctx context.Context, attractions []*domain.Attraction) error {
	args := m.Called(ctx, attractions)
	return args.Error(0)
}

func (m *MockAttractionRepository) Update(ctx context.Context, id string, update domain.AttractionUpdate) (*domain.Attraction, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttractionRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAttractionRepository) Difficulties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAttractionRepository) Stats(ctx context.Context) (*domain.AttractionStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttractionStats), args.Error(1)
}

func (m *MockAttractionRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockFavoriteRepository is a mock of FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Insert(ctx context.Context, favorite *domain.UserFavorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.UserFavorite, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserFavorite), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, attractionID string) error {
	args := m.Called(ctx, userID, attractionID)
	return args.Error(0)
}

// MockStatusRepository is a mock of StatusRepository
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockStatusRepository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StatusCheck), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.AttractionStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttractionStats), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.AttractionStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetLookup(ctx context.Context, name string) ([]string, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCacheRepository) SetLookup(ctx context.Context, name string, values []string, ttl time.Duration) error {
	args := m.Called(ctx, name, values, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateCatalog(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// noCache returns a cache mock that always misses and accepts writes.
func noCache() *MockCacheRepository {
	c := &MockCacheRepository{}
	c.On("GetStats", mock.Anything).Return(nil, nil).Maybe()
	c.On("SetStats", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("GetLookup", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	c.On("SetLookup", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("InvalidateCatalog", mock.Anything).Return(nil).Maybe()
	return c
}
