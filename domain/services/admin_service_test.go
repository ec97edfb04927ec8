package services

import (
	"context"
	"testing"

	"neonbank/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAdminMocks() (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockGameConfigRepository, *MockAuditLogRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockConfigRepo := new(MockGameConfigRepository)
	mockAuditRepo := new(MockAuditLogRepository)

	mockUoW.SetRepositories(nil, nil, mockAuditRepo, mockConfigRepo)
	mockFactory.On("Create").Return(mockUoW)
	return mockFactory, mockUoW, mockConfigRepo, mockAuditRepo
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestAdminService_UpdateGameConfig_Success(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockConfigRepo, mockAuditRepo := setupAdminMocks()
	service := NewAdminService(mockFactory)

	admin := &entities.Account{ID: 99, CharacterName: "Root", IsAdmin: true}
	config := &entities.GameConfig{ID: 1, GameName: entities.GameGlitchGrid, Enabled: true, PayoutPercentage: 102.0}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockConfigRepo.On("GetByName", ctx, entities.GameGlitchGrid).Return(config, nil)
	mockConfigRepo.On("Update", ctx, mock.MatchedBy(func(c *entities.GameConfig) bool {
		return c.GameName == entities.GameGlitchGrid && !c.Enabled && c.PayoutPercentage == 95.0
	})).Return(nil)
	mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(entry *entities.AuditLog) bool {
		return entry.AdminAccountID == 99 && entry.Action == entities.ActionCasinoConfigUpdate
	})).Return(nil)

	updated, err := service.UpdateGameConfig(ctx, admin, entities.GameGlitchGrid, boolPtr(false), floatPtr(95.0))

	assert.NoError(t, err)
	assert.False(t, updated.Enabled)
	assert.Equal(t, 95.0, updated.PayoutPercentage)
	mockConfigRepo.AssertExpectations(t)
	mockAuditRepo.AssertExpectations(t)
}

func TestAdminService_UpdateGameConfig_PayoutOutOfRange(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, _, _ := setupAdminMocks()
	service := NewAdminService(mockFactory)

	admin := &entities.Account{ID: 99, IsAdmin: true}

	_, err := service.UpdateGameConfig(ctx, admin, entities.GameGlitchGrid, nil, floatPtr(49.9))
	assert.ErrorIs(t, err, entities.ErrInvalidPayout)

	_, err = service.UpdateGameConfig(ctx, admin, entities.GameGlitchGrid, nil, floatPtr(99.1))
	assert.ErrorIs(t, err, entities.ErrInvalidPayout)

	mockFactory.AssertNotCalled(t, "Create")
}

func TestAdminService_UpdateGameConfig_UnknownGame(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, _, _ := setupAdminMocks()
	service := NewAdminService(mockFactory)

	admin := &entities.Account{ID: 99, IsAdmin: true}

	_, err := service.UpdateGameConfig(ctx, admin, "pachinko", boolPtr(true), nil)
	assert.Error(t, err)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestAdminService_UpdateGameConfig_NothingToUpdate(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, _, _ := setupAdminMocks()
	service := NewAdminService(mockFactory)

	admin := &entities.Account{ID: 99, IsAdmin: true}

	_, err := service.UpdateGameConfig(ctx, admin, entities.GameGlitchGrid, nil, nil)
	assert.Error(t, err)
}

func TestAdminService_ListGameConfigs_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockConfigRepo, _ := setupAdminMocks()
	service := NewAdminService(mockFactory)

	grid := &entities.GameConfig{GameName: entities.GameGlitchGrid, Enabled: true, PayoutPercentage: 102.0}
	starlight := &entities.GameConfig{GameName: entities.GameStarlightSmuggler, Enabled: true, PayoutPercentage: 102.0}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockConfigRepo.On("GetByName", ctx, entities.GameGlitchGrid).Return(grid, nil)
	mockConfigRepo.On("GetByName", ctx, entities.GameStarlightSmuggler).Return(starlight, nil)
	mockConfigRepo.On("List", ctx).Return([]*entities.GameConfig{grid, starlight}, nil)

	configs, err := service.ListGameConfigs(ctx)

	assert.NoError(t, err)
	assert.Len(t, configs, 2)
	mockConfigRepo.AssertExpectations(t)
}
