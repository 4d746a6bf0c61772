package repository

import (
	"context"

	"github.com/yukikurage/task-tracker-api/internal/constants"
	"github.com/yukikurage/task-tracker-api/internal/database"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64, opts ReadOptions) (*models.User, error) {
	var user models.User
	query := database.LiveOnly("users", opts.IncludeDeleted)(r.db.WithContext(ctx))

	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users with filtering, sorting and pagination
func (r *GormUserRepository) List(ctx context.Context, filter UserFilter) ([]models.User, int64, error) {
	var users []models.User

	query := r.db.WithContext(ctx).Model(&models.User{})
	query = database.LiveOnly("users", filter.IncludeDeleted)(query)

	if filter.Role != nil {
		query = query.Where("users.role = ?", *filter.Role)
	}
	query = database.NameContains("users", "name", filter.NameContains)(query)
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := "name"
	switch filter.SortBy {
	case constants.SortByCreatedAt:
		column = "created_at"
	case constants.SortByUpdatedAt:
		column = "updated_at"
	}

	err := query.Scopes(
		database.OrderBy("users", column, filter.SortOrder == constants.SortOrderDesc),
		database.Paginate(utils.NewPaginationParams(filter.Page, filter.PageSize)),
	).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update writes the editable columns of a user
func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Select("name", "role").
		Updates(user).Error
}

// MarkDeleted soft deletes a user
func (r *GormUserRepository) MarkDeleted(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&models.User{ID: id}).
		Update("is_deleted", true).Error
}
