package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/task-tracker-api/internal/constants"
	"github.com/yukikurage/task-tracker-api/internal/database"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrSaveTaskAssignment is returned when the task side of an assignment cannot be written.
	ErrSaveTaskAssignment = errors.New("task repository: save task assignment failed")
	// ErrSaveUserTasks is returned when the user side of an assignment cannot be written.
	ErrSaveUserTasks = errors.New("task repository: save user tasks list failed")
)

// preloadTables maps preloadable relations to the table they read from
var preloadTables = map[string]string{
	PreloadAssignTo: "users",
}

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

// FindByID finds a task by ID with optional preloading. Preloaded relations
// never include soft-deleted rows.
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64, opts ReadOptions, preload ...string) (*models.Task, error) {
	var task models.Task
	query := database.LiveOnly("tasks", opts.IncludeDeleted)(r.db.WithContext(ctx))
	query = preloadLive(query, preload...)

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// FindByName finds a task by exact name
func (r *GormTaskRepository) FindByName(ctx context.Context, name string, opts ReadOptions) (*models.Task, error) {
	var task models.Task
	query := database.LiveOnly("tasks", opts.IncludeDeleted)(r.db.WithContext(ctx))

	if err := query.Where("tasks.name = ?", name).First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// FindByIDs returns the tasks among ids
func (r *GormTaskRepository) FindByIDs(ctx context.Context, ids []uint64, opts ReadOptions) ([]models.Task, error) {
	if len(ids) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	query := database.LiveOnly("tasks", opts.IncludeDeleted)(r.db.WithContext(ctx))

	if err := query.Where("tasks.id IN ?", ids).Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// List retrieves tasks with filtering, sorting and pagination
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.WithContext(ctx).Model(&models.Task{})
	query = database.LiveOnly("tasks", filter.IncludeDeleted)(query)

	// Apply filters
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	query = database.NameContains("tasks", "name", filter.NameContains)(query)
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := "created_at"
	if filter.SortBy == constants.SortByUpdatedAt {
		column = "updated_at"
	}

	listQuery := query.Scopes(
		database.OrderBy("tasks", column, filter.SortOrder == constants.SortOrderDesc),
		database.Paginate(utils.NewPaginationParams(filter.Page, filter.PageSize)),
	)
	listQuery = preloadLive(listQuery, PreloadAssignTo)

	if err := listQuery.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update writes the editable columns of a task
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).
		Model(task).
		Select("name", "description", "status").
		Updates(task).Error
}

// MarkDeleted soft deletes a task
func (r *GormTaskRepository) MarkDeleted(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&models.Task{ID: id}).
		Update("is_deleted", true).Error
}

// SaveAssignment persists both sides of a task/user assignment atomically.
// Either both writes are committed or neither is.
func (r *GormTaskRepository) SaveAssignment(ctx context.Context, task *models.Task, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{ID: task.ID}).
			Update("assign_to_id", task.AssignToID).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSaveTaskAssignment, err)
		}

		if err := tx.Model(&models.User{ID: user.ID}).
			Update("tasks_list", user.TasksList).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSaveUserTasks, err)
		}

		return nil
	})
}

func preloadLive(query *gorm.DB, relations ...string) *gorm.DB {
	for _, p := range relations {
		if table, ok := preloadTables[p]; ok {
			query = query.Preload(p, database.LiveOnly(table, false))
			continue
		}
		query = query.Preload(p)
	}
	return query
}
