package services

import (
	"fmt"

	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/models"
)

func (s *ServiceTestSuite) TestCreateTask_DefaultsAndRoundTrip() {
	created := s.createTask("Fix bug")
	s.Equal(models.TaskStatusPending, created.Status)
	s.False(created.IsDeleted)

	got, err := s.tasks.GetTask(s.ctx, created.ID, false)
	s.Require().NoError(err)
	s.Equal(created.Name, got.Name)
	s.Equal(created.Description, got.Description)
	s.Equal(created.Status, got.Status)
	s.Nil(got.AssignToID)
}

func (s *ServiceTestSuite) TestCreateTask_Validation() {
	_, err := s.tasks.CreateTask(s.ctx, CreateTaskInput{Name: "  ", Description: ""})
	s.requireCode(err, apierrors.ErrCodeValidation)
	s.EqualError(err, "Task name is empty, Description is empty")

	apiErr, ok := apierrors.As(err)
	s.Require().True(ok)
	s.Len(apiErr.Fields, 2)
	s.Equal("name", apiErr.Fields[0].Field)
}

func (s *ServiceTestSuite) TestCreateTask_NameUniqueness() {
	s.createTask("Fix bug")

	_, err := s.tasks.CreateTask(s.ctx, CreateTaskInput{Name: "Fix bug", Description: "again"})
	s.requireCode(err, apierrors.ErrCodeConflict)

	lenient := NewTaskService(s.taskRepo, s.assignments, false)
	_, err = lenient.CreateTask(s.ctx, CreateTaskInput{Name: "Fix bug", Description: "again"})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestCreateTask_NameFreedByDelete() {
	task := s.createTask("Fix bug")
	_, err := s.tasks.DeleteTask(s.ctx, task.ID)
	s.Require().NoError(err)

	_, err = s.tasks.CreateTask(s.ctx, CreateTaskInput{Name: "Fix bug", Description: "again"})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestUpdateTask_Lifecycle() {
	task := s.createTask("Fix bug")

	updated, err := s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Status: models.TaskStatusDone})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusDone, updated.Status)

	for _, next := range []models.TaskStatus{models.TaskStatusPending, models.TaskStatusWorking, models.TaskStatusReview, models.TaskStatusDone} {
		_, err = s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Status: next})
		s.requireCode(err, apierrors.ErrCodeValidation)
	}

	updated, err = s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Status: models.TaskStatusArchive})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusArchive, updated.Status)

	_, err = s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Status: models.TaskStatusWorking})
	s.requireCode(err, apierrors.ErrCodeValidation)

	_, err = s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Status: models.TaskStatusArchive})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestUpdateTask_Fields() {
	task := s.createTask("Fix bug")
	s.createTask("Write docs")

	_, err := s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{})
	s.requireCode(err, apierrors.ErrCodeValidation)
	s.EqualError(err, "Status is empty")

	_, err = s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Name: strPtr(""), Status: models.TaskStatusWorking})
	s.requireCode(err, apierrors.ErrCodeValidation)

	_, err = s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Name: strPtr("Write docs"), Status: models.TaskStatusWorking})
	s.requireCode(err, apierrors.ErrCodeConflict)

	updated, err := s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{
		Name:        strPtr("Fix bug"),
		Description: strPtr("NPE on login"),
		Status:      models.TaskStatusWorking,
	})
	s.Require().NoError(err)
	s.Equal("Fix bug", updated.Name)
	s.Equal("NPE on login", updated.Description)
	s.Equal(models.TaskStatusWorking, updated.Status)

	_, err = s.tasks.UpdateTask(s.ctx, 999, UpdateTaskInput{Status: models.TaskStatusWorking})
	s.requireCode(err, apierrors.ErrCodeNotFound)
}

func (s *ServiceTestSuite) TestUpdateTask_KeepsAssignee() {
	task := s.createTask("Fix bug")
	user := s.createUser("Alice")
	_, err := s.tasks.AssignTask(s.ctx, task.ID, &user.ID)
	s.Require().NoError(err)

	updated, err := s.tasks.UpdateTask(s.ctx, task.ID, UpdateTaskInput{Status: models.TaskStatusReview})
	s.Require().NoError(err)
	s.Require().NotNil(updated.AssignTo)
	s.Equal("Alice", updated.AssignTo.Name)
}

func (s *ServiceTestSuite) TestDeleteTask() {
	task := s.createTask("Fix bug")

	deleted, err := s.tasks.DeleteTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.True(deleted.IsDeleted)

	_, err = s.tasks.GetTask(s.ctx, task.ID, false)
	s.requireCode(err, apierrors.ErrCodeNotFound)

	got, err := s.tasks.GetTask(s.ctx, task.ID, true)
	s.Require().NoError(err)
	s.True(got.IsDeleted)

	_, err = s.tasks.DeleteTask(s.ctx, task.ID)
	s.requireCode(err, apierrors.ErrCodeNotFound)
}

func (s *ServiceTestSuite) TestListTasks_Pagination() {
	for i := 1; i <= 25; i++ {
		s.createTask(fmt.Sprintf("task-%02d", i))
	}

	page, total, err := s.tasks.ListTasks(s.ctx, ListTasksInput{Page: 2, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(25), total)
	s.Require().Len(page, 10)
	s.Equal("task-11", page[0].Name)
	s.Equal("task-20", page[9].Name)

	empty, total, err := s.tasks.ListTasks(s.ctx, ListTasksInput{Page: 9, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(25), total)
	s.Empty(empty)
}

func (s *ServiceTestSuite) TestListTasks_FiltersAndDeleted() {
	a := s.createTask("Fix login")
	s.createTask("Write docs")
	c := s.createTask("fix logout")
	_, err := s.tasks.UpdateTask(s.ctx, a.ID, UpdateTaskInput{Status: models.TaskStatusDone})
	s.Require().NoError(err)
	_, err = s.tasks.DeleteTask(s.ctx, c.ID)
	s.Require().NoError(err)

	tasks, total, err := s.tasks.ListTasks(s.ctx, ListTasksInput{Name: "FIX"})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Fix login", tasks[0].Name)

	done := models.TaskStatusDone
	tasks, _, err = s.tasks.ListTasks(s.ctx, ListTasksInput{Status: &done})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(a.ID, tasks[0].ID)

	_, total, err = s.tasks.ListTasks(s.ctx, ListTasksInput{Name: "fix", IncludeDeleted: true})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *ServiceTestSuite) TestListTasks_InvalidSort() {
	_, _, err := s.tasks.ListTasks(s.ctx, ListTasksInput{SortBy: "name"})
	s.requireCode(err, apierrors.ErrCodeValidation)

	_, _, err = s.tasks.ListTasks(s.ctx, ListTasksInput{SortOrder: "sideways"})
	s.requireCode(err, apierrors.ErrCodeValidation)

	bogus := models.TaskStatus("Blocked")
	_, _, err = s.tasks.ListTasks(s.ctx, ListTasksInput{Status: &bogus})
	s.requireCode(err, apierrors.ErrCodeValidation)
}
