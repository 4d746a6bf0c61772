package services

import (
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/models"
)

func (s *ServiceTestSuite) TestCreateUser_Defaults() {
	user := s.createUser("Alice")
	s.Equal(models.RoleEmployee, user.Role)
	s.Empty(user.TaskNames)

	got, err := s.users.GetUser(s.ctx, user.ID, false)
	s.Require().NoError(err)
	s.Equal("Alice", got.Name)
	s.Equal(models.RoleEmployee, got.Role)
}

func (s *ServiceTestSuite) TestCreateUser_Validation() {
	_, err := s.users.CreateUser(s.ctx, CreateUserInput{Name: " "})
	s.requireCode(err, apierrors.ErrCodeValidation)
	s.EqualError(err, "Name is empty")

	_, err = s.users.CreateUser(s.ctx, CreateUserInput{Name: "Alice", Role: "Intern"})
	s.requireCode(err, apierrors.ErrCodeValidation)

	strict := NewUserService(s.userRepo, s.taskRepo, true)
	_, err = strict.CreateUser(s.ctx, CreateUserInput{})
	s.requireCode(err, apierrors.ErrCodeValidation)
	s.EqualError(err, "Name is empty, Role is empty")

	manager, err := strict.CreateUser(s.ctx, CreateUserInput{Name: "Bob", Role: models.RoleManager})
	s.Require().NoError(err)
	s.Equal(models.RoleManager, manager.Role)
}

func (s *ServiceTestSuite) TestGetUser_ProjectsLiveTaskNames() {
	user := s.createUser("Alice")
	first := s.createTask("First")
	second := s.createTask("Second")
	third := s.createTask("Third")

	for _, t := range []*models.Task{second, first, third} {
		_, err := s.tasks.AssignTask(s.ctx, t.ID, &user.ID)
		s.Require().NoError(err)
	}
	_, err := s.tasks.DeleteTask(s.ctx, third.ID)
	s.Require().NoError(err)

	got, err := s.users.GetUser(s.ctx, user.ID, false)
	s.Require().NoError(err)
	s.Equal([]string{"Second", "First"}, got.TaskNames)
}

func (s *ServiceTestSuite) TestUpdateUser() {
	user := s.createUser("Alice")
	task := s.createTask("Fix bug")
	_, err := s.tasks.AssignTask(s.ctx, task.ID, &user.ID)
	s.Require().NoError(err)

	role := models.RoleManager
	updated, err := s.users.UpdateUser(s.ctx, user.ID, UpdateUserInput{Name: strPtr("Alice Smith"), Role: &role})
	s.Require().NoError(err)
	s.Equal("Alice Smith", updated.Name)
	s.Equal(models.RoleManager, updated.Role)
	s.Equal([]string{"Fix bug"}, updated.TaskNames)

	_, err = s.users.UpdateUser(s.ctx, user.ID, UpdateUserInput{Name: strPtr("")})
	s.requireCode(err, apierrors.ErrCodeValidation)

	_, err = s.users.UpdateUser(s.ctx, 999, UpdateUserInput{Name: strPtr("Nobody")})
	s.requireCode(err, apierrors.ErrCodeNotFound)
}

func (s *ServiceTestSuite) TestDeleteUser() {
	user := s.createUser("Alice")

	deleted, err := s.users.DeleteUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(deleted.IsDeleted)

	_, err = s.users.GetUser(s.ctx, user.ID, false)
	s.requireCode(err, apierrors.ErrCodeNotFound)

	got, err := s.users.GetUser(s.ctx, user.ID, true)
	s.Require().NoError(err)
	s.True(got.IsDeleted)
}

func (s *ServiceTestSuite) TestListUsers() {
	for _, name := range []string{"carol", "Alice", "bob"} {
		s.createUser(name)
	}
	role := models.RoleManager
	dave, err := s.users.CreateUser(s.ctx, CreateUserInput{Name: "Dave", Role: role})
	s.Require().NoError(err)

	users, total, err := s.users.ListUsers(s.ctx, ListUsersInput{})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
	s.Equal("Alice", users[0].Name)

	users, total, err = s.users.ListUsers(s.ctx, ListUsersInput{Role: &role})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(dave.ID, users[0].ID)

	_, err = s.users.DeleteUser(s.ctx, dave.ID)
	s.Require().NoError(err)
	_, total, err = s.users.ListUsers(s.ctx, ListUsersInput{Name: "DAV"})
	s.Require().NoError(err)
	s.Equal(int64(0), total)

	_, _, err = s.users.ListUsers(s.ctx, ListUsersInput{SortBy: "role"})
	s.requireCode(err, apierrors.ErrCodeValidation)
}
