package services

import (
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
)

func (s *ServiceTestSuite) TestSetAssignment_AssignThenToggleOff() {
	task := s.createTask("Fix bug")
	user := s.createUser("Alice")

	assigned, err := s.assignments.SetAssignment(s.ctx, task.ID, &user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(assigned.AssignToID)
	s.Equal(user.ID, *assigned.AssignToID)
	s.Require().NotNil(assigned.AssignTo)
	s.Equal("Alice", assigned.AssignTo.Name)
	s.Equal([]uint64{task.ID}, []uint64(s.reloadUser(user.ID).TasksList))

	unassigned, err := s.assignments.SetAssignment(s.ctx, task.ID, &user.ID)
	s.Require().NoError(err)
	s.Nil(unassigned.AssignToID)
	s.Nil(unassigned.AssignTo)
	s.Empty(s.reloadUser(user.ID).TasksList)
}

func (s *ServiceTestSuite) TestSetAssignment_ReassignKeepsPreviousList() {
	task := s.createTask("Fix bug")
	alice := s.createUser("Alice")
	bob := s.createUser("Bob")

	_, err := s.assignments.SetAssignment(s.ctx, task.ID, &alice.ID)
	s.Require().NoError(err)

	reassigned, err := s.assignments.SetAssignment(s.ctx, task.ID, &bob.ID)
	s.Require().NoError(err)
	s.Equal(bob.ID, *reassigned.AssignToID)
	s.Equal([]uint64{task.ID}, []uint64(s.reloadUser(bob.ID).TasksList))
	// The stale entry on the previous holder is kept
	s.Equal([]uint64{task.ID}, []uint64(s.reloadUser(alice.ID).TasksList))
}

func (s *ServiceTestSuite) TestSetAssignment_NilUser() {
	task := s.createTask("Fix bug")
	user := s.createUser("Alice")

	untouched, err := s.assignments.SetAssignment(s.ctx, task.ID, nil)
	s.Require().NoError(err)
	s.Nil(untouched.AssignToID)

	_, err = s.assignments.SetAssignment(s.ctx, task.ID, &user.ID)
	s.Require().NoError(err)

	// A soft-deleted holder still gets its list cleaned
	_, err = s.users.DeleteUser(s.ctx, user.ID)
	s.Require().NoError(err)

	cleared, err := s.assignments.SetAssignment(s.ctx, task.ID, nil)
	s.Require().NoError(err)
	s.Nil(cleared.AssignToID)
	s.Empty(s.reloadUser(user.ID).TasksList)
}

func (s *ServiceTestSuite) TestSetAssignment_NotFound() {
	task := s.createTask("Fix bug")
	user := s.createUser("Alice")
	missing := uint64(999)

	_, err := s.assignments.SetAssignment(s.ctx, missing, &user.ID)
	s.requireCode(err, apierrors.ErrCodeNotFound)

	_, err = s.assignments.SetAssignment(s.ctx, task.ID, &missing)
	s.requireCode(err, apierrors.ErrCodeNotFound)

	_, err = s.users.DeleteUser(s.ctx, user.ID)
	s.Require().NoError(err)
	_, err = s.assignments.SetAssignment(s.ctx, task.ID, &user.ID)
	s.requireCode(err, apierrors.ErrCodeNotFound)

	// A holder deleted after assignment cannot be toggled off by id
	held := s.createTask("Ship release")
	holder := s.createUser("Carol")
	_, err = s.assignments.SetAssignment(s.ctx, held.ID, &holder.ID)
	s.Require().NoError(err)
	_, err = s.users.DeleteUser(s.ctx, holder.ID)
	s.Require().NoError(err)

	_, err = s.assignments.SetAssignment(s.ctx, held.ID, &holder.ID)
	s.requireCode(err, apierrors.ErrCodeNotFound)
	still, err := s.tasks.GetTask(s.ctx, held.ID, false)
	s.Require().NoError(err)
	s.Require().NotNil(still.AssignToID)
	s.Equal(holder.ID, *still.AssignToID)
	s.Equal([]uint64{held.ID}, []uint64(s.reloadUser(holder.ID).TasksList))

	cleared, err := s.assignments.SetAssignment(s.ctx, held.ID, nil)
	s.Require().NoError(err)
	s.Nil(cleared.AssignToID)
	s.Empty(s.reloadUser(holder.ID).TasksList)

	_, err = s.tasks.DeleteTask(s.ctx, task.ID)
	s.Require().NoError(err)
	other := s.createUser("Bob")
	_, err = s.assignments.SetAssignment(s.ctx, task.ID, &other.ID)
	s.requireCode(err, apierrors.ErrCodeNotFound)
}
