package services

import (
	"fmt"
	"strings"

	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/models"
)

const (
	msgDoneLocked    = "Invalid status change. The 'Done' status cannot be changed except to 'Archive'."
	msgArchiveLocked = "Invalid status change. The 'Archive' status cannot be changed."
)

// ValidateStatusTransition returns a validation error when a task in status
// current may not move to next.
func ValidateStatusTransition(current, next models.TaskStatus) error {
	if current.CanTransitionTo(next) {
		return nil
	}

	var msg string
	switch {
	case !next.IsValid():
		names := make([]string, len(models.TaskStatuses))
		for i, s := range models.TaskStatuses {
			names[i] = string(s)
		}
		msg = fmt.Sprintf("status must be one of %s", strings.Join(names, ", "))
	case current == models.TaskStatusDone:
		msg = msgDoneLocked
	default:
		msg = msgArchiveLocked
	}

	return apierrors.Validation(msg, apierrors.FieldError{Field: "status", Message: msg})
}
