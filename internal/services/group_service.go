package services

import (
	"context"
	"strings"

	model "todolist-app.com/todolist-app/internal/models"
	repository "todolist-app.com/todolist-app/internal/repositories"
)

// GroupPreviewLimit bounds how many group names a task preview shows.
const GroupPreviewLimit = 3

const groupPreviewSeparator = " - "

type GroupService struct {
	groups *repository.GroupRepository
}

func NewGroupService(groups *repository.GroupRepository) *GroupService {
	return &GroupService{groups: groups}
}

// AddGroup creates a group stamped with the acting identity as owner.
func (s *GroupService) AddGroup(ctx context.Context, ownerID uint, name string) (*model.TaskGroup, error) {
	group := &model.TaskGroup{
		Name:    name,
		OwnerID: ownerID,
	}

	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// DeleteGroup removes the group matching (name, owner). When no such group
// exists this is a no-op, not an error.
func (s *GroupService) DeleteGroup(ctx context.Context, ownerID uint, name string) error {
	return s.groups.DeleteByName(ctx, ownerID, name)
}

// AvailableGroups lists the groups the identity may attach to its tasks.
// Other owners' groups never appear here, which is what keeps cross-owner
// assignment out despite the join table having no constraint against it.
func (s *GroupService) AvailableGroups(ctx context.Context, ownerID uint) ([]model.TaskGroup, error) {
	return s.groups.ListByOwner(ctx, ownerID)
}

// PreviewNames joins the names of up to GroupPreviewLimit of the task's
// groups owned by ownerID with " - ". Zero matching groups yield "".
func (s *GroupService) PreviewNames(ctx context.Context, ownerID, taskID uint) (string, error) {
	groups, err := s.groups.ListForTask(ctx, ownerID, taskID, GroupPreviewLimit)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(groups))
	for _, group := range groups {
		names = append(names, group.Name)
	}

	return strings.Join(names, groupPreviewSeparator), nil
}
