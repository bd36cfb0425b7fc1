package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dto "todolist-app.com/todolist-app/internal/data_models"
	apperrors "todolist-app.com/todolist-app/internal/errors"
	model "todolist-app.com/todolist-app/internal/models"
	repository "todolist-app.com/todolist-app/internal/repositories"
	"todolist-app.com/todolist-app/internal/sessions"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.TaskGroup{}, &model.Task{}, &model.CompletedTask{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type fixture struct {
	db        *gorm.DB
	tasks     *TaskService
	groups    *GroupService
	dashboard *DashboardService
	completed *repository.CompletedTaskRepository
}

func setupServices(t *testing.T) *fixture {
	db := setupTestDB(t)

	taskRepo := repository.NewTaskRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	completedRepo := repository.NewCompletedTaskRepository(db)

	groupService := NewGroupService(groupRepo)

	return &fixture{
		db:        db,
		tasks:     NewTaskService(taskRepo, groupRepo, completedRepo, groupService),
		groups:    groupService,
		dashboard: NewDashboardService(taskRepo, completedRepo),
		completed: completedRepo,
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	user := &model.User{Username: username}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func taskRequest(name string, deadline time.Time, groupIDs ...uint) dto.TaskRequest {
	return dto.TaskRequest{
		Name:     name,
		Priority: string(model.PriorityMedium),
		Deadline: deadline,
		GroupIDs: groupIDs,
	}
}

func (f *fixture) countCompleted(t *testing.T, ownerID uint) int64 {
	count, err := f.completed.CountByOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("failed to count completed tasks: %v", err)
	}
	return count
}

func TestOwnershipIsolation(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	alice := createUser(t, f.db, "alice")
	bob := createUser(t, f.db, "bob")

	deadline := time.Now().UTC().Add(24 * time.Hour)
	task, err := f.tasks.CreateTask(ctx, alice.ID, taskRequest("Alice task", deadline))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if _, err := f.tasks.GetTask(ctx, bob.ID, task.ID); err != apperrors.ErrNotFound {
		t.Errorf("expected ErrNotFound for foreign task, got %v", err)
	}
	if err := f.tasks.CompleteTask(ctx, sessions.Identity{UserID: bob.ID}, task.ID); err != apperrors.ErrNotFound {
		t.Errorf("expected ErrNotFound completing foreign task, got %v", err)
	}
	if err := f.tasks.DeleteTask(ctx, bob.ID, task.ID); err != apperrors.ErrNotFound {
		t.Errorf("expected ErrNotFound deleting foreign task, got %v", err)
	}

	bobTasks, err := f.tasks.ListTasks(ctx, bob.ID)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(bobTasks) != 0 {
		t.Errorf("expected foreign task to stay out of bob's list, got %d tasks", len(bobTasks))
	}

	upcoming, err := f.dashboard.Upcoming(ctx, bob.ID)
	if err != nil {
		t.Fatalf("failed to load dashboard: %v", err)
	}
	if len(upcoming) != 0 {
		t.Errorf("expected foreign task to stay out of bob's dashboard, got %d", len(upcoming))
	}

	// The owner still resolves it fine.
	if _, err := f.tasks.GetTask(ctx, alice.ID, task.ID); err != nil {
		t.Errorf("owner failed to resolve own task: %v", err)
	}
}

func TestCompleteTaskArchivesAndRemoves(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	user := createUser(t, f.db, "alice")

	deadline := time.Now().UTC().Add(time.Hour)
	task, err := f.tasks.CreateTask(ctx, user.ID, taskRequest("Ship release", deadline))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := f.tasks.CompleteTask(ctx, sessions.Identity{UserID: user.ID}, task.ID); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	if _, err := f.tasks.GetTask(ctx, user.ID, task.ID); err != apperrors.ErrNotFound {
		t.Errorf("expected completed task to stop resolving, got %v", err)
	}

	recent, err := f.dashboard.RecentlyCompleted(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to list completed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected exactly one archived record, got %d", len(recent))
	}
	if recent[0].Name != "Ship release" {
		t.Errorf("expected archived name %q, got %q", "Ship release", recent[0].Name)
	}
	if recent[0].OwnerID != user.ID {
		t.Errorf("expected archived owner %d, got %d", user.ID, recent[0].OwnerID)
	}
}

func TestCompleteTaskAsGuestSkipsArchival(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	guest := createUser(t, f.db, "guest-1")

	deadline := time.Now().UTC().Add(time.Hour)
	task, err := f.tasks.CreateTask(ctx, guest.ID, taskRequest("Guest task", deadline))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	identity := sessions.Identity{UserID: guest.ID, IsGuest: true}
	if err := f.tasks.CompleteTask(ctx, identity, task.ID); err != nil {
		t.Fatalf("failed to complete task as guest: %v", err)
	}

	if _, err := f.tasks.GetTask(ctx, guest.ID, task.ID); err != apperrors.ErrNotFound {
		t.Errorf("expected guest's task to disappear, got %v", err)
	}
	if count := f.countCompleted(t, guest.ID); count != 0 {
		t.Errorf("expected no archived records for guest, got %d", count)
	}
}

func TestDeleteTaskNeverArchives(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	user := createUser(t, f.db, "alice")

	deadline := time.Now().UTC().Add(time.Hour)
	task, err := f.tasks.CreateTask(ctx, user.ID, taskRequest("Doomed task", deadline))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := f.tasks.DeleteTask(ctx, user.ID, task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}

	if _, err := f.tasks.GetTask(ctx, user.ID, task.ID); err != apperrors.ErrNotFound {
		t.Errorf("expected deleted task to stop resolving, got %v", err)
	}
	if count := f.countCompleted(t, user.ID); count != 0 {
		t.Errorf("expected deletion to create no archived records, got %d", count)
	}
}

func TestGroupPreviewFormatting(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	user := createUser(t, f.db, "alice")

	var groupIDs []uint
	for _, name := range []string{"A", "B", "C", "D"} {
		group, err := f.groups.AddGroup(ctx, user.ID, name)
		if err != nil {
			t.Fatalf("failed to add group %s: %v", name, err)
		}
		groupIDs = append(groupIDs, group.ID)
	}

	deadline := time.Now().UTC().Add(time.Hour)
	task, err := f.tasks.CreateTask(ctx, user.ID, taskRequest("Tagged", deadline, groupIDs...))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	preview, err := f.groups.PreviewNames(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("failed to build preview: %v", err)
	}
	if preview != "A - B - C" {
		t.Errorf("expected preview %q, got %q", "A - B - C", preview)
	}

	bare, err := f.tasks.CreateTask(ctx, user.ID, taskRequest("Bare", deadline))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	preview, err = f.groups.PreviewNames(ctx, user.ID, bare.ID)
	if err != nil {
		t.Fatalf("failed to build preview: %v", err)
	}
	if preview != "" {
		t.Errorf("expected empty preview for groupless task, got %q", preview)
	}
}

func TestCrossOwnerGroupsAreFilteredOnAttach(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	alice := createUser(t, f.db, "alice")
	bob := createUser(t, f.db, "bob")

	aliceGroup, err := f.groups.AddGroup(ctx, alice.ID, "Mine")
	if err != nil {
		t.Fatalf("failed to add group: %v", err)
	}
	bobGroup, err := f.groups.AddGroup(ctx, bob.ID, "Theirs")
	if err != nil {
		t.Fatalf("failed to add group: %v", err)
	}

	deadline := time.Now().UTC().Add(time.Hour)
	task, err := f.tasks.CreateTask(ctx, alice.ID,
		taskRequest("Sneaky", deadline, aliceGroup.ID, bobGroup.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	preview, err := f.groups.PreviewNames(ctx, alice.ID, task.ID)
	if err != nil {
		t.Fatalf("failed to build preview: %v", err)
	}
	if preview != "Mine" {
		t.Errorf("expected only owned group attached, got preview %q", preview)
	}
}

func TestUpdateTaskReplacesFieldsAndGroups(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	user := createUser(t, f.db, "alice")

	first, err := f.groups.AddGroup(ctx, user.ID, "First")
	if err != nil {
		t.Fatalf("failed to add group: %v", err)
	}
	second, err := f.groups.AddGroup(ctx, user.ID, "Second")
	if err != nil {
		t.Fatalf("failed to add group: %v", err)
	}

	deadline := time.Now().UTC().Add(time.Hour)
	task, err := f.tasks.CreateTask(ctx, user.ID, taskRequest("Before", deadline, first.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	createdAt := task.CreationDate

	newDeadline := deadline.Add(48 * time.Hour)
	updated, err := f.tasks.UpdateTask(ctx, user.ID, task.ID, dto.TaskRequest{
		Name:     "After",
		Priority: string(model.PriorityCritical),
		Deadline: newDeadline,
		GroupIDs: []uint{second.ID},
	})
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if updated.Name != "After" || updated.Priority != model.PriorityCritical {
		t.Errorf("expected replaced fields, got name=%q priority=%q", updated.Name, updated.Priority)
	}
	if !updated.CreationDate.Equal(createdAt) {
		t.Errorf("expected creation date to survive edit")
	}

	preview, err := f.groups.PreviewNames(ctx, user.ID, task.ID)
	if err != nil {
		t.Fatalf("failed to build preview: %v", err)
	}
	if preview != "Second" {
		t.Errorf("expected group set replaced, got preview %q", preview)
	}
}

func TestDeleteGroupByNameIsSilentNoOpOnMiss(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	user := createUser(t, f.db, "alice")

	if err := f.groups.DeleteGroup(ctx, user.ID, "missing"); err != nil {
		t.Errorf("expected silent no-op for missing group, got %v", err)
	}

	if _, err := f.groups.AddGroup(ctx, user.ID, "Chores"); err != nil {
		t.Fatalf("failed to add group: %v", err)
	}

	other := createUser(t, f.db, "bob")
	if err := f.groups.DeleteGroup(ctx, other.ID, "Chores"); err != nil {
		t.Errorf("expected silent no-op deleting foreign group by name, got %v", err)
	}

	groups, err := f.groups.AvailableGroups(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to list groups: %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("expected alice's group to survive bob's delete, got %d groups", len(groups))
	}

	if err := f.groups.DeleteGroup(ctx, user.ID, "Chores"); err != nil {
		t.Fatalf("failed to delete group: %v", err)
	}
	groups, _ = f.groups.AvailableGroups(ctx, user.ID)
	if len(groups) != 0 {
		t.Errorf("expected group gone after owner delete, got %d", len(groups))
	}
}

func TestCleanCompletedSingleAndBulk(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	user := createUser(t, f.db, "alice")
	identity := sessions.Identity{UserID: user.ID}

	deadline := time.Now().UTC().Add(time.Hour)
	for i := 0; i < 3; i++ {
		task, err := f.tasks.CreateTask(ctx, user.ID, taskRequest("Task", deadline))
		if err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		if err := f.tasks.CompleteTask(ctx, identity, task.ID); err != nil {
			t.Fatalf("failed to complete task: %v", err)
		}
	}

	recent, err := f.dashboard.RecentlyCompleted(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to list completed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 archived records, got %d", len(recent))
	}

	target := recent[0].ID
	if err := f.tasks.CleanCompleted(ctx, user.ID, &target); err != nil {
		t.Fatalf("failed to clean single record: %v", err)
	}
	if count := f.countCompleted(t, user.ID); count != 2 {
		t.Errorf("expected 2 records after single clean, got %d", count)
	}

	// Cleaning the same id again is a not-found.
	if err := f.tasks.CleanCompleted(ctx, user.ID, &target); err != apperrors.ErrNotFound {
		t.Errorf("expected ErrNotFound cleaning missing record, got %v", err)
	}

	if err := f.tasks.CleanCompleted(ctx, user.ID, nil); err != nil {
		t.Fatalf("failed to bulk clean: %v", err)
	}
	if count := f.countCompleted(t, user.ID); count != 0 {
		t.Errorf("expected 0 records after bulk clean, got %d", count)
	}
}

func TestBulkCleanLeavesOtherOwnersAlone(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	alice := createUser(t, f.db, "alice")
	bob := createUser(t, f.db, "bob")

	deadline := time.Now().UTC().Add(time.Hour)
	for _, user := range []*model.User{alice, bob} {
		task, err := f.tasks.CreateTask(ctx, user.ID, taskRequest("Task", deadline))
		if err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		if err := f.tasks.CompleteTask(ctx, sessions.Identity{UserID: user.ID}, task.ID); err != nil {
			t.Fatalf("failed to complete task: %v", err)
		}
	}

	if err := f.tasks.CleanCompleted(ctx, alice.ID, nil); err != nil {
		t.Fatalf("failed to bulk clean: %v", err)
	}

	if count := f.countCompleted(t, alice.ID); count != 0 {
		t.Errorf("expected alice's records gone, got %d", count)
	}
	if count := f.countCompleted(t, bob.ID); count != 1 {
		t.Errorf("expected bob's record untouched, got %d", count)
	}
}
