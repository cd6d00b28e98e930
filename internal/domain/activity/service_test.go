package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/repository"
	"github.com/rpggio/wirecrm/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	browserID := "browser1"

	repo := &mocks.ActivityRepository{}
	repo.On("Create", ctx, browserID, mock.Anything).Return(nil)

	svc := activity.NewService(repo, nil)
	item, err := svc.Create(ctx, browserID, activity.CreateRequest{Type: activity.TypeCall})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, activity.ListTasks, item.List)
	require.Equal(t, activity.StatusOpen, item.Status)
	require.Equal(t, "Follow-up / Next Step", item.Reason)
	require.Equal(t, "Call – Follow-up / Next Step", item.Title)
	require.Equal(t, "Now", item.When)
	require.Empty(t, item.Due)
	repo.AssertExpectations(t)
}

func TestActivityService_CreateMeetingAndTask(t *testing.T) {
	ctx := context.Background()
	browserID := "browser1"

	repo := &mocks.ActivityRepository{}
	repo.On("Create", ctx, browserID, mock.Anything).Return(nil)
	svc := activity.NewService(repo, nil)

	meeting, err := svc.Create(ctx, browserID, activity.CreateRequest{
		Type:        activity.TypeMeeting,
		Reason:      "Demo / Walkthrough",
		MeetingDate: "2025-03-04",
	})
	require.NoError(t, err)
	require.Equal(t, activity.ListMeetings, meeting.List)
	require.Equal(t, "Meeting – Demo / Walkthrough", meeting.Title)
	require.Equal(t, "2025-03-04", meeting.MeetingDate)

	task, err := svc.Create(ctx, browserID, activity.CreateRequest{
		Type:  activity.TypeTask,
		Title: "  Send pricing  ",
		Due:   "Next Week",
	})
	require.NoError(t, err)
	require.Equal(t, activity.ListTasks, task.List)
	require.Equal(t, "Send pricing", task.Title)
	require.Equal(t, "Next Week", task.Due)

	// Unknown chip values fall back to the first choice.
	task, err = svc.Create(ctx, browserID, activity.CreateRequest{Type: activity.TypeTask, Due: "Someday"})
	require.NoError(t, err)
	require.Equal(t, "Today", task.Due)
}

func TestActivityService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	svc := activity.NewService(repo, nil)

	_, err := svc.Create(ctx, "", activity.CreateRequest{})
	require.ErrorIs(t, err, activity.ErrInvalidInput)

	_, err = svc.Create(ctx, "browser1", activity.CreateRequest{Reason: "Because"})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivityService_MarkDone(t *testing.T) {
	ctx := context.Background()
	browserID := "browser1"

	repo := &mocks.ActivityRepository{}
	repo.On("Get", ctx, browserID, "a1").Return(&activity.Item{
		ID: "a1", BrowserID: browserID, Type: activity.TypeMeeting, Status: activity.StatusOpen,
	}, nil)
	repo.On("Complete", ctx, browserID, mock.MatchedBy(func(item *activity.Item) bool {
		return item.Status == activity.StatusDone && item.Outcome == "Held" && item.CompletedAt != nil
	})).Return(nil)

	svc := activity.NewService(repo, nil)
	item, err := svc.MarkDone(ctx, browserID, "a1", "")
	require.NoError(t, err)
	require.Equal(t, "Held", item.Outcome)
	repo.AssertExpectations(t)
}

func TestActivityService_MarkDoneRejects(t *testing.T) {
	ctx := context.Background()
	browserID := "browser1"

	repo := &mocks.ActivityRepository{}
	repo.On("Get", ctx, browserID, "call").Return(&activity.Item{ID: "call", Type: activity.TypeCall, Status: activity.StatusOpen}, nil)
	repo.On("Get", ctx, browserID, "done").Return(&activity.Item{ID: "done", Type: activity.TypeTask, Status: activity.StatusDone}, nil)
	repo.On("Get", ctx, browserID, "missing").Return(nil, repository.ErrNotFound)
	repo.On("Get", ctx, browserID, "broken").Return(nil, errors.New("disk"))

	svc := activity.NewService(repo, nil)

	_, err := svc.MarkDone(ctx, browserID, "call", "Held")
	require.ErrorIs(t, err, activity.ErrInvalidOutcome)

	_, err = svc.MarkDone(ctx, browserID, "done", "Done")
	require.ErrorIs(t, err, activity.ErrAlreadyDone)

	_, err = svc.MarkDone(ctx, browserID, "missing", "")
	require.ErrorIs(t, err, activity.ErrActivityNotFound)

	_, err = svc.MarkDone(ctx, browserID, "broken", "")
	require.Error(t, err)
	require.NotErrorIs(t, err, activity.ErrActivityNotFound)

	repo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivityService_ListOpen(t *testing.T) {
	ctx := context.Background()
	browserID := "browser1"

	repo := &mocks.ActivityRepository{}
	repo.On("List", ctx, browserID, mock.MatchedBy(func(opts activity.ListActivityOptions) bool {
		return opts.List != nil && *opts.List == activity.ListMeetings &&
			opts.Status != nil && *opts.Status == activity.StatusOpen
	})).Return([]activity.Item{{ID: "m1"}}, nil)

	svc := activity.NewService(repo, nil)
	items, err := svc.ListOpen(ctx, browserID, activity.ListMeetings)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestDraftTitleAndHelpers(t *testing.T) {
	require.Equal(t, "Task – Quote / Proposal Review", activity.DraftTitle(activity.TypeTask, "Quote / Proposal Review"))
	require.Equal(t, "Meeting – Follow-up / Next Step", activity.DraftTitle(activity.TypeMeeting, ""))
	require.Equal(t, "Schedule Call", activity.ModalTitle(activity.TypeCall))
	require.Equal(t, "Schedule Meeting", activity.ModalTitle(activity.TypeMeeting))
	require.Equal(t, "Create Task", activity.ModalTitle(activity.TypeTask))
	require.Equal(t, activity.TypeCall, activity.ParseType("bogus"))
	require.Equal(t, []string{"Done", "Moved", "Canceled"}, activity.OutcomesFor(activity.TypeTask))
	require.Equal(t, "Prep", activity.Item{Type: activity.TypeMeeting}.ActionLabel())
	require.Equal(t, "Done", activity.Item{Type: activity.TypeCall}.ActionLabel())
}
