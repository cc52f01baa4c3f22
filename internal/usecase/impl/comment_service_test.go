package impl

import (
	"context"
	"testing"
	"time"

	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/infra/persistence/document"
	"bdgaraj/internal/infra/persistence/memory"
	"bdgaraj/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service   *commentService
	serviceID string
	clock     *fakeClock
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	t.Helper()

	store := memory.New()
	services := document.NewServiceRepository(store)

	catalog := &entity.Service{Name: "Bakım & Onarım", Description: "Periyodik bakım", Icon: "🔧"}
	catalog.Assign("svc-1", time.Now())
	require.NoError(t, services.Insert(context.Background(), catalog))

	clock := newFakeClock()

	return commentServiceFixtures{
		service:   newCommentService(document.NewCommentRepository(store), services, discardLogger(), clock.Now),
		serviceID: catalog.ID,
		clock:     clock,
	}
}

func (fx commentServiceFixtures) input(text string) *usecase.CommentInput {
	return &usecase.CommentInput{
		ServiceID:   fx.serviceID,
		UserName:    "Ayşe",
		UserEmail:   "ayse@example.com",
		CommentText: text,
		Rating:      5,
	}
}

func TestCommentService_CreateStartsPending(t *testing.T) {
	fx := createTestCommentService(t)

	comment, err := fx.service.Create(context.Background(), fx.input("Harika"))
	require.NoError(t, err)
	assert.Equal(t, entity.CommentPending, comment.Status)
	assert.Equal(t, fx.serviceID, comment.ServiceID)
}

func TestCommentService_CreateRequiresService(t *testing.T) {
	fx := createTestCommentService(t)

	input := fx.input("Harika")
	input.ServiceID = "missing"

	_, err := fx.service.Create(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCommentService_ModerationFlow(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	first, err := fx.service.Create(ctx, fx.input("ilk"))
	require.NoError(t, err)
	fx.clock.Advance(time.Minute)
	second, err := fx.service.Create(ctx, fx.input("ikinci"))
	require.NoError(t, err)
	fx.clock.Advance(time.Minute)
	_, err = fx.service.Create(ctx, fx.input("spam"))
	require.NoError(t, err)

	public, err := fx.service.ListApproved(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = fx.service.UpdateStatus(ctx, first.ID, string(entity.CommentApproved))
	require.NoError(t, err)
	approved, err := fx.service.UpdateStatus(ctx, second.ID, string(entity.CommentApproved))
	require.NoError(t, err)
	assert.Equal(t, entity.CommentApproved, approved.Status)

	public, err = fx.service.ListApproved(ctx, fx.serviceID)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, second.ID, public[0].ID)
	assert.Equal(t, first.ID, public[1].ID)

	other, err := fx.service.ListApproved(ctx, "another-service")
	require.NoError(t, err)
	assert.Empty(t, other)

	pending, err := fx.service.ListAll(ctx, usecase.CommentFilter{Status: string(entity.CommentPending)})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "spam", pending[0].CommentText)

	all, err := fx.service.ListAll(ctx, usecase.CommentFilter{ServiceID: fx.serviceID})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCommentService_RejectedNeverListedPublicly(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	comment, err := fx.service.Create(ctx, fx.input("reklam"))
	require.NoError(t, err)

	_, err = fx.service.UpdateStatus(ctx, comment.ID, string(entity.CommentApproved))
	require.NoError(t, err)
	rejected, err := fx.service.UpdateStatus(ctx, comment.ID, string(entity.CommentRejected))
	require.NoError(t, err)
	assert.Equal(t, entity.CommentRejected, rejected.Status)

	for _, serviceID := range []string{"", fx.serviceID} {
		public, err := fx.service.ListApproved(ctx, serviceID)
		require.NoError(t, err)
		assert.Empty(t, public)
	}

	all, err := fx.service.ListAll(ctx, usecase.CommentFilter{Status: string(entity.CommentRejected)})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, comment.ID, all[0].ID)
}

func TestCommentService_UpdateStatusValidation(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	comment, err := fx.service.Create(ctx, fx.input("x"))
	require.NoError(t, err)

	_, err = fx.service.UpdateStatus(ctx, comment.ID, "published")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCommentStatus)

	_, err = fx.service.UpdateStatus(ctx, "missing", string(entity.CommentRejected))
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)

	_, err = fx.service.ListAll(ctx, usecase.CommentFilter{Status: "published"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCommentStatus)
}

func TestCommentService_Delete(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	comment, err := fx.service.Create(ctx, fx.input("x"))
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, comment.ID))
	assert.ErrorIs(t, fx.service.Delete(ctx, comment.ID), domainerrors.ErrCommentNotFound)
}
