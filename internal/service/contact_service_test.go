package service

import (
	"context"
	"errors"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_RejectsShortMessage(t *testing.T) {
	repos, db := newTestRepos(t)
	notifier := &testutil.NotifierStub{}
	svc := NewContactService(repos.Contact, notifier, "Portfolio Contact")

	msg, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "short",
	})
	require.Error(t, err)
	assert.Nil(t, msg)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "message")
	assert.NotErrorIs(t, err, ErrNotificationFailed)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, notifier.Sent())
}

func TestContactService_RejectsBadEmail(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewContactService(repos.Contact, &testutil.NotifierStub{}, "Portfolio Contact")

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ada",
		Email:   "not-an-email",
		Message: "Long enough message body",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "email")
}

func TestContactService_StoresAndNotifies(t *testing.T) {
	repos, _ := newTestRepos(t)
	notifier := &testutil.NotifierStub{}
	svc := NewContactService(repos.Contact, notifier, "Portfolio Contact")
	ctx := context.Background()

	msg, err := svc.Submit(ctx, ContactInput{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com",
		Subject: "Pump design",
		Message: "  I would like to talk about your pump.  ",
	})
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.Read)
	assert.False(t, msg.CreatedAt.IsZero())

	stored, err := repos.Contact.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Ada Lovelace", stored[0].Name)
	assert.Equal(t, "I would like to talk about your pump.", stored[0].Message)

	sent := notifier.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Portfolio Contact: Pump design", sent[0].Subject)
	assert.Equal(t, "ada@example.com", sent[0].FromEmail)
	assert.Equal(t, "Ada Lovelace", sent[0].FromName)
	assert.Equal(t, "From: Ada Lovelace (ada@example.com)\n\nI would like to talk about your pump.", sent[0].Body)
}

func TestContactService_NotificationFailureKeepsMessage(t *testing.T) {
	repos, _ := newTestRepos(t)
	notifier := &testutil.NotifierStub{Err: errors.New("smtp down")}
	svc := NewContactService(repos.Contact, notifier, "Portfolio Contact")
	ctx := context.Background()

	msg, err := svc.Submit(ctx, ContactInput{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "Please call me back soon.",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.True(t, models.HasCode(err, models.CodeNotificationFailed))
	require.NotNil(t, msg)

	stored, err := repos.Contact.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", stored.Email)
	assert.Len(t, notifier.Sent(), 1)
	assert.Equal(t, "Portfolio Contact", notifier.Sent()[0].Subject)
}
