package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "promatch/pkg/errors"
)

func newIntroductionService(t *testing.T, writer *fakeWriter) *IntroductionService {
	t.Helper()
	store := loadStore(t, testNetwork())
	logger := zap.NewNop()
	return NewIntroductionService(store, NewGraphService(store, logger), writer, logger)
}

func TestDraftIntroduction(t *testing.T) {
	writer := &fakeWriter{draft: "Hi Cleo, I'd love an intro to Ben."}
	service := newIntroductionService(t, writer)

	// ada and ben share cleo
	draft, err := service.Draft(context.Background(), "ada", "ben", "discussing fintech")
	require.NoError(t, err)
	assert.Equal(t, "Hi Cleo, I'd love an intro to Ben.", draft.EmailDraft)
	assert.Equal(t, "cleo", draft.MutualConnection.ID)
	assert.Equal(t, "discussing fintech", draft.Reason)
	assert.Equal(t, 1, writer.calls)
}

func TestDraftIntroductionDefaultReason(t *testing.T) {
	service := newIntroductionService(t, &fakeWriter{draft: "hello"})

	draft, err := service.Draft(context.Background(), "ada", "ben", "")
	require.NoError(t, err)
	// ben has no industry set, so the generic fallback applies
	assert.Equal(t, "professional networking in their field", draft.Reason)
}

func TestDraftIntroductionRequiresMutual(t *testing.T) {
	writer := &fakeWriter{draft: "hello"}
	service := newIntroductionService(t, writer)

	// ben and eve have no shared connection
	_, err := service.Draft(context.Background(), "ben", "eve", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	assert.Equal(t, 0, writer.calls)
}

func TestDraftIntroductionUnknownProfiles(t *testing.T) {
	service := newIntroductionService(t, &fakeWriter{})

	_, err := service.Draft(context.Background(), "ghost", "ben", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = service.Draft(context.Background(), "ada", "ghost", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDraftIntroductionWriterFailure(t *testing.T) {
	service := newIntroductionService(t, &fakeWriter{err: errors.New("model timeout")})

	_, err := service.Draft(context.Background(), "ada", "ben", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsCollaborator(err))
}
