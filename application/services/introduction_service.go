package services

import (
	"context"
	"fmt"

	"promatch/application/ports"
	"promatch/domain/profile"
	apperrors "promatch/pkg/errors"

	"go.uber.org/zap"
)

// IntroductionDraft is a drafted introduction email plus the mutual
// connection it would come from.
type IntroductionDraft struct {
	EmailDraft       string          `json:"email_draft"`
	MutualConnection profile.Summary `json:"mutual_connection"`
	Reason           string          `json:"context"`
}

// IntroductionService drafts introduction emails through the chat
// collaborator, routed via the best available mutual connection.
type IntroductionService struct {
	store  ports.ProfileStore
	graph  *GraphService
	writer ports.IntroductionWriter
	logger *zap.Logger
}

// NewIntroductionService creates an introduction service.
func NewIntroductionService(
	store ports.ProfileStore,
	graph *GraphService,
	writer ports.IntroductionWriter,
	logger *zap.Logger,
) *IntroductionService {
	return &IntroductionService{store: store, graph: graph, writer: writer, logger: logger}
}

// Draft generates an introduction email from requester to target. Both ids
// must resolve; without a mutual connection there is nobody to route the
// introduction through and the call fails with a conflict error.
func (s *IntroductionService) Draft(ctx context.Context, requesterID, targetID, reason string) (*IntroductionDraft, error) {
	requester, err := s.store.Get(requesterID)
	if err != nil {
		return nil, err
	}
	target, err := s.store.Get(targetID)
	if err != nil {
		return nil, err
	}

	mutuals := s.graph.mutualsOf(requester, target)
	if len(mutuals) == 0 {
		return nil, apperrors.NewConflictError("no mutual connections available for an introduction")
	}
	mutual, err := s.store.Get(mutuals[0].ID)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		field := target.Industry
		if field == "" {
			field = "their field"
		}
		reason = fmt.Sprintf("professional networking in %s", field)
	}

	draft, err := s.writer.DraftIntroduction(ctx, requester, target, mutual, reason)
	if err != nil {
		return nil, apperrors.NewCollaboratorError("introduction_writer", err)
	}

	s.logger.Info("Introduction drafted",
		zap.String("requesterID", requesterID),
		zap.String("targetID", targetID),
		zap.String("mutualID", mutual.ID),
	)
	return &IntroductionDraft{
		EmailDraft:       draft,
		MutualConnection: mutual.Summarize(),
		Reason:           reason,
	}, nil
}
