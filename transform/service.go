// Package transform proxies text transformation requests to an upstream LLM
// using the caller's own API key and records every successful transformation.
package transform

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/kbukum/textmorph/errors"
	"github.com/kbukum/textmorph/logger"
	"github.com/kbukum/textmorph/store"
)

// Completer produces a completion for a prompt using the given API key.
type Completer interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// Service validates transform requests, calls the upstream LLM, and appends
// to the transformation log.
type Service struct {
	store     store.Store
	completer Completer
	log       *logger.Logger
}

// NewService creates the transform service.
func NewService(st store.Store, completer Completer, log *logger.Logger) *Service {
	return &Service{
		store:     st,
		completer: completer,
		log:       log.WithComponent("transform"),
	}
}

// Transform runs one transformation command for the user and returns the
// transformed text. The user must have an LLM API key configured.
func (s *Service) Transform(ctx context.Context, userID, command, selectedText string) (string, error) {
	prompt, ok := buildPrompt(command, selectedText)
	if !ok {
		return "", errors.InvalidArgument("unknown command: " + command).
			WithDetail("supported", Commands())
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return "", errors.NotFound("user")
		}
		s.log.Error("user lookup failed", logger.ErrorFields("transform", err))
		return "", errors.Internal(err)
	}
	if !user.HasLLMKey() {
		return "", errors.FailedPrecondition("no LLM API key configured; add one in settings")
	}

	transformed, err := s.completer.Complete(ctx, user.LLMAPIKey, prompt)
	if err != nil {
		s.log.Warn("upstream completion failed", logger.Fields(
			logger.FieldUserID, userID,
			"command", command,
			logger.FieldError, err.Error(),
		))
		return "", errors.ExternalService("LLM", err)
	}
	transformed = strings.TrimSpace(transformed)

	record := &store.Transformation{
		UserID:          userID,
		Command:         command,
		SelectedText:    selectedText,
		TransformedText: transformed,
	}
	if err := s.store.AddTransformation(ctx, record); err != nil {
		s.log.Error("transformation log append failed", logger.ErrorFields("transform", err))
		return "", errors.Internal(err)
	}

	return transformed, nil
}
