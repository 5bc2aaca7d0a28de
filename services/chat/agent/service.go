package agent

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/filingsight/filingsight/services/chat/config"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultPollInterval = 2 * time.Second

// runStatusIncomplete is a terminal state newer than the client library's
// constants.
const runStatusIncomplete = openai.RunStatus("incomplete")

// RunError is returned when a run reaches a terminal state other than
// completed. LastError carries whatever detail the remote service supplied.
type RunError struct {
	Status    openai.RunStatus
	LastError *openai.RunLastError
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run ended with status %s: %s", e.Status, e.Detail())
}

func (e *RunError) Detail() string {
	if e.LastError != nil {
		return fmt.Sprintf("%s: %s", e.LastError.Code, e.LastError.Message)
	}
	return string(e.Status)
}

// Service relays a single user message to a remote agent: it creates a fresh
// thread, posts the message, runs the agent to completion and collects the
// assistant reply. It holds no per-request state and is safe for concurrent
// use.
type Service struct {
	logger       *zap.Logger
	client       *openai.Client
	agentID      string
	pollInterval time.Duration
}

func New(logger *zap.Logger, cnf config.ChatConfig, credential azcore.TokenCredential) *Service {
	clientConfig := openai.DefaultConfig("")
	clientConfig.BaseURL = strings.TrimSuffix(cnf.ProjectEndpoint, "/")
	clientConfig.HTTPClient = &http.Client{
		Transport: newBearerTransport(credential, cnf.TokenScope, cnf.ApiVersion),
	}

	return &Service{
		logger:       logger.Named("agent"),
		client:       openai.NewClientWithConfig(clientConfig),
		agentID:      cnf.AgentId,
		pollInterval: defaultPollInterval,
	}
}

// Ask runs the full relay sequence and returns the concatenated assistant
// reply text. An empty string with a nil error means the run completed but
// produced no assistant text.
func (s *Service) Ask(ctx context.Context, message string) (string, error) {
	assistant, err := s.client.RetrieveAssistant(ctx, s.agentID)
	if err != nil {
		return "", fmt.Errorf("retrieve agent %s: %w", s.agentID, err)
	}

	thread, err := s.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	s.logger.Info("created thread", zap.String("thread_id", thread.ID))

	_, err = s.client.CreateMessage(ctx, thread.ID, openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	run, err := s.client.CreateRun(ctx, thread.ID, openai.RunRequest{
		AssistantID: assistant.ID,
	})
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}

	if err := s.waitForRun(ctx, thread.ID, run); err != nil {
		return "", err
	}

	return s.collectAnswer(ctx, thread.ID)
}

// waitForRun polls the run until it reaches a terminal state. Only completed
// returns nil; every other dead end becomes a RunError. There is no local
// timeout, cancellation comes from ctx.
func (s *Service) waitForRun(ctx context.Context, threadID string, run openai.Run) error {
	for {
		switch run.Status {
		case openai.RunStatusCompleted:
			return nil
		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired, runStatusIncomplete:
			return &RunError{Status: run.Status, LastError: run.LastError}
		case openai.RunStatusRequiresAction:
			// no tools are registered on this side, the run can never progress
			return &RunError{Status: run.Status, LastError: run.LastError}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}

		var err error
		run, err = s.client.RetrieveRun(ctx, threadID, run.ID)
		if err != nil {
			return fmt.Errorf("retrieve run: %w", err)
		}
	}
}

// collectAnswer lists the thread messages in ascending order and joins the
// assistant replies. A message may carry several text chunks from
// streaming-style construction; the last chunk is the complete one.
func (s *Service) collectAnswer(ctx context.Context, threadID string) (string, error) {
	order := "asc"
	messages, err := s.client.ListMessage(ctx, threadID, nil, &order, nil, nil)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}

	var answers []string
	for _, msg := range messages.Messages {
		if msg.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		var last *openai.MessageText
		for i := range msg.Content {
			if msg.Content[i].Text != nil {
				last = msg.Content[i].Text
			}
		}
		if last != nil {
			answers = append(answers, last.Value)
		}
	}

	return strings.TrimSpace(strings.Join(answers, "\n\n")), nil
}
