package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"persona-qa/internal/dataset"
	"persona-qa/internal/domain"
	"persona-qa/internal/email"
	"persona-qa/internal/greeting"
	"persona-qa/internal/llm"
	"persona-qa/internal/repository"
)

// AskResult is the answer envelope returned for a question.
type AskResult struct {
	Answer    string `json:"answer"`
	SessionID string `json:"session_id"`
}

// ChatService orchestrates a question: greeting short-circuit, session read,
// context window build, backend call, session append and ask-log write.
type ChatService struct {
	logger      *zap.Logger
	matcher     *greeting.Matcher
	sessions    repository.SessionRepository
	asks        repository.AskRepository
	builder     *ContextBuilder
	data        *dataset.PersonalDataset
	llmClient   llm.Client
	model       string
	timeout     time.Duration
	notifier    email.Sender
	defaultLang string
}

func NewChatService(
	logger *zap.Logger,
	matcher *greeting.Matcher,
	sessions repository.SessionRepository,
	asks repository.AskRepository,
	builder *ContextBuilder,
	data *dataset.PersonalDataset,
	llmClient llm.Client,
	model string,
	timeout time.Duration,
	notifier email.Sender,
	defaultLang string,
) *ChatService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatService{
		logger:      logger,
		matcher:     matcher,
		sessions:    sessions,
		asks:        asks,
		builder:     builder,
		data:        data,
		llmClient:   llmClient,
		model:       model,
		timeout:     timeout,
		notifier:    notifier,
		defaultLang: defaultLang,
	}
}

// Ask answers one question within a session. A greeting match returns a
// canned reply without touching storage, the backend or the ask log. On
// backend failure nothing is persisted: a user turn is never recorded without
// its paired answer.
func (s *ChatService) Ask(ctx context.Context, question, lang, sessionID string) (AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return AskResult{}, domain.ErrEmptyQuestion
	}

	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = s.defaultLang
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if reply, ok := s.matcher.Match(lang, question); ok {
		return AskResult{Answer: reply, SessionID: sessionID}, nil
	}

	if !s.builder.Supported(lang) {
		return AskResult{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}

	history, err := s.sessions.ListTurns(ctx, sessionID)
	if err != nil {
		return AskResult{}, fmt.Errorf("read session: %w", err)
	}

	messages, err := s.builder.BuildMessages(lang, s.data, history, question)
	if err != nil {
		return AskResult{}, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.llmClient.Generate(genCtx, s.model, messages)
	if err != nil {
		return AskResult{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	pair := []domain.Turn{
		{Role: domain.RoleUser, Content: question},
		{Role: domain.RoleAssistant, Content: answer},
	}
	if err := s.sessions.AppendTurns(ctx, sessionID, pair); err != nil {
		return AskResult{}, fmt.Errorf("append turns: %w", err)
	}

	ask := domain.AskRecord{
		ID:       uuid.NewString(),
		Question: question,
		Date:     time.Now().UTC(),
	}
	// The ask log is a secondary sink: a write failure after a successful
	// session append is logged, not surfaced.
	if err := s.asks.Add(ctx, ask); err != nil {
		s.logger.Warn("ask log append failed", zap.Error(err), zap.String("session_id", sessionID))
	}

	if s.notifier != nil {
		go func(question, sessionID string, askedAt time.Time) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.notifier.NotifyQuestion(notifyCtx, question, sessionID, askedAt); err != nil {
				s.logger.Warn("question notification failed", zap.Error(err))
			}
		}(question, sessionID, ask.Date)
	}

	return AskResult{Answer: answer, SessionID: sessionID}, nil
}
