package email

import (
	"context"
	"errors"
	"time"
)

// Sender notifies the dataset owner that a new question came in.
type Sender interface {
	NotifyQuestion(ctx context.Context, question, sessionID string, askedAt time.Time) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) NotifyQuestion(_ context.Context, _ string, _ string, _ time.Time) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
