package service

import (
	"context"
	"errors"
	"strings"

	"github.com/waguard/whatsapp-guard/internal/domain"
	"github.com/waguard/whatsapp-guard/pkg/gemini"
	"github.com/waguard/whatsapp-guard/pkg/logger"
)

// Small internal interfaces so we can test without touching Gemini/WhatsApp.
type classifier interface {
	Classify(ctx context.Context, messageText string) (string, error)
}

type sender interface {
	SendText(ctx context.Context, to, body string) (*domain.SendMessageResponse, error)
}

// RelayService routes inbound text messages: trivial chit-chat gets a canned
// reply without burning a paid classification call, everything else goes
// through the classifier and gets a composed analysis reply.
type RelayService struct {
	classifier classifier
	sender     sender
}

func NewRelayService(classifier classifier, sender sender) *RelayService {
	return &RelayService{
		classifier: classifier,
		sender:     sender,
	}
}

// HandleInbound processes one extracted text message end to end. The
// classification call always completes (or fails) before the reply send is
// issued. Nothing here propagates an error back to the webhook handler.
func (s *RelayService) HandleInbound(ctx context.Context, msg domain.InboundMessage) {
	// Lower-cased trim is for canned-reply matching only; the classifier
	// sees the original casing. Exact match, not substring, so a message
	// merely containing "hi" is still analyzed.
	switch strings.ToLower(strings.TrimSpace(msg.Body)) {
	case "hi", "hello", "hey":
		s.send(ctx, msg.From, GreetingReply)
		return
	case "help", "info":
		s.send(ctx, msg.From, HelpReply)
		return
	}

	logger.Infof("Analyzing message from %s", msg.From)

	result := s.classify(ctx, msg.Body)
	s.send(ctx, msg.From, ComposeReply(result))
}

func (s *RelayService) classify(ctx context.Context, messageText string) domain.ClassificationResult {
	outcome, err := s.classifier.Classify(ctx, messageText)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			logger.Warnf("Classifier not configured, skipping analysis")
			return domain.ClassificationResult{
				Category: domain.CategoryUnknown,
				Outcome:  NotConfiguredOutcome,
			}
		}

		// ErrUnreachable and ErrBadResponse both degrade to the apology
		// reply; the user never sees raw error details.
		logger.Errorf("Error during spam analysis: %v", err)
		return domain.ClassificationResult{Category: domain.CategoryFailure}
	}

	logger.Debugf("Classification outcome: %q", outcome)

	return Categorize(outcome)
}

// SendText exposes the sender to the operator API.
func (s *RelayService) SendText(ctx context.Context, to, body string) (*domain.SendMessageResponse, error) {
	return s.sender.SendText(ctx, to, body)
}

func (s *RelayService) send(ctx context.Context, to, body string) {
	if _, err := s.sender.SendText(ctx, to, body); err != nil {
		logger.Errorf("Failed to send reply to %s: %v", to, err)
	}
}
