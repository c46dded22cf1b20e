package service

import (
	"fmt"
	"strings"

	"github.com/waguard/whatsapp-guard/internal/domain"
)

const (
	GreetingReply = "Hello there! How can I assist you today? Feel free to send me any message, link, or email content, and I'll analyze it for spam."

	HelpReply = "I am an AI-powered bot designed to help you identify spam. You can forward me suspicious messages, links, or emails. I will analyze them and tell you if they seem like a scam or are legitimate."

	ApologyReply = "Sorry, I couldn't analyze that message right now."

	// NotConfiguredOutcome stands in for the model output when no API key is
	// set; it flows through the unknown-category template like any other
	// unexpected outcome.
	NotConfiguredOutcome = "Could not analyze the message. Bot is not configured correctly."
)

// Categorize maps raw model output to a reply category by substring.
// Known limitation: substring matching is fragile against verbose output —
// "this is not spam" still matches SPAM. Kept as-is; the model is instructed
// to answer with a single keyword.
func Categorize(outcome string) domain.ClassificationResult {
	result := domain.ClassificationResult{Outcome: outcome}

	switch {
	case strings.Contains(outcome, "SPAM") || strings.Contains(outcome, "SCAM"):
		result.Category = domain.CategoryWarning
	case strings.Contains(outcome, "LEGITIMATE"):
		result.Category = domain.CategorySafe
	default:
		result.Category = domain.CategoryUnknown
	}

	return result
}

// ComposeReply renders the user-facing reply body for a classification
// result. Pure function of its input; no localization.
func ComposeReply(result domain.ClassificationResult) string {
	switch result.Category {
	case domain.CategoryWarning:
		return fmt.Sprintf("🚨 *Warning!* This message looks like *%s*.\n\nBe careful with links, and do not share personal information.", result.Outcome)
	case domain.CategorySafe:
		return "✅ This message seems *LEGITIMATE*.\n\nAs always, remain cautious online."
	case domain.CategoryFailure:
		return ApologyReply
	default:
		return fmt.Sprintf("🤔 Analysis complete. The content appears to be: %s.", result.Outcome)
	}
}
