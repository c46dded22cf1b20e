package domain

// Category buckets a classification outcome for reply composition.
type Category string

const (
	// CategoryWarning covers outcomes mentioning SPAM or SCAM.
	CategoryWarning Category = "warning"
	// CategorySafe covers outcomes mentioning LEGITIMATE.
	CategorySafe Category = "safe"
	// CategoryUnknown covers any other outcome; the raw text is echoed back.
	CategoryUnknown Category = "unknown"
	// CategoryFailure means the classifier call itself failed.
	CategoryFailure Category = "failure"
)

// ClassificationResult is derived per invocation from the current message
// text only; results are never cached or reused across requests.
type ClassificationResult struct {
	Category Category
	Outcome  string // raw trimmed model output
}

// InboundMessage is the validated text message extracted from a webhook
// delivery. Ephemeral: built per request, discarded after handling.
type InboundMessage struct {
	From string
	Body string
}

const (
	ObjectBusinessAccount = "whatsapp_business_account"
	MessageTypeText       = "text"
)

// WebhookPayload mirrors the parts of the Cloud API event envelope we read.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	Changes []Change `json:"changes"`
}

type Change struct {
	Value ChangeValue `json:"value"`
}

type ChangeValue struct {
	Messages []IncomingMessage `json:"messages"`
}

type IncomingMessage struct {
	From string      `json:"from"`
	Type string      `json:"type"`
	Text MessageText `json:"text"`
}

type MessageText struct {
	Body string `json:"body"`
}

// ExtractTextMessage navigates to the first message of the first change of
// the first entry. It returns ok=false when any link in that chain is absent
// or the message is not a text message; callers then acknowledge the event
// and take no further action.
func ExtractTextMessage(p *WebhookPayload) (InboundMessage, bool) {
	if p == nil || p.Object != ObjectBusinessAccount {
		return InboundMessage{}, false
	}
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return InboundMessage{}, false
	}

	messages := p.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return InboundMessage{}, false
	}

	msg := messages[0]
	if msg.Type != MessageTypeText {
		return InboundMessage{}, false
	}

	return InboundMessage{From: msg.From, Body: msg.Text.Body}, true
}

// SendMessageRequest is the Cloud API send-message envelope.
type SendMessageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
}

type TextBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type SendMessageResponse struct {
	MessagingProduct string        `json:"messaging_product"`
	Messages         []SentMessage `json:"messages"`
}

type SentMessage struct {
	ID string `json:"id"`
}
