package article

import "context"

// Message roles accepted by DraftRequest.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation sent to a draft provider.
// Content may be nil for assistant turns.
type Message struct {
	Role    string
	Content *string
	Name    string
}

// DraftRequest asks a provider to write an article.
// Tone and Keywords are hints; remote providers ignore them.
type DraftRequest struct {
	Model    string
	Messages []Message
	Tone     string
	Keywords []string
}

// LastUserContent returns the content of the most recent user message, or "".
func (r DraftRequest) LastUserContent() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		m := r.Messages[i]
		if m.Role == RoleUser && m.Content != nil {
			return *m.Content
		}
	}
	return ""
}

// Draft is the provider's proposal for a new article.
type Draft struct {
	Title    string
	Content  string
	PhotoURL *string
}

// Drafter produces article drafts. Implementations live in internal/infra/drafter.
type Drafter interface {
	// Draft generates an article draft. Errors should be *entity.ProviderError.
	Draft(ctx context.Context, req DraftRequest) (*Draft, error)
	// Name identifies the provider in logs and errors.
	Name() string
}

// ProviderHealth is a point-in-time view of a drafter's availability.
type ProviderHealth struct {
	Provider    string
	Configured  bool
	CircuitOpen bool
	Message     string
}

// Available reports whether the provider can currently accept requests.
func (h ProviderHealth) Available() bool {
	return h.Configured && !h.CircuitOpen
}

// HealthReporter is implemented by drafters that can describe their own availability.
type HealthReporter interface {
	Health() ProviderHealth
}
