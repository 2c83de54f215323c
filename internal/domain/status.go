package domain

// Status is the pipeline stage a candidate occupies.
// The set is closed; anything else is rejected by ParseStatus and
// defaulted to StatusNew by the sanitizer.
type Status string

// Pipeline stages, in the order the board displays them.
const (
	StatusNew      Status = "new"
	StatusChatting Status = "chatting"
	StatusMetOnce  Status = "met once"
	StatusOnHold   Status = "on hold"
	StatusEnded    Status = "ended"
)

// AllStatuses lists every valid status in display order.
var AllStatuses = []Status{StatusNew, StatusChatting, StatusMetOnce, StatusOnHold, StatusEnded}

// ParseStatus returns the Status for s, or StatusNew and false
// when s is not part of the enumeration.
func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return StatusNew, false
}

// Valid reports whether the status is part of the closed enumeration.
func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// InteractionType classifies a logged interaction.
type InteractionType string

// Interaction kinds.
const (
	InteractionCall InteractionType = "call"
	InteractionDate InteractionType = "date"
	InteractionChat InteractionType = "chat"
)

// AllInteractionTypes lists every valid interaction type.
var AllInteractionTypes = []InteractionType{InteractionCall, InteractionDate, InteractionChat}

// ParseInteractionType returns the InteractionType for s, or
// InteractionChat and false when s is not part of the enumeration.
func ParseInteractionType(s string) (InteractionType, bool) {
	for _, it := range AllInteractionTypes {
		if string(it) == s {
			return it, true
		}
	}
	return InteractionChat, false
}

// Valid reports whether the interaction type is part of the closed enumeration.
func (t InteractionType) Valid() bool {
	_, ok := ParseInteractionType(string(t))
	return ok
}
