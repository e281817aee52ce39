// Package llm provides the generation gateway: the sole integration
// point with external text-generation providers. It sends role-tagged
// conversations and returns raw completion text verbatim; trimming and
// parsing belong to the extract package.
package llm

// Role tags one message in a conversation.
type Role string

// Conversation roles
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged instruction.
type Message struct {
	Role    Role
	Content string
}

// Conversation is the ordered message sequence sent to a provider in
// one request. Stage builders always produce [system, user].
type Conversation []Message

// NewConversation builds the canonical [system, user] conversation.
func NewConversation(system, user string) Conversation {
	return Conversation{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}
