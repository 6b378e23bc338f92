package domain

import "github.com/google/uuid"

// BoardCreationRequest describes a board to be created on ChatEase.
// InitialStatus is only sent by the status-aware create call.
type BoardCreationRequest struct {
	Title          BoardTitle
	Guest          GuestInfo
	BoardUniqueKey BoardUniqueKey
	InitialStatus  *InitialStatus
}

type GuestInfo struct {
	Name  string
	Email Email
}

// InitialStatus is the workflow state a board starts in.
// TimeLimit may be empty when the status has no deadline.
type InitialStatus struct {
	StatusKey StatusKey
	TimeLimit TimeLimit
}

// BoardCreationResult is returned verbatim from the API.
type BoardCreationResult struct {
	Slug     BoardSlug
	HostURL  string
	GuestURL string
}

// NewBoardUniqueKey returns a random idempotency key. UUIDs only use hex
// digits and hyphens, so the key always passes board key validation.
func NewBoardUniqueKey() BoardUniqueKey {
	return uuid.NewString()
}
