package api

// Request DTOs

// CreateBoardPayload is the body of POST /api/v1/board.
type CreateBoardPayload struct {
	WorkspaceSlug  string                `json:"workspaceSlug"`
	Title          string                `json:"title"`
	Guest          GuestPayload          `json:"guest"`
	BoardUniqueKey string                `json:"boardUniqueKey"`
	InitialStatus  *InitialStatusPayload `json:"initialStatus,omitempty"`
}

type GuestPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type InitialStatusPayload struct {
	StatusKey string `json:"statusKey"`
	TimeLimit string `json:"timeLimit,omitempty"`
}

// Response DTOs

// CreateBoardResponse mirrors the success body. Unknown keys are ignored.
type CreateBoardResponse struct {
	Slug     string `json:"slug" validate:"required"`
	HostURL  string `json:"hostURL" validate:"required"`
	GuestURL string `json:"guestURL" validate:"required"`
}
