package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/bagooon/chatease-go/shared/api"
	"github.com/bagooon/chatease-go/shared/domain"
	internal_errors "github.com/bagooon/chatease-go/shared/errors"
	"github.com/bagooon/chatease-go/shared/utils"
)

// === Board Methods ===

// CreateBoard creates a board without an initial status. A request carrying
// InitialStatus is rejected with *errors.ValidationError.
//
// Errors are one of *errors.ValidationError (nothing was sent),
// *errors.TransportError, *errors.APIError (non-2xx status) or
// *errors.DecodeError (2xx body without slug, hostURL or guestURL).
func (c *Client) CreateBoard(ctx context.Context, req domain.BoardCreationRequest) (domain.BoardCreationResult, error) {
	if err := c.validator.BoardWithoutStatus(req); err != nil {
		return domain.BoardCreationResult{}, err
	}
	return c.createBoard(ctx, req)
}

// CreateBoardWithStatus creates a board that starts in req.InitialStatus,
// which is required. Errors are the same as for CreateBoard.
func (c *Client) CreateBoardWithStatus(ctx context.Context, req domain.BoardCreationRequest) (domain.BoardCreationResult, error) {
	if err := c.validator.BoardWithStatus(req); err != nil {
		return domain.BoardCreationResult{}, err
	}
	return c.createBoard(ctx, req)
}

func (c *Client) createBoard(ctx context.Context, req domain.BoardCreationRequest) (domain.BoardCreationResult, error) {
	jsonBody, err := utils.EncodeJSON(buildPayload(c.workspaceSlug, req))
	if err != nil {
		return domain.BoardCreationResult{}, fmt.Errorf("failed to marshal board data: %w", err)
	}

	c.log.Debug("creating board",
		"workspace", c.workspaceSlug,
		"board_unique_key", req.BoardUniqueKey,
		"with_status", req.InitialStatus != nil,
	)

	statusCode, body, err := c.transport.Post(ctx, c.boardURL(), jsonBody)
	if err != nil {
		var transportErr *internal_errors.TransportError
		if !errors.As(err, &transportErr) {
			err = &internal_errors.TransportError{Op: "post", Err: err}
		}
		c.log.Error("chatease unavailable", "board_unique_key", req.BoardUniqueKey, "error", err)
		return domain.BoardCreationResult{}, err
	}

	result, err := mapResponse(statusCode, body)
	if err != nil {
		c.log.Warn("board creation failed", "board_unique_key", req.BoardUniqueKey, "status", statusCode, "error", err)
		return domain.BoardCreationResult{}, err
	}
	c.log.Debug("board created", "board_unique_key", req.BoardUniqueKey, "slug", result.Slug)
	return result, nil
}

// buildPayload adds the workspace slug to an already validated request.
func buildPayload(workspaceSlug string, req domain.BoardCreationRequest) api.CreateBoardPayload {
	payload := api.CreateBoardPayload{
		WorkspaceSlug: workspaceSlug,
		Title:         req.Title,
		Guest: api.GuestPayload{
			Name:  req.Guest.Name,
			Email: req.Guest.Email,
		},
		BoardUniqueKey: req.BoardUniqueKey,
	}
	if req.InitialStatus != nil {
		payload.InitialStatus = &api.InitialStatusPayload{
			StatusKey: req.InitialStatus.StatusKey,
			TimeLimit: req.InitialStatus.TimeLimit,
		}
	}
	return payload
}

func mapResponse(statusCode int, body []byte) (domain.BoardCreationResult, error) {
	if statusCode < 200 || statusCode >= 300 {
		return domain.BoardCreationResult{}, &internal_errors.APIError{
			StatusCode: statusCode,
			Body:       utils.ReencodeBody(body),
		}
	}

	var response api.CreateBoardResponse
	if err := utils.DecodeValidate(bytes.NewReader(body), &response); err != nil {
		return domain.BoardCreationResult{}, &internal_errors.DecodeError{
			StatusCode: statusCode,
			Body:       utils.ReencodeBody(body),
			Err:        err,
		}
	}
	return domain.BoardCreationResult{
		Slug:     response.Slug,
		HostURL:  response.HostURL,
		GuestURL: response.GuestURL,
	}, nil
}
