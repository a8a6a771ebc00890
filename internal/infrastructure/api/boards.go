package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

type boardPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BoardRepository implements domain.BoardRepository against the backend's
// read-only /api/v1/boards resource.
type BoardRepository struct {
	client *Client
}

func NewBoardRepository(client *Client) *BoardRepository {
	return &BoardRepository{client: client}
}

func (r *BoardRepository) List(ctx context.Context) ([]domain.Board, error) {
	body, err := r.client.do(ctx, http.MethodGet, "/api/v1/boards", nil)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	boards, err := decodeBoardList(body)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Board, 0, len(boards))
	for _, item := range boards {
		result = append(result, domain.Board{ID: item.ID, Name: item.Name, Slug: item.Slug})
	}
	return result, nil
}

func decodeBoardList(body []byte) ([]boardPayload, error) {
	var boards []boardPayload
	if err := json.Unmarshal(body, &boards); err == nil {
		return boards, nil
	}
	var envelope struct {
		Boards []boardPayload `json:"boards"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("api: decoding board list: %w", err)
	}
	return envelope.Boards, nil
}
