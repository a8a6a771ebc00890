package application

import (
	"context"
	"strings"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

// ContextService resolves which board the dashboard is looking at. The
// active board is remembered in the local state store between runs.
type ContextService struct {
	boards  domain.BoardRepository
	session domain.SessionRepository
}

func NewContextService(boards domain.BoardRepository, session domain.SessionRepository) *ContextService {
	return &ContextService{boards: boards, session: session}
}

func (s *ContextService) ListBoards(ctx context.Context) ([]domain.Board, error) {
	return s.boards.List(ctx)
}

// ResolveBoard picks the board the UI should select: the preferred id when
// it is present in the list, else the remembered active board, else the
// first board returned, else none.
func (s *ContextService) ResolveBoard(ctx context.Context, boards []domain.Board, preferredID string) (domain.Board, bool) {
	if board, ok := findBoard(boards, preferredID); ok {
		return board, true
	}
	if remembered, err := s.session.GetActiveBoard(ctx); err == nil {
		if board, ok := findBoard(boards, remembered); ok {
			return board, true
		}
	}
	if len(boards) > 0 {
		return boards[0], true
	}
	return domain.Board{}, false
}

func (s *ContextService) SetActiveBoard(ctx context.Context, boardID string) error {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return domain.ErrBoardRequired
	}
	return s.session.SetActiveBoard(ctx, boardID)
}

func findBoard(boards []domain.Board, id string) (domain.Board, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Board{}, false
	}
	for _, board := range boards {
		if board.ID == id {
			return board, true
		}
	}
	return domain.Board{}, false
}
