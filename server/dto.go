package server

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/wavepath/grid"
	"github.com/katalvlaran/wavepath/search"
)

// BlockRequest sets one cell. Type is a block name such as "wall"; clearing
// a cell takes an explicit "empty".
type BlockRequest struct {
	X    *int            `json:"x" binding:"required"`
	Y    *int            `json:"y" binding:"required"`
	Type *grid.BlockType `json:"type" binding:"required"`
}

// WallRequest places a wall on an Empty cell.
type WallRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// WallResponse reports whether the wall was placed.
type WallResponse struct {
	Placed bool `json:"placed"`
}

// SearchRequest launches a search. DelayMs defaults to the configured delay
// and is capped at ten minutes per round.
type SearchRequest struct {
	Start   *grid.Cell `json:"start" binding:"required"`
	Finish  *grid.Cell `json:"finish" binding:"required"`
	DelayMs *int64     `json:"delay_ms" binding:"omitempty,min=0,max=600000"`
}

// SearchResponse describes a search and, once it ended, its outcome.
type SearchResponse struct {
	ID      uuid.UUID       `json:"id"`
	Status  search.Status   `json:"status"`
	Start   grid.Cell       `json:"start"`
	Finish  grid.Cell       `json:"finish"`
	DelayMs int64           `json:"delay_ms"`
	Outcome *search.Outcome `json:"outcome,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func newSearchResponse(h *search.Handle) SearchResponse {
	out, status, err := h.Result()
	resp := SearchResponse{
		ID:      h.ID(),
		Status:  status,
		Start:   h.Start(),
		Finish:  h.Finish(),
		DelayMs: h.Delay().Milliseconds(),
	}
	if status != search.Running {
		resp.Outcome = &out
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
