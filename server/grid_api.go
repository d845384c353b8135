package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/wavepath/grid"
	"github.com/katalvlaran/wavepath/search"
)

// maxTracked bounds the number of searches kept for lookup; the oldest
// finished ones are forgotten first.
const maxTracked = 64

// GridController exposes a search.Controller over HTTP.
type GridController struct {
	search       *search.Controller
	events       *Broadcaster
	logger       *slog.Logger
	defaultDelay time.Duration

	mu       sync.Mutex
	searches map[uuid.UUID]*search.Handle
	order    []uuid.UUID
}

// NewGridController wires ctrl and its change feed. events may be nil, in
// which case /events is not registered.
func NewGridController(ctrl *search.Controller, events *Broadcaster, defaultDelay time.Duration, logger *slog.Logger) *GridController {
	if logger == nil {
		logger = slog.Default()
	}
	return &GridController{
		search:       ctrl,
		events:       events,
		logger:       logger,
		defaultDelay: defaultDelay,
		searches:     make(map[uuid.UUID]*search.Handle),
	}
}

// Register adds the grid and search routes to route.
func (gc *GridController) Register(route *gin.RouterGroup) {
	route.GET("/grid", gc.snapshot)
	route.PUT("/blocks", gc.setBlock)
	route.POST("/walls", gc.placeWall)

	reset := route.Group("/reset")
	{
		reset.POST("/path", gc.reset(gc.search.ResetPath))
		reset.POST("/walls", gc.reset(gc.search.ResetWalls))
		reset.POST("/all", gc.reset(gc.search.ResetAll))
	}

	searches := route.Group("/searches")
	{
		searches.POST("", gc.startSearch)
		searches.GET("/:ID", gc.searchInfo)
		searches.DELETE("/:ID", gc.cancelSearch)
	}

	if gc.events != nil {
		route.GET("/events", gc.streamEvents)
	}
}

// snapshot returns the current grid.
func (gc *GridController) snapshot(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gc.search.Grid().Snapshot())
}

// setBlock overwrites one cell.
func (gc *GridController) setBlock(ctx *gin.Context) {
	var request BlockRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !gc.search.Grid().InBounds(grid.Cell{X: *request.X, Y: *request.Y}) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "cell out of bounds"})
		return
	}
	if err := gc.search.SetBlock(*request.X, *request.Y, *request.Type); err != nil {
		gc.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// placeWall turns an Empty cell into a Wall.
func (gc *GridController) placeWall(ctx *gin.Context) {
	var request WallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	placed, err := gc.search.PlaceWall(*request.X, *request.Y)
	if err != nil {
		gc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, WallResponse{Placed: placed})
}

func (gc *GridController) reset(fn func() error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := fn(); err != nil {
			gc.fail(ctx, err)
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}

// startSearch launches a search and answers 202 with its id.
func (gc *GridController) startSearch(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delay := gc.defaultDelay
	if request.DelayMs != nil {
		delay = time.Duration(*request.DelayMs) * time.Millisecond
	}

	// The search outlives the request; Shutdown cancels it.
	h, err := gc.search.Start(context.Background(), *request.Start, *request.Finish, delay)
	if err != nil {
		gc.fail(ctx, err)
		return
	}
	gc.track(h)

	ctx.JSON(http.StatusAccepted, newSearchResponse(h))
}

// searchInfo reports a tracked search.
func (gc *GridController) searchInfo(ctx *gin.Context) {
	h, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newSearchResponse(h))
}

// cancelSearch stops a search and waits until it released the grid.
func (gc *GridController) cancelSearch(ctx *gin.Context) {
	h, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	h.Cancel()
	select {
	case <-h.Done():
	case <-ctx.Request.Context().Done():
		return
	}
	ctx.JSON(http.StatusOK, newSearchResponse(h))
}

// streamEvents sends the current snapshot, then one "changed" event with a
// fresh snapshot per observed change, until the client goes away.
func (gc *GridController) streamEvents(ctx *gin.Context) {
	changes, unsubscribe := gc.events.Subscribe()
	defer unsubscribe()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.SSEvent("snapshot", gc.search.Grid().Snapshot())
	ctx.Writer.Flush()

	done := ctx.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case _, open := <-changes:
			if !open {
				return
			}
			ctx.SSEvent("changed", gc.search.Grid().Snapshot())
			ctx.Writer.Flush()
		}
	}
}

// Shutdown cancels any running search.
func (gc *GridController) Shutdown() {
	gc.search.Cancel()
}

func (gc *GridController) lookup(ctx *gin.Context) (*search.Handle, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid search id"})
		return nil, false
	}
	gc.mu.Lock()
	h, ok := gc.searches[ID]
	gc.mu.Unlock()
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "search not found"})
		return nil, false
	}
	return h, true
}

func (gc *GridController) track(h *search.Handle) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	gc.searches[h.ID()] = h
	gc.order = append(gc.order, h.ID())
	for i := 0; len(gc.order) > maxTracked && i < len(gc.order); {
		old := gc.searches[gc.order[i]]
		if old.Status() == search.Running {
			i++
			continue
		}
		delete(gc.searches, gc.order[i])
		gc.order = append(gc.order[:i], gc.order[i+1:]...)
	}
}

// fail maps controller errors onto status codes.
func (gc *GridController) fail(ctx *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, search.ErrSearchInProgress):
		code = http.StatusConflict
	case errors.Is(err, search.ErrInvalidGrid), errors.Is(err, search.ErrNegativeDelay):
		code = http.StatusBadRequest
	}
	if code == http.StatusInternalServerError {
		gc.logger.Error("request failed", slog.String("path", ctx.FullPath()), slog.Any("error", err))
	}
	ctx.JSON(code, gin.H{"error": err.Error()})
}
