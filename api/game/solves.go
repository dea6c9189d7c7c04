package gameapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/loopgrid/api/identity"
	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/beka-birhanu/loopgrid/service"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/gin-gonic/gin"
)

// SolveController records solves for signed in players.
type SolveController struct {
	solveService i.SolveService
}

// NewSolveController initializes a SolveController.
func NewSolveController(ss i.SolveService) (*SolveController, error) {
	if ss == nil {
		return nil, errors.New("solve controller: missing service")
	}
	return &SolveController{solveService: ss}, nil
}

// RegisterPublic registers public routes.
func (sc *SolveController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (sc *SolveController) RegisterProtected(route *gin.RouterGroup) {
	solves := route.Group("/solves")
	{
		solves.POST("", sc.submit)
		solves.GET("", sc.history)
	}
}

// submit verifies the claimed spins against the regenerated puzzle and records the solve.
func (sc *SolveController) submit(ctx *gin.Context) {
	playerID, username, ok := identity.Player(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player"})
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solve, err := sc.solveService.Submit(ctx.Request.Context(), i.SolveSubmission{
		PlayerID:   playerID,
		Username:   username,
		Width:      request.Width,
		Height:     request.Height,
		Seed:       request.Seed,
		Spins:      request.Spins,
		Moves:      request.Moves,
		DurationMs: request.DurationMs,
	})
	if err != nil {
		status := statusFor(err)
		if errors.Is(err, service.ErrNotSolved) ||
			errors.Is(err, service.ErrSpinShape) ||
			errors.Is(err, dmn.ErrInvalidDuration) ||
			errors.Is(err, dmn.ErrInvalidMoves) ||
			errors.Is(err, dmn.ErrInvalidSize) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newSolveResponse(solve))
}

// history lists the player's recent solves.
func (sc *SolveController) history(ctx *gin.Context) {
	playerID, _, ok := identity.Player(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player"})
		return
	}

	solves, err := sc.solveService.History(ctx.Request.Context(), playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading solves"})
		return
	}

	response := make([]SolveResponse, 0, len(solves))
	for _, s := range solves {
		response = append(response, newSolveResponse(s))
	}
	ctx.JSON(http.StatusOK, response)
}
