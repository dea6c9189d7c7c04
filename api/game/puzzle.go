package gameapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/loopgrid/board"
	"github.com/beka-birhanu/loopgrid/game"
	"github.com/beka-birhanu/loopgrid/generator"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/gin-gonic/gin"
)

// PuzzleController serves puzzles, board checks and leaderboards. None of its routes need a player.
type PuzzleController struct {
	puzzleService i.PuzzleService
	solveService  i.SolveService
}

// NewPuzzleController initializes a PuzzleController.
func NewPuzzleController(ps i.PuzzleService, ss i.SolveService) (*PuzzleController, error) {
	if ps == nil || ss == nil {
		return nil, errors.New("puzzle controller: missing service")
	}
	return &PuzzleController{
		puzzleService: ps,
		solveService:  ss,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PuzzleController) RegisterPublic(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.GET("", pc.generate)
		puzzles.POST("/check", pc.check)
	}
	route.GET("/leaderboard", pc.leaderboard)
}

// RegisterProtected registers protected routes.
func (pc *PuzzleController) RegisterProtected(route *gin.RouterGroup) {}

// generate hands out a scrambled puzzle. The same seed always yields the same puzzle.
func (pc *PuzzleController) generate(ctx *gin.Context) {
	var query PuzzleQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, seed, err := pc.puzzleService.Generate(query.Width, query.Height, query.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newPuzzleResponse(b, seed))
}

// check validates a board sent by the client.
func (pc *PuzzleController) check(ctx *gin.Context) {
	var request CheckRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	masks, ok := intsToMasks(request.Cells)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": board.ErrInvalidMask.Error()})
		return
	}

	b, err := pc.puzzleService.Check(masks)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newCheckResponse(b))
}

// leaderboard lists the fastest players for a board size.
func (pc *PuzzleController) leaderboard(ctx *gin.Context) {
	var query LeaderboardQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := pc.solveService.Leaderboard(ctx.Request.Context(), query.Width, query.Height)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newLeaderboardResponse(entries))
}

// statusFor maps errors caused by the request to 400 and anything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrDimensionOutOfRange),
		errors.Is(err, generator.ErrInvalidDimensions),
		errors.Is(err, board.ErrNonRectangular),
		errors.Is(err, board.ErrInvalidMask):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
