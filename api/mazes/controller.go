package mazes

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/mazegen-api/api/identity"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController handles HTTP requests for maze generation and saved
// mazes.
type MazeController struct {
	mazeService i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeManager) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller requires a maze service")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/generate", mc.generate)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.save)
		mazes.GET("/", mc.listMine)
		mazes.GET("/:ID", mc.byID)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := request.Config()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazeService.Generate(ctx, cfg)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimension) || errors.Is(err, service.ErrDimensionTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

// save persists a maze for the authenticated user.
func (mc *MazeController) save(ctx *gin.Context) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request SaveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := request.Maze.Maze()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := mc.mazeService.Save(ctx, userID, request.Name, m)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newStoredMazeResponse(stored))
}

// listMine lists the authenticated user's saved mazes.
func (mc *MazeController) listMine(ctx *gin.Context) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	stored, err := mc.mazeService.ByOwner(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}

	summaries := make([]MazeSummaryResponse, 0, len(stored))
	for _, s := range stored {
		summaries = append(summaries, newMazeSummaryResponse(s))
	}
	ctx.JSON(http.StatusOK, summaries)
}

// byID retrieves one saved maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	stored, err := mc.mazeService.ByID(ctx, ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No maze"})
		return
	}

	ctx.JSON(http.StatusOK, newStoredMazeResponse(stored))
}

// userIDFromContext extracts the caller's ID from the JWT claims the
// authorization middleware attached.
func userIDFromContext(ctx *gin.Context) (uuid.UUID, error) {
	rawClaims, ok := ctx.Get(identity.ContextUserClaims)
	if !ok {
		return uuid.Nil, errors.New("no claims in context")
	}

	claims, ok := rawClaims.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed claims")
	}

	rawID, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errors.New("no user id claim")
	}

	return uuid.Parse(rawID)
}
