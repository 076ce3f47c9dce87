package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-emoji-ledger/internal/api/middleware"
	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/dto"
	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/ledger"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Grant gives emojis to a user (gateway only)
	// POST /api/v1/users/:user_id/grants
	Grant(c *gin.Context)

	// RecordActivity grants the periodic reward on the user's first activity in a period
	// POST /api/v1/users/:user_id/activity
	RecordActivity(c *gin.Context)

	// GetInventory returns a user's inventory as seen by the viewer
	// GET /api/v1/users/:user_id/inventory?viewer=<user_id>&grouped=<bool>
	GetInventory(c *gin.Context)

	// TogglePrivacy flips the user's inventory privacy
	// POST /api/v1/users/:user_id/privacy/toggle
	TogglePrivacy(c *gin.Context)

	// FindEmojiOwners lists users with public inventories holding the emoji
	// GET /api/v1/emojis/:emoji/owners
	FindEmojiOwners(c *gin.Context)

	// ListGroups lists the user's groups
	// GET /api/v1/users/:user_id/groups
	ListGroups(c *gin.Context)

	// AddToGroup files emojis under a group, creating it if needed
	// POST /api/v1/users/:user_id/groups
	AddToGroup(c *gin.Context)

	// RemoveFromGroup ungroups emojis
	// POST /api/v1/users/:user_id/groups/remove
	RemoveFromGroup(c *gin.Context)

	// GetUngrouped returns the emojis not in any group
	// GET /api/v1/users/:user_id/groups/ungrouped
	GetUngrouped(c *gin.Context)

	// GetGroupContents returns the emojis in a group
	// GET /api/v1/users/:user_id/groups/:name
	GetGroupContents(c *gin.Context)

	// RenameGroup renames a group
	// PATCH /api/v1/users/:user_id/groups/:name
	RenameGroup(c *gin.Context)

	// RepositionGroup moves a group to a new position
	// POST /api/v1/users/:user_id/groups/:name/position
	RepositionGroup(c *gin.Context)

	// CreateOffer proposes a trade to another user
	// POST /api/v1/users/:user_id/offers
	CreateOffer(c *gin.Context)

	// ListOffers returns the user's outgoing and incoming offers
	// GET /api/v1/users/:user_id/offers
	ListOffers(c *gin.Context)

	// WithdrawOffer removes the user's offer to the target
	// DELETE /api/v1/users/:user_id/offers/:target_id
	WithdrawOffer(c *gin.Context)

	// RejectOffer removes the offer the user received from the offerer
	// DELETE /api/v1/users/:user_id/offers/incoming/:offerer_id
	RejectOffer(c *gin.Context)

	// AcceptOffer starts accepting an offer and returns the confirmation prompt
	// POST /api/v1/users/:user_id/offers/incoming/:offerer_id/accept
	AcceptOffer(c *gin.Context)

	// AnswerConfirmation answers a confirmation prompt and returns the trade result
	// POST /api/v1/confirmations/:prompt_id
	AnswerConfirmation(c *gin.Context)

	// Recycle exchanges three emojis for a random one
	// POST /api/v1/users/:user_id/recycle
	Recycle(c *gin.Context)

	// GetTradeHistory returns the user's latest trades and recycles
	// GET /api/v1/users/:user_id/history?limit=<limit>
	GetTradeHistory(c *gin.Context)

	// UpsertMember mirrors a chat member into the directory (gateway only)
	// PUT /api/v1/members/:user_id
	UpsertMember(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// userParam reads a decimal user ID from the path, responding with 400 when it is malformed
func userParam(c *gin.Context, name string) (domain.UserID, bool) {
	user, err := domain.ParseUserID(c.Param(name))
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid %s", name), err.Error())
		return 0, false
	}
	return user, true
}

// validatable is a request body with its own validation
type validatable interface {
	Validate() error
}

// bindRequest decodes and validates a JSON body, responding on failure
func bindRequest(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func (h *handler) Grant(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.GrantRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.executor.Grant(c.Request.Context(), user, req.Emojis)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) RecordActivity(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	response, err := h.executor.RecordActivity(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetInventory(c *gin.Context) {
	owner, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	queryParams, err := ParseInventoryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	viewer, err := queryParams.ViewerID(owner)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if !middleware.CanActAs(c, viewer.String()) {
		respondForbidden(c, "You can only view inventories as yourself")
		return
	}

	response, err := h.executor.GetInventory(c.Request.Context(), viewer, owner, queryParams.Grouped)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) TogglePrivacy(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	response, err := h.executor.TogglePrivacy(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) FindEmojiOwners(c *gin.Context) {
	emoji := c.Param("emoji")
	if emoji == "" {
		respondBadRequest(c, "emoji is required")
		return
	}

	response, err := h.executor.FindEmojiOwners(c.Request.Context(), emoji)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListGroups(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	response, err := h.executor.ListGroups(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) AddToGroup(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.AddToGroupRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.executor.AddToGroup(c.Request.Context(), user, req.Group, req.Emojis)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RemoveFromGroup(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.RemoveFromGroupRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.executor.RemoveFromGroup(c.Request.Context(), user, req.Group, req.Emojis)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetUngrouped(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	response, err := h.executor.GetUngrouped(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetGroupContents(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	response, err := h.executor.GetGroupContents(c.Request.Context(), user, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RenameGroup(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.RenameGroupRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.executor.RenameGroup(c.Request.Context(), user, c.Param("name"), req.NewName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RepositionGroup(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.RepositionGroupRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.executor.RepositionGroup(c.Request.Context(), user, c.Param("name"), *req.Position)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CreateOffer(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.executor.CreateOffer(c.Request.Context(), user, req.TargetID, req.Offer, req.Request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) ListOffers(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	response, err := h.executor.ListOffers(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) WithdrawOffer(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}
	target, ok := userParam(c, "target_id")
	if !ok {
		return
	}

	response, err := h.executor.WithdrawOffer(c.Request.Context(), user, target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RejectOffer(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}
	offerer, ok := userParam(c, "offerer_id")
	if !ok {
		return
	}

	response, err := h.executor.RejectOffer(c.Request.Context(), user, offerer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) AcceptOffer(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}
	offerer, ok := userParam(c, "offerer_id")
	if !ok {
		return
	}

	// The body is optional: without roles the member directory is consulted
	var req dto.CallerRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
			return
		}
	}

	caller := ledger.Caller{User: user, Roles: req.Roles}
	response, err := h.executor.AcceptOffer(c.Request.Context(), caller, offerer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

func (h *handler) AnswerConfirmation(c *gin.Context) {
	promptID := c.Param("prompt_id")
	if promptID == "" {
		respondBadRequest(c, "prompt_id is required")
		return
	}

	var req dto.AnswerConfirmationRequest
	if !bindRequest(c, &req) {
		return
	}
	if !middleware.CanActAs(c, req.UserID.String()) {
		respondForbidden(c, "You can only answer your own confirmations")
		return
	}

	response, err := h.executor.AnswerConfirmation(c.Request.Context(), promptID, req.UserID, req.Choice)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) Recycle(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.RecycleRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.executor.Recycle(c.Request.Context(), user, req.Emojis)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTradeHistory(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	queryParams, err := ParseHistoryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetTradeHistory(c.Request.Context(), user, queryParams.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) UpsertMember(c *gin.Context) {
	user, ok := userParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.UpsertMemberRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := h.executor.UpsertMember(c.Request.Context(), user, req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-emoji-ledger-api",
	})
}
