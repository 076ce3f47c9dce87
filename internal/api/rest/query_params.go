package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
)

// InventoryQueryParams holds query parameters for GET /users/:user_id/inventory
type InventoryQueryParams struct {
	// Viewer is the decimal ID of the user looking. Defaults to the owner.
	Viewer  string `form:"viewer"`
	Grouped bool   `form:"grouped,default=false"`
}

// ParseInventoryQuery parses query parameters for GET /users/:user_id/inventory
func ParseInventoryQuery(c *gin.Context) (*InventoryQueryParams, error) {
	var params InventoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// ViewerID returns the viewer, falling back to the owner
func (p *InventoryQueryParams) ViewerID(owner domain.UserID) (domain.UserID, error) {
	if p.Viewer == "" {
		return owner, nil
	}
	viewer, err := domain.ParseUserID(p.Viewer)
	if err != nil {
		return 0, fmt.Errorf("invalid viewer: %w", err)
	}
	return viewer, nil
}

// HistoryQueryParams holds query parameters for GET /users/:user_id/history
type HistoryQueryParams struct {
	Limit int `form:"limit,default=20"`
}

// ParseHistoryQuery parses query parameters for GET /users/:user_id/history
func ParseHistoryQuery(c *gin.Context) (*HistoryQueryParams, error) {
	var params HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate validates the query parameters
func (p *HistoryQueryParams) Validate() error {
	if p.Limit < 1 || p.Limit > constants.MAX_HISTORY_LIMIT {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_HISTORY_LIMIT)
	}
	return nil
}
