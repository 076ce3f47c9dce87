package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-emoji-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		// Any authenticated caller may look up owners and view inventories
		v1.GET("/emojis/:emoji/owners", handler.FindEmojiOwners)
		v1.GET("/users/:user_id/inventory", handler.GetInventory)

		// Confirmations carry the answering user in the body
		v1.POST("/confirmations/:prompt_id", handler.AnswerConfirmation)

		// Gateway only
		v1.POST("/users/:user_id/grants", middleware.APIKeyAuth(authCfg), handler.Grant)
		v1.PUT("/members/:user_id", middleware.APIKeyAuth(authCfg), handler.UpsertMember)

		// The remaining routes act for the user in the path
		user := v1.Group("/users/:user_id", middleware.RequireSelf("user_id"))
		{
			user.POST("/activity", handler.RecordActivity)
			user.POST("/privacy/toggle", handler.TogglePrivacy)

			user.GET("/groups", handler.ListGroups)
			user.POST("/groups", handler.AddToGroup)
			user.POST("/groups/remove", handler.RemoveFromGroup)
			user.GET("/groups/ungrouped", handler.GetUngrouped)
			user.GET("/groups/:name", handler.GetGroupContents)
			user.PATCH("/groups/:name", handler.RenameGroup)
			user.POST("/groups/:name/position", handler.RepositionGroup)

			user.GET("/offers", handler.ListOffers)
			user.POST("/offers", handler.CreateOffer)
			user.DELETE("/offers/:target_id", handler.WithdrawOffer)
			user.DELETE("/offers/incoming/:offerer_id", handler.RejectOffer)
			user.POST("/offers/incoming/:offerer_id/accept", handler.AcceptOffer)

			user.POST("/recycle", handler.Recycle)
			user.GET("/history", handler.GetTradeHistory)
		}
	}
}
