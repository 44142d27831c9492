package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/handler"
	"github.com/LostaMasta45/biolink-sub000/internal/middleware"
	"github.com/LostaMasta45/biolink-sub000/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	postingHandler *handler.PostingHandler,
	catalogHandler *handler.CatalogHandler,
	clientHandler *handler.ClientHandler,
	invoiceHandler *handler.InvoiceHandler,
	ledgerHandler *handler.LedgerHandler,
	biolinkHandler *handler.BiolinkHandler,
	uploadHandler *handler.UploadHandler,
	jwtManager *jwt.Manager,
) {
	// Public bio-link page
	bio := router.Group("/bio")
	bio.GET("/:slug", biolinkHandler.PublicPage)
	bio.POST("/:slug/links/:id/click", biolinkHandler.TrackClick)

	api := router.Group("/api/v1")

	// Authentication endpoints (no auth required)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", middleware.JWTAuth(jwtManager), authHandler.Me)

	// Everything below requires an admin token
	admin := api.Group("", middleware.JWTAuth(jwtManager))

	postings := admin.Group("/postings")
	{
		postings.GET("", postingHandler.ListPostings)
		postings.POST("", postingHandler.CreatePosting)
		postings.GET("/:id", postingHandler.GetPosting)
		postings.PUT("/:id", postingHandler.UpdatePosting)
		postings.PATCH("/:id/status", postingHandler.UpdateStatus)
		postings.POST("/:id/advance", postingHandler.AdvanceStatus)
		postings.DELETE("/:id", postingHandler.DeletePosting)
	}

	catalog := admin.Group("/catalog")
	{
		catalog.GET("/packages", catalogHandler.ListPackages)
		catalog.GET("/addons", catalogHandler.ListAddons)
	}

	clients := admin.Group("/clients")
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:number", clientHandler.GetClient)
	}

	invoices := admin.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.POST("/from-posting/:id", invoiceHandler.CreateFromPosting)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
		invoices.GET("/:id/share", invoiceHandler.ShareInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
	}

	ledger := admin.Group("/ledger")
	{
		ledger.GET("", ledgerHandler.ListEntries)
		ledger.POST("", ledgerHandler.CreateEntry)
		ledger.GET("/summary", ledgerHandler.Summary)
		ledger.PUT("/:id", ledgerHandler.UpdateEntry)
		ledger.DELETE("/:id", ledgerHandler.DeleteEntry)
	}

	biolink := admin.Group("/biolink")
	{
		biolink.GET("/pages", biolinkHandler.ListPages)
		biolink.POST("/pages", biolinkHandler.CreatePage)
		biolink.PUT("/pages/:id", biolinkHandler.UpdatePage)
		biolink.DELETE("/pages/:id", biolinkHandler.DeletePage)
		biolink.POST("/pages/:id/links", biolinkHandler.CreateLink)
		biolink.PUT("/links/:id", biolinkHandler.UpdateLink)
		biolink.DELETE("/links/:id", biolinkHandler.DeleteLink)
	}

	admin.POST("/upload/poster", uploadHandler.UploadPoster)
}
