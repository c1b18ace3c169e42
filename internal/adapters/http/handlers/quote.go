// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/dto"
	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/middleware"
	"github.com/Deepika-Sisodia/quote-verse/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// List handles GET /api/v1/quotes
// Supports search, category and sort filters plus page/limit paging.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, page, err := h.service.List(c.Request.Context(), app.ListParams{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
	})
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes, page))
}

// Get handles GET /api/v1/quotes/:id
func (h *QuoteHandler) Get(c *gin.Context) {
	quote, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Create handles POST /api/v1/quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)

		return
	}

	quote, err := h.service.Create(c.Request.Context(), middleware.UserID(c), app.CreateQuoteInput{
		Text:     req.Text,
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// Update handles PATCH /api/v1/quotes/:id
func (h *QuoteHandler) Update(c *gin.Context) {
	var req dto.UpdateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)

		return
	}

	quote, err := h.service.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c),
		app.UpdateQuoteInput{
			Text:     req.Text,
			Author:   req.Author,
			Category: req.Category,
			Tags:     req.Tags,
		})
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Delete handles DELETE /api/v1/quotes/:id
func (h *QuoteHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleLike handles POST /api/v1/quotes/:id/like
func (h *QuoteHandler) ToggleLike(c *gin.Context) {
	likes, liked, err := h.service.ToggleLike(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{
		Likes: likes,
		Liked: liked,
	})
}

// QuoteOfDay handles GET /api/v1/quote-of-the-day
// The pick is deterministic per calendar day; every replica serves the
// same quote.
func (h *QuoteHandler) QuoteOfDay(c *gin.Context) {
	quote, err := h.service.QuoteOfDay(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.QuoteOfDayResponse{
		Date:  time.Now().Format("2006-01-02"),
		Quote: dto.NewQuoteResponse(quote),
	})
}

// Categories handles GET /api/v1/categories
func (h *QuoteHandler) Categories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// RegisterRoutes registers quote routes on the given router group.
// Mutating routes require authentication.
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/quote-of-the-day", h.QuoteOfDay)
	rg.GET("/categories", h.Categories)

	quotes := rg.Group("/quotes")
	quotes.GET("", h.List)
	quotes.GET("/:id", h.Get)

	protected := quotes.Group("")
	protected.Use(requireAuth)
	protected.POST("", h.Create)
	protected.PATCH("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
	protected.POST("/:id/like", h.ToggleLike)
}
