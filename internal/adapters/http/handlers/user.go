package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/dto"
	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/middleware"
	"github.com/Deepika-Sisodia/quote-verse/internal/app"
)

// UserHandler handles account and favorites HTTP endpoints.
type UserHandler struct {
	service *app.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service *app.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// Signup handles POST /api/v1/auth/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)

		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), app.SignupInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// Login handles POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)

		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// ToggleFavorite handles POST /api/v1/users/me/favorites/:id
func (h *UserHandler) ToggleFavorite(c *gin.Context) {
	favorites, favorited, err := h.service.ToggleFavorite(
		c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.FavoriteToggleResponse{
		Favorites: favorites,
		Favorited: favorited,
	})
}

// Favorites handles GET /api/v1/users/me/favorites
func (h *UserHandler) Favorites(c *gin.Context) {
	quotes, err := h.service.Favorites(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.QuotesResponse{Quotes: dto.NewQuoteListFromSlice(quotes)})
}

// Liked handles GET /api/v1/users/me/liked
func (h *UserHandler) Liked(c *gin.Context) {
	quotes, err := h.service.Liked(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.QuotesResponse{Quotes: dto.NewQuoteListFromSlice(quotes)})
}

// RegisterRoutes registers auth and user routes on the router group.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	auth := rg.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)

	me := rg.Group("/users/me")
	me.Use(requireAuth)
	me.GET("", h.Me)
	me.GET("/favorites", h.Favorites)
	me.GET("/liked", h.Liked)
	me.POST("/favorites/:id", h.ToggleFavorite)
}
