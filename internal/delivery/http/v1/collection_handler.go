package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// CollectionHandler serves job collections, the HR-side grouping
// resource. Same shape as courses but without enrollment.
type CollectionHandler struct {
	collectionUC domain.CollectionUsecase
}

func NewCollectionHandler(rg *gin.RouterGroup, collectionUC domain.CollectionUsecase) {
	handler := &CollectionHandler{collectionUC: collectionUC}

	collections := rg.Group("/collections")
	{
		collections.GET("", handler.List)
		collections.GET("/:id", handler.Get)
		collections.GET("/user/:identifier", handler.ListByUser)
		collections.POST("", handler.Create)
		collections.PUT("/:id", handler.Update)
		collections.DELETE("/:id", handler.Delete)
	}
}

type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	UserID      *int64 `json:"user_id"`
	UserEmail   string `json:"user_email"`
}

type UpdateCollectionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UserID      *int64  `json:"user_id"`
}

// List godoc
// @Summary      List job collections
// @Tags         collections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.collectionUC.ListCollections(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", collections)
}

// Get godoc
// @Summary      Get a job collection by ID
// @Tags         collections
// @Produce      json
// @Param        id   path      int  true  "Collection ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	collection, err := h.collectionUC.GetCollection(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", collection)
}

// ListByUser godoc
// @Summary      List job collections owned by a user
// @Tags         collections
// @Produce      json
// @Param        identifier  path      string  true   "User ID or email"
// @Param        by          query     string  false  "email or id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/user/{identifier} [get]
func (h *CollectionHandler) ListByUser(c *gin.Context) {
	identifier := c.Param("identifier")
	hint := domain.IdentifierHint(c.Query("by"))

	collections, err := h.collectionUC.ListCollectionsByUser(c.Request.Context(), identifier, hint)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", collections)
}

// Create godoc
// @Summary      Create a job collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        collection  body      CreateCollectionRequest  true  "Collection JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.InvalidArgument("Name and description are required"))
		return
	}

	collection, err := h.collectionUC.CreateCollection(c.Request.Context(), domain.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
		UserEmail:   req.UserEmail,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Collection created successfully", collection)
}

// Update godoc
// @Summary      Update a job collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        id          path      int                      true  "Collection ID"
// @Param        collection  body      UpdateCollectionRequest  true  "Partial collection JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id} [put]
func (h *CollectionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	var req UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.InvalidArgument(err.Error()))
		return
	}

	collection, err := h.collectionUC.UpdateCollection(c.Request.Context(), id, domain.CollectionUpdate{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Collection updated successfully", collection)
}

// Delete godoc
// @Summary      Delete a job collection
// @Tags         collections
// @Produce      json
// @Param        id   path      int  true  "Collection ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	if err := h.collectionUC.DeleteCollection(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Collection deleted successfully", nil)
}
