package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(rg *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := rg.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:id", handler.Get)
		users.POST("", handler.Create)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Age   *int   `json:"age"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Age   *int    `json:"age"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", users)
}

// Get godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	user, err := h.userUC.GetUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", user)
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      CreateUserRequest  true  "User JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.InvalidArgument("Name and email are required"))
		return
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}
	if err := h.userUC.CreateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created successfully", user)
}

// Update godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        user  body      UpdateUserRequest  true  "Partial user JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.InvalidArgument("Invalid email format"))
		return
	}

	user, err := h.userUC.UpdateUser(c.Request.Context(), id, domain.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully", user)
}

// Delete godoc
// @Summary      Delete a user
// @Description  Removes the user; their enrollments are cascade-deleted.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	if err := h.userUC.DeleteUser(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
