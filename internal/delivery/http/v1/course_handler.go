package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/delivery/ws"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC     domain.CourseUsecase
	enrollmentUC domain.EnrollmentUsecase
	hub          *ws.Hub
}

func NewCourseHandler(rg *gin.RouterGroup, courseUC domain.CourseUsecase, enrollmentUC domain.EnrollmentUsecase, hub *ws.Hub) {
	handler := &CourseHandler{
		courseUC:     courseUC,
		enrollmentUC: enrollmentUC,
		hub:          hub,
	}

	courses := rg.Group("/courses")
	{
		courses.GET("", handler.List)
		courses.GET("/:id", handler.Get)
		courses.GET("/user/:identifier", handler.ListByUser)
		courses.GET("/user/:identifier/enrollments", handler.ListEnrollments)
		courses.POST("", handler.Create)
		courses.PUT("/:id", handler.Update)
		courses.DELETE("/:id", handler.Delete)
		courses.POST("/:id/enroll", handler.Enroll)
		courses.DELETE("/:id/enroll", handler.Unenroll)
	}
}

type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	UserID      *int64 `json:"user_id"`
	UserEmail   string `json:"user_email"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UserID      *int64  `json:"user_id"`
}

// EnrollRequest addresses the user either by email or by numeric id.
type EnrollRequest struct {
	UserEmail string `json:"user_email"`
	UserID    *int64 `json:"user_id"`
}

// List godoc
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseUC.ListCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", courses)
}

// Get godoc
// @Summary      Get a course by ID
// @Tags         courses
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	course, err := h.courseUC.GetCourse(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", course)
}

// ListByUser godoc
// @Summary      List courses owned by a user
// @Description  The user may be addressed by numeric id or email; ?by=email|id forces interpretation.
// @Tags         courses
// @Produce      json
// @Param        identifier  path      string  true   "User ID or email"
// @Param        by          query     string  false  "email or id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/user/{identifier} [get]
func (h *CourseHandler) ListByUser(c *gin.Context) {
	identifier := c.Param("identifier")
	hint := domain.IdentifierHint(c.Query("by"))

	courses, err := h.courseUC.ListCoursesByUser(c.Request.Context(), identifier, hint)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", courses)
}

// ListEnrollments godoc
// @Summary      List a user's enrollments
// @Description  Enrollments joined with course and instructor data, most recent first.
// @Tags         courses
// @Produce      json
// @Param        identifier  path      string  true   "User ID or email"
// @Param        by          query     string  false  "email or id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/user/{identifier}/enrollments [get]
func (h *CourseHandler) ListEnrollments(c *gin.Context) {
	identifier := c.Param("identifier")
	hint := domain.IdentifierHint(c.Query("by"))

	enrollments, err := h.enrollmentUC.ListForUser(c.Request.Context(), identifier, hint)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Success", enrollments)
}

// Create godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        course  body      CreateCourseRequest  true  "Course JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.InvalidArgument("Name and description are required"))
		return
	}

	course, err := h.courseUC.CreateCourse(c.Request.Context(), domain.CreateCourseInput{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
		UserEmail:   req.UserEmail,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Course created successfully", course)
}

// Update godoc
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Course ID"
// @Param        course  body      UpdateCourseRequest  true  "Partial course JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.InvalidArgument(err.Error()))
		return
	}

	course, err := h.courseUC.UpdateCourse(c.Request.Context(), id, domain.CourseUpdate{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Course updated successfully", course)
}

// Delete godoc
// @Summary      Delete a course
// @Description  Removes the course; its enrollments are cascade-deleted.
// @Tags         courses
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	if err := h.courseUC.DeleteCourse(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Course deleted successfully", nil)
}

// Enroll godoc
// @Summary      Enroll a user in a course
// @Description  Not idempotent: enrolling an already-enrolled user fails.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "Course ID"
// @Param        enroll  body      EnrollRequest  true  "user_email or user_id"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id}/enroll [post]
func (h *CourseHandler) Enroll(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	identifier, hint, err := bindEnrollIdentifier(c)
	if err != nil {
		c.Error(err)
		return
	}

	enrollment, err := h.enrollmentUC.Enroll(c.Request.Context(), courseID, identifier, hint)
	if err != nil {
		c.Error(err)
		return
	}

	if h.hub != nil {
		h.hub.BroadcastToUser(enrollment.UserID, "enrollment:created", enrollment)
	}
	response.Success(c, http.StatusCreated, "User enrolled in course successfully", enrollment)
}

// Unenroll godoc
// @Summary      Unenroll a user from a course
// @Description  Not idempotent: unenrolling a user who is not enrolled fails.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "Course ID"
// @Param        enroll  body      EnrollRequest  true  "user_email or user_id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id}/enroll [delete]
func (h *CourseHandler) Unenroll(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidArgument("Invalid ID parameter"))
		return
	}

	identifier, hint, err := bindEnrollIdentifier(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.enrollmentUC.Unenroll(c.Request.Context(), courseID, identifier, hint); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User unenrolled from course successfully", nil)
}

// bindEnrollIdentifier extracts the user identifier from the request
// body; user_email wins when both are supplied.
func bindEnrollIdentifier(c *gin.Context) (string, domain.IdentifierHint, error) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", domain.HintAuto, apperror.InvalidArgument("Either user_email or user_id is required")
	}

	if req.UserEmail != "" {
		return req.UserEmail, domain.HintEmail, nil
	}
	if req.UserID != nil {
		return strconv.FormatInt(*req.UserID, 10), domain.HintID, nil
	}
	return "", domain.HintAuto, apperror.InvalidArgument("Either user_email or user_id is required")
}
