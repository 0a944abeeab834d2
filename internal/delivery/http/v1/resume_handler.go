package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/delivery/ws"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	maxFiles int
	hub      *ws.Hub
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, maxFiles int, uploadLimiter gin.HandlerFunc, hub *ws.Hub) {
	handler := &ResumeHandler{
		resumeUC: resumeUC,
		maxFiles: maxFiles,
		hub:      hub,
	}

	resumes := protected.Group("/resumes")
	resumes.Use(middleware.RequireRole(domain.RoleHR))
	{
		resumes.POST("/upload", uploadLimiter, handler.Upload)
		resumes.GET("", handler.List)
	}
}

// Upload godoc
// @Summary      Upload resumes (HR only)
// @Description  Multipart upload of up to 10 resume files under the "resumes" field. Returns 207 when some files fail.
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        resumes  formData  file  true  "Resume files"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /resumes/upload [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	hrID := c.GetInt64(string(domain.KeyUserID))
	if hrID == 0 {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.Error(apperror.InvalidArgument("No files uploaded"))
		return
	}

	files := form.File["resumes"]
	if len(files) > h.maxFiles {
		c.Error(apperror.InvalidArgument("Too many files in one request"))
		return
	}

	report, err := h.resumeUC.StoreResumes(c.Request.Context(), hrID, files)
	if err != nil {
		c.Error(err)
		return
	}

	if h.hub != nil && len(report.Uploaded) > 0 {
		h.hub.BroadcastToRole(domain.RoleHR, "resumes:uploaded", gin.H{
			"hr_id": hrID,
			"count": len(report.Uploaded),
		})
	}

	status := http.StatusOK
	if len(report.Failed) > 0 {
		status = http.StatusMultiStatus
	}
	response.Success(c, status, "Resumes processed", report)
}

// List godoc
// @Summary      List uploaded resumes (HR only)
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	hrID := c.GetInt64(string(domain.KeyUserID))
	if hrID == 0 {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	resumes, err := h.resumeUC.ListResumes(c.Request.Context(), hrID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resumes retrieved successfully", resumes)
}
