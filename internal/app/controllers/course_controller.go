package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// videoFormField is the multipart file part carrying the course video
const videoFormField = "video"

// parseCourseID parses the course ID from the request path
func parseCourseID(ctx *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidCourseID
	}
	return id, nil
}

// parseInstructorID parses the instructor ID from the request path
func parseInstructorID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("instructorId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidInstructorID
	}
	return id, nil
}

// CourseController handles course operations
type CourseController struct {
	courseService services.CourseService
	maxVideoBytes int64
}

// NewCourseController creates a new CourseController. maxVideoBytes bounds
// uploaded videos; 0 disables the limit.
func NewCourseController(courseService services.CourseService, maxVideoBytes int64) *CourseController {
	return &CourseController{
		courseService: courseService,
		maxVideoBytes: maxVideoBytes,
	}
}

// bindCourseRequest binds a JSON or multipart body into req and returns the
// uploaded video, if any. A multipart video part takes precedence over the
// base64 JSON field. An empty body leaves req at its zero value.
func (c *CourseController) bindCourseRequest(ctx *gin.Context, req interface{}) ([]byte, bool, error) {
	if c.maxVideoBytes > 0 {
		// Room for base64 inflation and the other fields.
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxVideoBytes*2+(1<<20))
	}

	isMultipart := strings.HasPrefix(ctx.ContentType(), binding.MIMEMultipartPOSTForm)
	var err error
	if isMultipart {
		err = ctx.ShouldBindWith(req, binding.FormMultipart)
	} else if ctx.Request.ContentLength != 0 {
		err = ctx.ShouldBindJSON(req)
		if errors.Is(err, io.EOF) {
			// Chunked request without a body
			err = nil
		}
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, false, apperrors.ErrVideoTooLarge
		}
		return nil, false, apperrors.NewCustomError(apperrors.ErrBadRequest, "Invalid request format").
			WithDetails(map[string]interface{}{"request": err.Error()})
	}

	if err := middleware.ValidateStruct(req); err != nil {
		return nil, false, err
	}

	if !isMultipart {
		return nil, false, nil
	}

	fileHeader, err := ctx.FormFile(videoFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewCustomError(apperrors.ErrBadRequest, "Invalid video upload").
			WithDetails(map[string]interface{}{videoFormField: err.Error()})
	}
	video, err := c.readVideo(fileHeader)
	if err != nil {
		return nil, false, err
	}
	return video, true, nil
}

// readVideo reads an uploaded video part into memory, enforcing the size limit.
func (c *CourseController) readVideo(fileHeader *multipart.FileHeader) ([]byte, error) {
	if c.maxVideoBytes > 0 && fileHeader.Size > c.maxVideoBytes {
		return nil, apperrors.ErrVideoTooLarge
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if c.maxVideoBytes > 0 {
		r = io.LimitReader(f, c.maxVideoBytes+1)
	}
	video, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if c.maxVideoBytes > 0 && int64(len(video)) > c.maxVideoBytes {
		return nil, apperrors.ErrVideoTooLarge
	}
	if video == nil {
		video = []byte{}
	}
	return video, nil
}

// CreateCourse godoc
// @Summary Create a new course
// @Description Create a course owned by the authenticated caller. Accepts JSON (video as base64) or multipart/form-data (video as file part).
// @Tags courses
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param course body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	caller, err := middleware.CallerFromContext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateCourseRequest
	video, uploaded, err := c.bindCourseRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if uploaded {
		req.Video = video
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(course, "Course created successfully"))
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Partially update a course. Omitted fields are left unchanged; fields sent empty or zero are applied. Only the owner or an admin may update.
// @Tags courses
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID (UUID)"
// @Param course body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	caller, err := middleware.CallerFromContext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseCourseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateCourseRequest
	video, uploaded, err := c.bindCourseRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if uploaded {
		req.Video = video
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(course, "Course updated successfully"))
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Delete a course. Only the owner or an admin may delete.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID (UUID)"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	caller, err := middleware.CallerFromContext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseCourseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(nil, "Course deleted successfully"))
}

// GetAllCourses godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourseByID godoc
// @Summary Get a course by ID
// @Description The stored video, if any, is returned inline as a data URL.
// @Tags courses
// @Produce json
// @Param id path string true "Course ID (UUID)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := parseCourseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// SearchCourses godoc
// @Summary Search courses by title
// @Description Case-insensitive substring match on the course title.
// @Tags courses
// @Produce json
// @Param query path string true "Text the title must contain"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/search/{query} [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	courses, err := c.courseService.SearchCourses(ctx.Request.Context(), ctx.Param("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCoursesByInstructor godoc
// @Summary List an instructor's courses
// @Tags courses
// @Produce json
// @Param instructorId path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/instructor/{instructorId} [get]
func (c *CourseController) GetCoursesByInstructor(ctx *gin.Context) {
	instructorID, err := parseInstructorID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.courseService.GetCoursesByInstructor(ctx.Request.Context(), instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}
