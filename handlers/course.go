package handlers

import (
	"net/http"
	"strconv"

	"tutorhub/models"
	"tutorhub/services/course"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourseHandler exposes course listing endpoints.
type CourseHandler struct {
	Service course.CourseService
}

// CreateCourseHandler handles POST /courses.
func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	tutorID := c.GetString("userID")
	var req models.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	crs, err := h.Service.CreateCourse(tutorID, req)
	if err != nil {
		utils.GetLogger().Warn("Course creation failed", zap.String("tutorID", tutorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, crs)
}

// UpdateCourseHandler handles PUT /courses/:id.
func (h *CourseHandler) UpdateCourseHandler(c *gin.Context) {
	tutorID := c.GetString("userID")
	courseID := c.Param("id")
	var req models.CourseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	crs, err := h.Service.UpdateCourse(tutorID, courseID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crs)
}

// RemoveCourseHandler handles DELETE /courses/:id.
func (h *CourseHandler) RemoveCourseHandler(c *gin.Context) {
	tutorID := c.GetString("userID")
	courseID := c.Param("id")
	if err := h.Service.RemoveCourse(tutorID, courseID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course removed"})
}

// GetCourseHandler handles GET /courses/:id.
func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	crs, err := h.Service.GetCourseByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, crs)
}

// ListByTutorHandler handles GET /tutors/:id/courses.
func (h *CourseHandler) ListByTutorHandler(c *gin.Context) {
	courses, err := h.Service.ListByTutor(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// SearchCoursesHandler handles GET /courses.
func (h *CourseHandler) SearchCoursesHandler(c *gin.Context) {
	filter := models.CourseFilter{
		Subject: c.Query("subject"),
		Level:   c.Query("level"),
		Text:    c.Query("q"),
	}
	if raw := c.Query("maxRate"); raw != "" {
		if maxRate, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxRate = maxRate
		}
	}
	courses, err := h.Service.Search(filter)
	if err != nil {
		utils.GetLogger().Error("Course search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, courses)
}
