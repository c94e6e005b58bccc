package handlers

import (
	"io"
	"net/http"

	"tutorhub/models"
	"tutorhub/services/storage"
	"tutorhub/services/tutor"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxAvailabilityPayload caps the raw availability body at 256 KiB.
const maxAvailabilityPayload = 256 << 10

// TutorHandler exposes tutor profile, availability and verification endpoints.
type TutorHandler struct {
	Service tutor.TutorService
	Storage storage.StorageService
}

// GetTutorHandler handles GET /tutors/:id.
func (h *TutorHandler) GetTutorHandler(c *gin.Context) {
	tutorID := c.Param("id")
	t, err := h.Service.GetTutorByID(tutorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateProfileHandler handles PUT /tutors/me/profile.
func (h *TutorHandler) UpdateProfileHandler(c *gin.Context) {
	tutorID := c.GetString("userID")
	var req models.TutorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	t, err := h.Service.UpdateProfile(tutorID, req)
	if err != nil {
		utils.GetLogger().Error("Tutor profile update failed", zap.String("tutorID", tutorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// SetAvailabilityHandler handles PUT /tutors/me/availability. The body is
// stored verbatim as the tutor's availability payload.
func (h *TutorHandler) SetAvailabilityHandler(c *gin.Context) {
	tutorID := c.GetString("userID")
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAvailabilityPayload))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	if err := h.Service.SetAvailability(tutorID, string(raw)); err != nil {
		utils.GetLogger().Error("Availability update failed", zap.String("tutorID", tutorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// GetAvailabilityHandler handles GET /tutors/:id/availability. Returns the
// resolved upcoming schedule, never the raw payload.
func (h *TutorHandler) GetAvailabilityHandler(c *gin.Context) {
	tutorID := c.Param("id")
	view, err := h.Service.GetAvailability(tutorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UploadVerificationDocHandler handles POST /tutors/me/verification/documents.
func (h *TutorHandler) UploadVerificationDocHandler(c *gin.Context) {
	tutorID := c.GetString("userID")
	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing document file"})
		return
	}
	publicID, err := h.Storage.UploadVerificationDoc(c.Request.Context(), tutorID, file)
	if err != nil {
		utils.GetLogger().Error("Verification doc upload failed", zap.String("tutorID", tutorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"documentId": publicID})
}

// SubmitVerificationHandler handles POST /tutors/me/verification.
func (h *TutorHandler) SubmitVerificationHandler(c *gin.Context) {
	tutorID := c.GetString("userID")
	var req models.VerificationSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SubmitVerification(tutorID, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification submitted"})
}
