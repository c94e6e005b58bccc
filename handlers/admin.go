package handlers

import (
	"net/http"
	"time"

	"tutorhub/models"
	"tutorhub/services/admin"
	"tutorhub/services/storage"
	"tutorhub/services/tutor"
	"tutorhub/services/user"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes platform administration endpoints.
type AdminHandler struct {
	Service admin.AdminService
	Tutors  tutor.TutorService
	Users   user.UserService
	Storage storage.StorageService
}

// PlatformReportHandler handles GET /admin/report.
func (h *AdminHandler) PlatformReportHandler(c *gin.Context) {
	report, err := h.Service.PlatformReport()
	if err != nil {
		utils.GetLogger().Error("Report generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListPendingVerificationsHandler handles GET /admin/verifications.
func (h *AdminHandler) ListPendingVerificationsHandler(c *gin.Context) {
	tutors, err := h.Tutors.ListPendingVerifications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending verifications"})
		return
	}
	c.JSON(http.StatusOK, tutors)
}

// ReviewVerificationHandler handles POST /admin/verifications/:id.
func (h *AdminHandler) ReviewVerificationHandler(c *gin.Context) {
	var review models.VerificationReview
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Tutors.ReviewVerification(c.Param("id"), c.GetString("userID"), review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification reviewed"})
}

// VerificationDocURLHandler handles GET /admin/verifications/documents.
// Returns a short-lived signed URL for a stored document.
func (h *AdminHandler) VerificationDocURLHandler(c *gin.Context) {
	publicID := c.Query("documentId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing documentId"})
		return
	}
	url, err := h.Storage.GetSecureDownloadURL(publicID, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign document URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ListAccountsHandler handles GET /admin/accounts?role=.
func (h *AdminHandler) ListAccountsHandler(c *gin.Context) {
	role := c.DefaultQuery("role", models.RoleStudent)
	accounts, err := h.Users.GetAllByRole(role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// SuspendAccountHandler handles POST /admin/accounts/:id/suspend.
func (h *AdminHandler) SuspendAccountHandler(c *gin.Context) {
	var req struct {
		Suspended bool `json:"suspended"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetAccountSuspended(c.Param("id"), req.Suspended); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account updated"})
}
