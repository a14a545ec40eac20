package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hostel-management-api/models"
	"hostel-management-api/utils"
)

type createComplaintReq struct {
	PhoneNumber string `json:"phone_number"`
	RoomNumber  string `json:"room_number"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type updateComplaintReq struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment"`
}

// CreateComplaint submits a complaint for the authenticated user. The
// submitter's display name and matric number are copied from the profile
// at submission time and never re-derived afterwards.
func CreateComplaint(c *gin.Context) {
	var req createComplaintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	submittedBy, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User must be authenticated to submit a complaint."})
		return
	}

	var user models.User
	if err := getDB().Where("user_id = ?", submittedBy).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
		return
	}
	if !user.HasCompleteProfile() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User data is incomplete!"})
		return
	}

	now := time.Now()
	complaint := models.Complaint{
		ID:          uuid.NewString(),
		SubmittedBy: submittedBy,
		Name:        user.Name,
		MatricNo:    user.MatricNo,
		PhoneNumber: req.PhoneNumber,
		RoomNumber:  req.RoomNumber,
		Category:    req.Category,
		Description: utils.SanitizeInput(req.Description),
		Priority:    req.Priority,
		Comment:     nil,
		Status:      models.StatusPending,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := getDB().Create(&complaint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	notifier.ComplaintSubmitted(&complaint)

	c.JSON(http.StatusCreated, gin.H{"message": "Complaint created successfully!", "complaint": complaint})
}

// UpdateComplaint overwrites status and comment on an existing complaint
// and notifies the original submitter. Any status string is accepted;
// there is no enforced transition graph.
func UpdateComplaint(c *gin.Context) {
	id := c.Param("id")

	var req updateComplaintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var complaint models.Complaint
	if err := getDB().Where("id = ?", id).First(&complaint).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Complaint not found!"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":    req.Status,
		"comment":   req.Comment,
		"update_at": now,
	}
	if err := getDB().Model(&models.Complaint{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	complaint.Status = req.Status
	complaint.Comment = req.Comment
	complaint.UpdateAt = now

	notifier.ComplaintUpdated(&complaint)

	c.JSON(http.StatusOK, gin.H{"message": "Complaint updated successfully!", "complaint": complaint})
}

// GetComplaints lists all complaints.
func GetComplaints(c *gin.Context) {
	var complaints []models.Complaint
	if err := getDB().Find(&complaints).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaintByID fetches a single complaint.
func GetComplaintByID(c *gin.Context) {
	id := c.Param("id")

	var complaint models.Complaint
	if err := getDB().Where("id = ?", id).First(&complaint).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No complaints found for complaintId: " + id})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// GetComplaintsByMatricNo lists a student's complaints. Zero matches is an
// empty list, not an error.
func GetComplaintsByMatricNo(c *gin.Context) {
	matricNo := c.Param("matricNo")

	var complaints []models.Complaint
	if err := getDB().Where("matric_no = ?", matricNo).Find(&complaints).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, complaints)
}
