package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hostel-management-api/models"
	"hostel-management-api/utils"
)

type createFeedbackReq struct {
	ComplaintID string `json:"complaint_id"`
	Rating      int    `json:"rating"`
	Comments    string `json:"comments"`
}

type replyFeedbackReq struct {
	FeedbackID string `json:"feedback_id" binding:"required"`
	Reply      string `json:"reply"`
}

// CreateFeedback records feedback on a complaint and notifies the
// submitter. The complaint reference is advisory, not enforced.
func CreateFeedback(c *gin.Context) {
	var req createFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	submittedBy, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User must be authenticated to submit feedback."})
		return
	}

	now := time.Now()
	feedback := models.Feedback{
		ID:          uuid.NewString(),
		ComplaintID: req.ComplaintID,
		Rating:      req.Rating,
		Comments:    utils.SanitizeInput(req.Comments),
		SubmittedBy: submittedBy,
		Reply:       nil,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := getDB().Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	notifier.FeedbackSubmitted(&feedback)

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully!", "feedback": feedback})
}

// ReplyFeedback attaches an admin reply. Repeat calls overwrite the reply;
// rating, comments, submitter and creation time are untouched.
func ReplyFeedback(c *gin.Context) {
	var req replyFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var feedback models.Feedback
	if err := getDB().Where("id = ?", req.FeedbackID).First(&feedback).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Feedback not found"})
		return
	}

	now := time.Now()
	if err := getDB().Model(&models.Feedback{}).Where("id = ?", req.FeedbackID).
		Updates(map[string]interface{}{
			"reply":     req.Reply,
			"update_at": now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	feedback.Reply = &req.Reply
	feedback.UpdateAt = now

	notifier.FeedbackReplied(&feedback)

	c.JSON(http.StatusOK, gin.H{"message": "Reply added successfully!", "feedback": feedback})
}

// GetFeedbacks lists all feedback records.
func GetFeedbacks(c *gin.Context) {
	var feedbacks []models.Feedback
	if err := getDB().Find(&feedbacks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

// GetFeedbackByID fetches a single feedback record.
func GetFeedbackByID(c *gin.Context) {
	id := c.Param("id")

	var feedback models.Feedback
	if err := getDB().Where("id = ?", id).First(&feedback).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Feedback not found"})
		return
	}
	c.JSON(http.StatusOK, feedback)
}
