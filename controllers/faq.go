package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hostel-management-api/models"
	"hostel-management-api/utils"
)

type faqReq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CreateFaq adds a FAQ entry.
func CreateFaq(c *gin.Context) {
	var req faqReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	faq := models.Faq{
		ID:       uuid.NewString(),
		Question: utils.SanitizeInput(req.Question),
		Answer:   utils.SanitizeInput(req.Answer),
		CreateAt: time.Now(),
	}

	if err := getDB().Create(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "FAQ created successfully!", "faq": faq})
}

// GetFaqs lists all FAQ entries.
func GetFaqs(c *gin.Context) {
	var faqs []models.Faq
	if err := getDB().Find(&faqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// UpdateFaq changes question and/or answer; omitted fields keep their
// current value.
func UpdateFaq(c *gin.Context) {
	id := c.Param("id")

	var req faqReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var faq models.Faq
	if err := getDB().Where("id = ?", id).First(&faq).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "FAQ not found!"})
		return
	}

	if req.Question != "" {
		faq.Question = utils.SanitizeInput(req.Question)
	}
	if req.Answer != "" {
		faq.Answer = utils.SanitizeInput(req.Answer)
	}
	now := time.Now()
	faq.UpdateAt = &now

	if err := getDB().Save(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ updated successfully!", "faq": faq})
}

// DeleteFaq removes a FAQ entry.
func DeleteFaq(c *gin.Context) {
	id := c.Param("id")

	var faq models.Faq
	if err := getDB().Where("id = ?", id).First(&faq).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "FAQ not found!"})
		return
	}

	if err := getDB().Where("id = ?", id).Delete(&models.Faq{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted successfully!"})
}
