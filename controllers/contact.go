package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-api/models"
)

type contactReq struct {
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Fax       string `json:"fax"`
	Emergency string `json:"emergency"`
}

// GetContact returns the hostel office contact card.
func GetContact(c *gin.Context) {
	var contact models.Contact
	if err := getDB().First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found!"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContact partially updates the contact card; omitted fields keep
// their current value.
func UpdateContact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var contact models.Contact
	if err := getDB().First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found!"})
		return
	}

	if req.Address != "" {
		contact.Address = req.Address
	}
	if req.Phone != "" {
		contact.Phone = req.Phone
	}
	if req.Fax != "" {
		contact.Fax = req.Fax
	}
	if req.Emergency != "" {
		contact.Emergency = req.Emergency
	}

	if err := getDB().Save(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact updated successfully!", "contact": contact})
}
