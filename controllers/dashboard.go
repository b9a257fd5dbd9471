package controllers

import (
	"net/http"

	"workshop-backend/config"
	"workshop-backend/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns quick stats plus the most recent jobs and
// parts orders.
func GetDashboardOverview(c *gin.Context) {
	var totalJobs, pendingJobs, inProgressJobs, completedJobs int64
	config.DB.Model(&models.Job{}).Count(&totalJobs)
	config.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusPending).Count(&pendingJobs)
	config.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusInProgress).Count(&inProgressJobs)
	config.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusCompleted).Count(&completedJobs)

	var totalBookings int64
	config.DB.Model(&models.Booking{}).Count(&totalBookings)

	var recentJobs []models.Job
	config.DB.Order("created_at DESC").Limit(5).Find(&recentJobs)

	var recentPartsOrders []models.Radiator
	config.DB.Order("created_at DESC").Limit(5).Find(&recentPartsOrders)

	c.JSON(http.StatusOK, gin.H{
		"totalJobs":         totalJobs,
		"pendingJobs":       pendingJobs,
		"inProgressJobs":    inProgressJobs,
		"completedJobs":     completedJobs,
		"totalBookings":     totalBookings,
		"recentJobs":        recentJobs,
		"recentPartsOrders": recentPartsOrders,
	})
}
