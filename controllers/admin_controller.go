package controllers

import (
	"strconv"

	"estore-api/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	statsService *services.StatsService
}

func NewAdminController(statsService *services.StatsService) *AdminController {
	return &AdminController{statsService: statsService}
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description User, order and product counters plus recent sign-ins (Admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *AdminController) GetDashboard(c *gin.Context) {
	summary, err := ctrl.statsService.DashboardSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Dashboard retrieved successfully", summary)
}

// GetAnalytics godoc
// @Summary Admin analytics
// @Description Revenue, order and product rollups over a trailing window (Admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param rangeDays query int false "Trailing window in days (default 30)"
// @Success 200 {object} models.Response
// @Router /admin/analytics [get]
func (ctrl *AdminController) GetAnalytics(c *gin.Context) {
	rangeDays, _ := strconv.Atoi(c.DefaultQuery("rangeDays", "30"))

	summary, err := ctrl.statsService.AnalyticsSummary(c.Request.Context(), rangeDays)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Analytics retrieved successfully", summary)
}
