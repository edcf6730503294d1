package http

import (
	"net/http"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetDeadlines(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context(), dashboardQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetDeadlines handles GET /dashboard/deadlines
func (h *dashboardHandlerImpl) GetDeadlines(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDeadlines(r.Context(), dashboardQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func dashboardQuery(r *http.Request) dashboard.DashboardQuery {
	q := dashboard.DashboardQuery{
		Limit:  r.URL.Query().Get("limit"),
		Locale: r.URL.Query().Get("locale"),
	}
	if month := r.URL.Query().Get("month"); month != "" {
		q.Month = &month
	}
	return q
}
