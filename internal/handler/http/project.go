package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const maxProjectFormMemory = 10 << 20

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Progress(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{projectService: projectService}
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp.Localize(r.URL.Query().Get("locale"))
	response.Success(w, resp)
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleDecodeError(w, err)
		return
	}

	resp, err := h.projectService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp.Localize(r.URL.Query().Get("locale"))
	response.Created(w, "Project created successfully", resp)
}

// Get implements ProjectHandler.
func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.projectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp.Localize(r.URL.Query().Get("locale"))
	response.Success(w, resp)
}

// Update implements ProjectHandler. It accepts the edit form as multipart,
// urlencoded or JSON.
func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var (
		req project.UpdateProjectRequest
		err error
	)

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err = r.ParseMultipartForm(maxProjectFormMemory); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Invalid form data", nil)
			return
		}
		req, err = updateRequestFromForm(r.PostForm)
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err = r.ParseForm(); err != nil {
			response.BadRequest(w, "Invalid form data", nil)
			return
		}
		req, err = updateRequestFromForm(r.PostForm)
	default:
		err = json.NewDecoder(r.Body).Decode(&req)
	}
	if err != nil {
		handleDecodeError(w, err)
		return
	}

	req.ID = chi.URLParam(r, "id")
	resp, err := h.projectService.UpdateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp.Localize(r.URL.Query().Get("locale"))
	response.SuccessWithMessage(w, "Project updated successfully", resp)
}

// UpdateStatus implements ProjectHandler.
func (h *projectHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.projectService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp.Localize(r.URL.Query().Get("locale"))
	response.SuccessWithMessage(w, "Project status updated", resp)
}

// Delete implements ProjectHandler.
func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// Progress implements ProjectHandler.
func (h *projectHandlerImpl) Progress(w http.ResponseWriter, r *http.Request) {
	resp, err := h.projectService.GetProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func handleDecodeError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.Is(err, project.ErrUnknownRole) || errors.As(err, &validationErrs) {
		response.HandleError(w, err)
		return
	}
	response.BadRequest(w, "Invalid request body", nil)
}

// updateRequestFromForm reads the edit form. Only submitted fields are set;
// teamMembers and milestonePayments arrive as JSON-encoded strings.
func updateRequestFromForm(form url.Values) (project.UpdateProjectRequest, error) {
	var (
		req  project.UpdateProjectRequest
		errs validator.ValidationErrors
	)

	field := func(key string) (string, bool) {
		values, ok := form[key]
		if !ok || len(values) == 0 {
			return "", false
		}
		return values[0], true
	}

	if v, ok := field("name"); ok {
		req.Name = &v
	}
	if v, ok := field("client"); ok {
		req.Client = &v
	}
	if v, ok := field("category"); ok {
		req.Category = &v
	}
	if v, ok := field("status"); ok {
		req.Status = &v
	}
	if v, ok := field("deadlineDate"); ok {
		if strings.TrimSpace(v) != "" {
			v = datemath.InputOrPlaceholder(v, v)
		}
		req.Deadline = &v
	}
	if v, ok := field("projectCost"); ok {
		cost := numeric.Parse(v)
		req.ProjectCost = &cost
	}
	if v, ok := field("milestone"); ok {
		count, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, validator.Invalid("milestone", "milestone must be a whole number"))
		} else {
			req.Milestone = &count
		}
	}
	if v, ok := field("teamMembers"); ok && strings.TrimSpace(v) != "" {
		var team project.TeamMembers
		if err := json.Unmarshal([]byte(v), &team); err != nil {
			if errors.Is(err, project.ErrUnknownRole) {
				return req, err
			}
			errs = append(errs, validator.Invalid("teamMembers", "teamMembers must be a JSON object of role to names"))
		} else {
			req.TeamMembers = &team
		}
	}
	if v, ok := field("milestonePayments"); ok && strings.TrimSpace(v) != "" {
		var payments []project.MilestonePayment
		if err := json.Unmarshal([]byte(v), &payments); err != nil {
			errs = append(errs, validator.Invalid("milestonePayments", "milestonePayments must be a JSON array"))
		} else {
			req.MilestonePayments = &payments
		}
	}

	if len(errs) > 0 {
		return req, errs
	}
	return req, nil
}
