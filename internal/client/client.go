// Package client is a typed caller of the bizadmin REST API. Inputs are
// checked locally before any request is sent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/payslip"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/shopspring/decimal"
)

const apiPrefix = "/api/v1"

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient. Timeouts are the caller's
// concern, through the client or the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithToken starts the client with an existing session token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current session token, empty before Login.
func (c *Client) Token() string {
	return c.token
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func (c *Client) Login(ctx context.Context, email, password string) (auth.TokenResponse, error) {
	req := auth.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	var resp auth.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return auth.TokenResponse{}, err
	}
	c.token = resp.AccessToken
	return resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// CreateAttendance checks the attendance rules before sending.
func (c *Client) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var resp attendance.AttendanceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/create-attendance", req, &resp); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return resp, nil
}

func (c *Client) ListProjects(ctx context.Context) (project.ListProjectResponse, error) {
	var resp project.ListProjectResponse
	if err := c.doJSON(ctx, http.MethodGet, "/projects", nil, &resp); err != nil {
		return project.ListProjectResponse{}, err
	}
	return resp, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	var resp project.ProjectResponse
	if err := c.doJSON(ctx, http.MethodGet, "/project/"+url.PathEscape(id), nil, &resp); err != nil {
		return project.ProjectResponse{}, err
	}
	return resp, nil
}

// UpdateProject sends the edit form as multipart. Only non-nil fields are
// sent; teamMembers and milestonePayments travel as JSON strings.
func (c *Client) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	body, contentType, err := encodeProjectForm(req)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	var resp project.ProjectResponse
	if err := c.do(ctx, http.MethodPut, "/project/"+url.PathEscape(req.ID), contentType, body, &resp); err != nil {
		return project.ProjectResponse{}, err
	}
	return resp, nil
}

func (c *Client) UpdateProjectStatus(ctx context.Context, id string, status project.Status) (project.ProjectResponse, error) {
	req := project.UpdateStatusRequest{ID: id, Status: string(status)}
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	var resp project.ProjectResponse
	if err := c.doJSON(ctx, http.MethodPatch, "/projects/"+url.PathEscape(id)+"/status", req, &resp); err != nil {
		return project.ProjectResponse{}, err
	}
	return resp, nil
}

func (c *Client) CreatePayslip(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	var resp payslip.PayslipResponse
	if err := c.doJSON(ctx, http.MethodPost, "/payslips", req, &resp); err != nil {
		return payslip.PayslipResponse{}, err
	}
	return resp, nil
}

// PreviewNetSalary computes the net salary a payslip form would produce.
// Blank or non-numeric amounts count as 0.
func PreviewNetSalary(basic, allowances, deductions string) decimal.Decimal {
	return payslip.ComputeNetFromInput(basic, allowances, deductions)
}

func encodeProjectForm(req project.UpdateProjectRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]*string{
		"name":         req.Name,
		"client":       req.Client,
		"category":     req.Category,
		"status":       req.Status,
		"deadlineDate": req.Deadline,
	}
	for key, value := range fields {
		if value == nil {
			continue
		}
		if err := mw.WriteField(key, *value); err != nil {
			return nil, "", fmt.Errorf("failed to encode %s: %w", key, err)
		}
	}

	if req.ProjectCost != nil {
		cost := ""
		if req.ProjectCost.Valid {
			cost = req.ProjectCost.Value.String()
		}
		if err := mw.WriteField("projectCost", cost); err != nil {
			return nil, "", fmt.Errorf("failed to encode projectCost: %w", err)
		}
	}
	if req.Milestone != nil {
		if err := mw.WriteField("milestone", strconv.Itoa(*req.Milestone)); err != nil {
			return nil, "", fmt.Errorf("failed to encode milestone: %w", err)
		}
	}
	if req.TeamMembers != nil {
		if err := writeJSONField(mw, "teamMembers", req.TeamMembers); err != nil {
			return nil, "", err
		}
	}
	if req.MilestonePayments != nil {
		if err := writeJSONField(mw, "milestonePayments", req.MilestonePayments); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close form: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

func writeJSONField(mw *multipart.Writer, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return mw.WriteField(key, string(data))
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	if payload == nil {
		return c.do(ctx, method, path, "", nil, out)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(data), out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	op := method + " " + path

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response body: %w", err)}
	}

	if !env.Success {
		rejection := &ServerRejection{StatusCode: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			rejection.Code = env.Error.Code
			rejection.Details = env.Error.Details
			if rejection.Message == "" {
				rejection.Message = env.Error.Message
			}
		}
		if rejection.Message == "" {
			return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New("rejected without a message")}
		}
		return rejection
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New("success envelope with error status")}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response data: %w", err)}
	}
	return nil
}
