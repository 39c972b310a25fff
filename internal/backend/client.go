// Package backend is the HTTP client for the remote storefront API that owns
// reviews, users and every business rule.
package backend

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

	"github.com/jrammler/storefront/internal/entity"
)

const (
	reviewsPath  = "/api/reviews"
	usersPath    = "/api/users"
	registerPath = "/api/register"
)

// Headers naming the operator behind a write, so the backend can authorize it.
const (
	ActingUserHeader = "X-Acting-User"
	ActingRoleHeader = "X-Acting-Role"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 2 << 20

var ErrUnexpectedStatus = errors.New("unexpected response status")
var ErrUnexpectedPayload = errors.New("unexpected response payload")
var ErrNotFound = errors.New("resource not found")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s: %d", e.Op, ErrUnexpectedStatus, e.Code)
}

func (e *StatusError) Is(target error) bool {
	if target == ErrUnexpectedStatus {
		return true
	}
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	token   string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse backend url: unsupported scheme %q", u.Scheme)
	}
	c := &Client{
		baseURL: u,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (c *Client) ListReviews(ctx context.Context) ([]entity.Testimonial, error) {
	var reviews []entity.Testimonial
	if err := c.getList(ctx, "list reviews", reviewsPath, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.getList(ctx, "list users", usersPath, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (entity.User, error) {
	const op = "get user"
	body, err := c.do(ctx, op, http.MethodGet, usersPath+"/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return entity.User{}, err
	}
	raw, err := unwrapData(body)
	if err != nil {
		return entity.User{}, fmt.Errorf("%s: %w", op, err)
	}
	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return entity.User{}, fmt.Errorf("%s: %w: %v", op, ErrUnexpectedPayload, err)
	}
	return user, nil
}

// UpdateUserRole submits a multipart form whose only field is role. The acting
// account travels in headers; the backend decides whether it may make the change.
func (c *Client) UpdateUserRole(ctx context.Context, id int, role entity.Role, actor entity.Account) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("role", string(role)); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}
	header := http.Header{}
	header.Set("Content-Type", mw.FormDataContentType())
	header.Set(ActingUserHeader, actor.Username)
	header.Set(ActingRoleHeader, string(actor.Role))
	_, err := c.do(ctx, "update user role", http.MethodPost, usersPath+"/"+strconv.Itoa(id), &buf, header)
	return err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	_, err = c.do(ctx, "register", http.MethodPost, registerPath, bytes.NewReader(payload), header)
	return err
}

func (c *Client) getList(ctx context.Context, op, path string, target any) error {
	body, err := c.do(ctx, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	raw, err := normalizeList(body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrUnexpectedPayload, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, header http.Header) ([]byte, error) {
	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for key, values := range header {
		req.Header[key] = values
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Code: resp.StatusCode}
	}
	if len(data) > maxResponseBytes {
		return nil, fmt.Errorf("%s: %w: body exceeds %d bytes", op, ErrUnexpectedPayload, maxResponseBytes)
	}
	return data, nil
}
