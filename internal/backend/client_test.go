package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrammler/storefront/internal/entity"
)

const reviewsJSON = `[
  {"id": 1, "title": "Great", "comment": "Loved it", "user": "Ann", "rating": 5},
  {"id": 2, "title": "Fine", "comment": "Okay", "user": "Bob", "rating": 3}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(server.URL+"/", WithHTTPClient(server.Client()), WithToken("tok"))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	return client
}

func TestListReviewsNormalizesEnvelope(t *testing.T) {
	bodies := map[string]string{
		"bare array":     reviewsJSON,
		"data envelope":  `{"data": ` + reviewsJSON + `}`,
		"paginated data": `{"data": {"current_page": 1, "data": ` + reviewsJSON + `}}`,
	}

	var results [][]entity.Testimonial
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/reviews" {
					t.Errorf("Unexpected path %q", r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer tok" {
					t.Errorf("Missing bearer token")
				}
				w.Write([]byte(body))
			})
			reviews, err := client.ListReviews(context.Background())
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			results = append(results, reviews)
		})
	}

	expected := []entity.Testimonial{
		{ID: 1, Title: "Great", Comment: "Loved it", User: "Ann", Rating: 5},
		{ID: 2, Title: "Fine", Comment: "Okay", User: "Bob", Rating: 3},
	}
	for _, got := range results {
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("Reviews mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestListReviewsErrors(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, expected: ErrUnexpectedStatus},
		{name: "not json", status: http.StatusOK, body: `<html>`, expected: ErrUnexpectedPayload},
		{name: "object without data", status: http.StatusOK, body: `{"items": []}`, expected: ErrUnexpectedPayload},
		{name: "wrong element type", status: http.StatusOK, body: `[1, 2]`, expected: ErrUnexpectedPayload},
		{name: "empty body", status: http.StatusOK, body: ``, expected: ErrUnexpectedPayload},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			_, err := client.ListReviews(context.Background())
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestListReviewsNull(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	})
	reviews, err := client.ListReviews(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("Expected no reviews, got %v", reviews)
	}
}

func TestGetUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/7":
			w.Write([]byte(`{"data": {"id": 7, "name": "Ann", "email": "ann@example.com", "role": "admin"}}`))
		default:
			http.NotFound(w, r)
		}
	})

	user, err := client.GetUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := entity.User{ID: 7, Name: "Ann", Email: "ann@example.com", Role: entity.RoleAdmin}
	if diff := cmp.Diff(expected, user); diff != "" {
		t.Errorf("User mismatch (-want +got):\n%s", diff)
	}

	_, err = client.GetUser(context.Background(), 8)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Errorf("Expected StatusError with 404, got %v", err)
	}
}

func TestUpdateUserRoleSendsOnlyRole(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/3" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Expected multipart body, got %v", err)
		}
		if diff := cmp.Diff(map[string][]string{"role": {"customer"}}, map[string][]string(r.MultipartForm.Value)); diff != "" {
			t.Errorf("Form mismatch (-want +got):\n%s", diff)
		}
		if len(r.MultipartForm.File) != 0 {
			t.Errorf("Expected no files, got %v", r.MultipartForm.File)
		}
		if got := r.Header.Get(ActingUserHeader); got != "root" {
			t.Errorf("Expected acting user root, got %q", got)
		}
		if got := r.Header.Get(ActingRoleHeader); got != "super admin" {
			t.Errorf("Expected acting role super admin, got %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	actor := entity.Account{Username: "root", Role: entity.RoleSuperAdmin}
	if err := client.UpdateUserRole(context.Background(), 3, entity.RoleCustomer, actor); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestRegister(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/register" || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Unexpected request %s %s", r.URL.Path, r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	err := client.Register(context.Background(), RegisterRequest{Email: "a@example.com"})
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("Expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestOversizedResponseRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[" + strings.Repeat(" ", maxResponseBytes) + "]"))
	})

	_, err := client.ListReviews(context.Background())
	if !errors.Is(err, ErrUnexpectedPayload) {
		t.Errorf("Expected ErrUnexpectedPayload, got %v", err)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.com", "://bad", "example.com"} {
		if _, err := NewClient(raw); err == nil {
			t.Errorf("Expected error for %q", raw)
		}
	}
}
