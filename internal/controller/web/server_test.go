package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jrammler/storefront/internal/backend"
	"github.com/jrammler/storefront/internal/controller/web/htmx"
	"github.com/jrammler/storefront/internal/entity"
	"github.com/jrammler/storefront/internal/service"
	"github.com/jrammler/storefront/internal/service/auth"
	"github.com/jrammler/storefront/internal/service/catalog"
	"github.com/jrammler/storefront/internal/service/dashboard"
	"github.com/jrammler/storefront/internal/service/testimonial"
	"github.com/jrammler/storefront/internal/service/user"
)

type mockStorage struct {
	categories []entity.Category
	gallery    []entity.GalleryImage
}

func (m *mockStorage) GetCategories(ctx context.Context) ([]entity.Category, error) {
	return m.categories, nil
}

func (m *mockStorage) GetProducts(ctx context.Context) ([]entity.Product, error) {
	return []entity.Product{{Category: "Dresses", Title: "Linen dress"}}, nil
}

func (m *mockStorage) GetGallery(ctx context.Context) ([]entity.GalleryImage, error) {
	return m.gallery, nil
}

func (m *mockStorage) GetStats(ctx context.Context) ([]entity.StatCard, error) {
	return []entity.StatCard{{Label: "Orders", Value: "42"}}, nil
}

func (m *mockStorage) GetSales(ctx context.Context) ([]entity.ChartPoint, error) {
	return []entity.ChartPoint{{Label: "Jan", Value: 5}}, nil
}

type mockBackend struct {
	reviews    []entity.Testimonial
	reviewsErr error
	users      map[int]entity.User
	updated    map[int]entity.Role
	registered []backend.RegisterRequest
}

func (m *mockBackend) ListReviews(ctx context.Context) ([]entity.Testimonial, error) {
	return m.reviews, m.reviewsErr
}

func (m *mockBackend) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockBackend) GetUser(ctx context.Context, id int) (entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return entity.User{}, backend.ErrNotFound
	}
	return u, nil
}

func (m *mockBackend) UpdateUserRole(ctx context.Context, id int, role entity.Role, actor entity.Account) error {
	m.updated[id] = role
	return nil
}

func (m *mockBackend) Register(ctx context.Context, req backend.RegisterRequest) error {
	m.registered = append(m.registered, req)
	if req.Email == "" {
		return &backend.StatusError{Op: "register", Code: http.StatusUnprocessableEntity}
	}
	return nil
}

type mockAuth struct {
	sessions map[string]entity.Account
}

func (m *mockAuth) LoginUser(ctx context.Context, username, password string) (string, *time.Time, error) {
	if username != "root" || password != "password" {
		return "", nil, auth.CredentialError
	}
	expiration := time.Now().Add(time.Hour)
	return "root-token", &expiration, nil
}

func (m *mockAuth) LogoutUser(ctx context.Context, sessionToken string) {
	delete(m.sessions, sessionToken)
}

func (m *mockAuth) GetSessionUser(ctx context.Context, sessionToken string) (entity.Account, error) {
	account, ok := m.sessions[sessionToken]
	if !ok {
		return entity.Account{}, auth.NoValidSessionError
	}
	return account, nil
}

type fixture struct {
	handler http.Handler
	backend *mockBackend
}

func categories(n int) []entity.Category {
	result := make([]entity.Category, n)
	for i := range result {
		result[i] = entity.Category{Name: fmt.Sprintf("Category %d", i), ProductCount: i}
	}
	return result
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sto := &mockStorage{
		categories: categories(8),
		gallery: []entity.GalleryImage{
			{ThumbnailURL: "/t0.jpg", FullURL: "/f0.jpg"},
			{ThumbnailURL: "/t1.jpg", FullURL: "/f1.jpg"},
		},
	}
	be := &mockBackend{
		reviews: []entity.Testimonial{{ID: 1, Title: "Great shop", Comment: "Fast delivery", User: "Ann", Rating: 4}},
		users: map[int]entity.User{
			4: {ID: 4, Name: "Bob", Email: "bob@example.com", Role: entity.RoleCustomer},
		},
		updated: map[int]entity.Role{},
	}
	userService := user.NewUserService(be, func(err error) bool { return errors.Is(err, backend.ErrNotFound) })
	ser := &service.Service{
		CatalogService:     catalog.NewCatalogService(sto, 6),
		TestimonialService: testimonial.NewTestimonialService(be),
		UserService:        userService,
		DashboardService:   dashboard.NewDashboardService(sto, userService),
		AuthService: &mockAuth{sessions: map[string]entity.Account{
			"root-token":  {Username: "root", Role: entity.RoleSuperAdmin},
			"admin-token": {Username: "ops", Role: entity.RoleAdmin},
		}},
		RegisterService: be,
	}
	return &fixture{handler: NewServer(ser).Handler(), backend: be}
}

type requestOption func(*http.Request)

func asHTMX(r *http.Request) {
	r.Header.Set(htmx.RequestHeaderKey, "true")
}

func withSession(token string) requestOption {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
}

func (f *fixture) do(method, target string, body io.Reader, opts ...requestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersSectionsInOrder(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	last := -1
	for _, marker := range []string{`class="hero"`, `id="categories"`, `id="fashion"`, `id="testimonials"`, `id="gallery"`, `class="cta"`} {
		index := strings.Index(body, marker)
		if index < 0 {
			t.Fatalf("Expected %s in home page", marker)
		}
		if index < last {
			t.Errorf("Expected %s after the previous section", marker)
		}
		last = index
	}
	for _, expected := range []string{"Great shop", "Category 0", "Linen dress", `class="scroll-top"`, `data-threshold="300"`} {
		if !strings.Contains(body, expected) {
			t.Errorf("Expected %q in home page", expected)
		}
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Errorf("Expected a request id header")
	}
}

func TestHomeTestimonialsEmptyOnBackendFailure(t *testing.T) {
	f := newFixture(t)
	f.backend.reviewsErr = errors.New("connection refused")

	rec := f.do(http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No testimonials available") {
		t.Errorf("Expected empty testimonials state")
	}
}

func TestCategoriesFragment(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/sections/categories?page=1", nil, asHTMX)

	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Errorf("Expected a fragment, got a full page")
	}
	if !strings.Contains(body, "Category 7") || strings.Contains(body, "Category 0<") {
		t.Errorf("Expected second page of categories, got %s", body)
	}
	if !strings.Contains(body, `hx-get="/sections/categories?page=0&amp;start=0&amp;reload=0"`) {
		t.Errorf("Expected controls to wrap to page 0, got %s", body)
	}
}

func TestSectionsRedirectWithoutHTMX(t *testing.T) {
	f := newFixture(t)

	testCases := map[string]string{
		"/sections/categories?page=1":            "/?page=1#categories",
		"/sections/testimonials?start=2&reload=1": "/?start=2&reload=1#testimonials",
	}
	for target, expected := range testCases {
		rec := f.do(http.MethodGet, target, nil)
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != expected {
			t.Errorf("%s: expected redirect to %s, got %d %s", target, expected, rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestTestimonialsFragmentReload(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/sections/testimonials?reload=3", nil, asHTMX)

	body := rec.Body.String()
	if !strings.Contains(body, `data-reload="3"`) || !strings.Contains(body, "reload=4") {
		t.Errorf("Expected reload counter in fragment, got %s", body)
	}
}

func TestHomeLinksKeepOtherSections(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/?page=1&reload=5", nil)

	body := rec.Body.String()
	for _, expected := range []string{
		`href="/?page=0&amp;start=0&amp;reload=5#categories"`,
		`hx-get="/sections/categories?page=0&amp;start=0&amp;reload=5"`,
		`href="/?page=1&amp;start=0&amp;reload=6#testimonials"`,
		`hx-get="/sections/testimonials?page=1&amp;start=0&amp;reload=6"`,
	} {
		if !strings.Contains(body, expected) {
			t.Errorf("Expected %s in home page", expected)
		}
	}
}

func TestLightbox(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/gallery/1", nil, asHTMX)
	body := rec.Body.String()
	if !strings.Contains(body, `src="/f1.jpg"`) || !strings.Contains(body, `href="/gallery/0"`) {
		t.Errorf("Expected image 1 with a control wrapping to 0, got %s", body)
	}

	rec = f.do(http.MethodGet, "/gallery/1", nil)
	if !strings.Contains(rec.Body.String(), "<html") || !strings.Contains(rec.Body.String(), `src="/t0.jpg"`) {
		t.Errorf("Expected full gallery page with lightbox")
	}

	for _, target := range []string{"/gallery/2", "/gallery/x"} {
		if rec := f.do(http.MethodGet, target, nil); rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, rec.Code)
		}
	}
}

func TestStaticPages(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		target string
		status int
		text   string
	}{
		{target: "/privacy", status: http.StatusOK, text: "Privacy policy"},
		{target: "/gallery", status: http.StatusOK, text: `src="/t1.jpg"`},
		{target: "/static/app.js", status: http.StatusOK, text: "scrollTo"},
		{target: "/nowhere", status: http.StatusNotFound, text: "Page not found"},
	}
	for _, tc := range testCases {
		rec := f.do(http.MethodGet, tc.target, nil)
		if rec.Code != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.target, tc.status, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.text) {
			t.Errorf("%s: expected %q in body", tc.target, tc.text)
		}
	}
}

func TestModals(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/privacy?modal=login&error=1", nil)
	body := rec.Body.String()
	if !strings.Contains(body, `action="/login"`) || !strings.Contains(body, "Invalid username or password") {
		t.Errorf("Expected failed login modal")
	}
	if !strings.Contains(body, `href="/privacy?modal=register"`) || !strings.Contains(body, `class="modal-close" href="/privacy"`) {
		t.Errorf("Expected switch and close links, got %s", body)
	}

	rec = f.do(http.MethodGet, "/", nil)
	if strings.Contains(rec.Body.String(), `class="modal"`) {
		t.Errorf("Expected no modal without the modal parameter")
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login", strings.NewReader("username=root&password=password"))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/admin" {
		t.Fatalf("Expected redirect to /admin, got %d %s", rec.Code, rec.Header().Get("Location"))
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessionCookieName || cookies[0].Value != "root-token" {
		t.Errorf("Expected session cookie, got %v", cookies)
	}

	rec = f.do(http.MethodPost, "/login", strings.NewReader("username=root&password=nope"))
	if rec.Header().Get("Location") != "/?modal=login&error=1" {
		t.Errorf("Expected redirect to failed login modal, got %s", rec.Header().Get("Location"))
	}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	form := url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "password": {"pw"}, "password_confirmation": {"pw"}}
	rec := f.do(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	if rec.Header().Get("Location") != "/?modal=register&done=1" {
		t.Errorf("Expected register success redirect, got %s", rec.Header().Get("Location"))
	}
	if len(f.backend.registered) != 1 || f.backend.registered[0].PasswordConfirmation != "pw" {
		t.Errorf("Expected request forwarded to backend, got %v", f.backend.registered)
	}

	rec = f.do(http.MethodPost, "/register", strings.NewReader("name=Ann"))
	if rec.Header().Get("Location") != "/?modal=register&error=1" {
		t.Errorf("Expected register failure redirect, got %s", rec.Header().Get("Location"))
	}
}

func TestAdminRequiresSession(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/admin", "/admin/users/4/edit"} {
		rec := f.do(http.MethodGet, target, nil, withSession("stale"))
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/?modal=login" {
			t.Errorf("%s: expected redirect to login, got %d %s", target, rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/admin?edit=4", nil, withSession("root-token"))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, expected := range []string{`class="stat-card"`, "<svg", "bob@example.com", `href="/admin?edit=4#user-form"`, `id="user-form"`} {
		if !strings.Contains(body, expected) {
			t.Errorf("Expected %q in dashboard", expected)
		}
	}

	rec = f.do(http.MethodGet, "/admin?edit=9", nil, withSession("root-token"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown user, got %d", rec.Code)
	}
}

func TestEditFormForAdminIsReadOnly(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/admin/users/4/edit", nil, withSession("admin-token"), asHTMX)

	body := rec.Body.String()
	if !strings.Contains(body, `<select name="role" required disabled>`) {
		t.Errorf("Expected disabled role select, got %s", body)
	}
	if strings.Contains(body, `value="super admin"`) {
		t.Errorf("Expected super admin option to be hidden")
	}
	if !strings.Contains(body, `value="customer" selected`) {
		t.Errorf("Expected current role selected")
	}
}

func TestEditFormForSuperAdmin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/admin/users/4/edit", nil, withSession("root-token"), asHTMX)

	body := rec.Body.String()
	if !strings.Contains(body, `<select name="role" required>`) || !strings.Contains(body, `<button type="submit">`) {
		t.Errorf("Expected editable form, got %s", body)
	}
	if !strings.Contains(body, `value="super admin"`) {
		t.Errorf("Expected super admin option")
	}
	if !strings.Contains(body, `hx-disabled-elt="find button"`) {
		t.Errorf("Expected submit control to be disabled in flight")
	}
}

func TestEditSubmit(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		role     string
		htmx     bool
		status   int
		text     string
		expected entity.Role
	}{
		{name: "super admin saves", token: "root-token", role: "admin", status: http.StatusOK, text: "Role updated", expected: entity.RoleAdmin},
		{name: "admin refused", token: "admin-token", role: "admin", status: http.StatusForbidden, text: "You are not allowed to change roles"},
		{name: "role required", token: "root-token", role: "", status: http.StatusUnprocessableEntity, text: "Role is required"},
		{name: "invalid role", token: "root-token", role: "owner", status: http.StatusUnprocessableEntity, text: "Role is not valid"},
		{name: "htmx error keeps 200", token: "admin-token", role: "admin", htmx: true, status: http.StatusOK, text: "You are not allowed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			opts := []requestOption{withSession(tc.token)}
			if tc.htmx {
				opts = append(opts, asHTMX)
			}

			rec := f.do(http.MethodPost, "/admin/users/4/edit", strings.NewReader("role="+url.QueryEscape(tc.role)), opts...)

			if rec.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.text) {
				t.Errorf("Expected %q in body, got %s", tc.text, rec.Body.String())
			}
			if f.backend.updated[4] != tc.expected {
				t.Errorf("Expected backend role %q, got %q", tc.expected, f.backend.updated[4])
			}
		})
	}
}

func TestLogout(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/logout", nil, withSession("admin-token"))
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected redirect, got %d", rec.Code)
	}
	rec = f.do(http.MethodGet, "/admin", nil, withSession("admin-token"))
	if rec.Code != http.StatusSeeOther {
		t.Errorf("Expected logged out session to be rejected, got %d", rec.Code)
	}
}
