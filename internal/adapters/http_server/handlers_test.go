package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpserver "github.com/priyanshu599/backendRantease/internal/adapters/http_server"
	"github.com/priyanshu599/backendRantease/internal/app"
	"github.com/priyanshu599/backendRantease/internal/domain"
)

var testSecret = []byte("test-secret")

func token(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// ---- in-memory stores ----

type memStore struct {
	users      []domain.User
	properties map[string]domain.Property
	bookings   []domain.Booking
	apps       []domain.Application
	payments   []domain.Payment
	messages   []domain.Message
	cache      map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		properties: map[string]domain.Property{},
		cache:      map[string][]byte{},
	}
}

type memProperties struct{ s *memStore }

func (m memProperties) Create(ctx context.Context, p domain.Property) error {
	m.s.properties[p.ID] = p
	return nil
}
func (m memProperties) Get(ctx context.Context, id string) (domain.Property, error) {
	p, ok := m.s.properties[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}
func (m memProperties) List(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range m.s.properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (m memProperties) Update(ctx context.Context, p domain.Property) error {
	if _, ok := m.s.properties[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.s.properties[p.ID] = p
	return nil
}
func (m memProperties) Delete(ctx context.Context, id string) error {
	if _, ok := m.s.properties[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.s.properties, id)
	return nil
}
func (m memProperties) Count(ctx context.Context) (int64, error) {
	return int64(len(m.s.properties)), nil
}

type memBookings struct{ s *memStore }

func (m memBookings) Create(ctx context.Context, b domain.Booking) error {
	m.s.bookings = append(m.s.bookings, b)
	return nil
}
func (m memBookings) Get(ctx context.Context, id string) (domain.Booking, error) {
	for _, b := range m.s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}
func (m memBookings) Update(ctx context.Context, b domain.Booking) error {
	for i := range m.s.bookings {
		if m.s.bookings[i].ID == b.ID {
			m.s.bookings[i] = b
			return nil
		}
	}
	return domain.ErrNotFound
}
func (m memBookings) HasConfirmedOverlap(ctx context.Context, propertyID string, start, end time.Time) (bool, error) {
	for _, b := range m.s.bookings {
		if b.PropertyID == propertyID && b.Status == domain.BookingConfirmed &&
			domain.Overlaps(b.StartDate, b.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}
func (m memBookings) ConfirmedForProperty(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.s.bookings {
		if b.PropertyID == propertyID && b.Status == domain.BookingConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}
func (m memBookings) ForTenant(ctx context.Context, tenantID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.s.bookings {
		if b.TenantID == tenantID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (m memBookings) ForProperty(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.s.bookings {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (m memBookings) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var n int64
	for _, b := range m.s.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

type memApplications struct{ s *memStore }

func (m memApplications) Create(ctx context.Context, a domain.Application) error {
	m.s.apps = append(m.s.apps, a)
	return nil
}
func (m memApplications) Get(ctx context.Context, id string) (domain.Application, error) {
	for _, a := range m.s.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Application{}, domain.ErrNotFound
}
func (m memApplications) GetForPair(ctx context.Context, propertyID, tenantID string) (domain.Application, error) {
	for _, a := range m.s.apps {
		if a.PropertyID == propertyID && a.TenantID == tenantID {
			return a, nil
		}
	}
	return domain.Application{}, domain.ErrNotFound
}
func (m memApplications) Update(ctx context.Context, a domain.Application) error {
	for i := range m.s.apps {
		if m.s.apps[i].ID == a.ID {
			m.s.apps[i] = a
			return nil
		}
	}
	return domain.ErrNotFound
}
func (m memApplications) ForProperty(ctx context.Context, propertyID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range m.s.apps {
		if a.PropertyID == propertyID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m memApplications) ForTenant(ctx context.Context, tenantID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range m.s.apps {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m memApplications) Count(ctx context.Context) (int64, error) {
	return int64(len(m.s.apps)), nil
}

type memUsers struct{ s *memStore }

func (m memUsers) Get(ctx context.Context, id string) (domain.User, error) {
	for _, u := range m.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}
func (m memUsers) List(ctx context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), m.s.users...), nil
}
func (m memUsers) Delete(ctx context.Context, id string) error {
	for i, u := range m.s.users {
		if u.ID == id {
			m.s.users = append(m.s.users[:i], m.s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
func (m memUsers) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range m.s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type memPayments struct{ s *memStore }

func (m memPayments) Create(ctx context.Context, p domain.Payment) error {
	m.s.payments = append(m.s.payments, p)
	return nil
}
func (m memPayments) List(ctx context.Context) ([]domain.Payment, error) {
	return append([]domain.Payment(nil), m.s.payments...), nil
}
func (m memPayments) ForUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range m.s.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m memPayments) ForLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range m.s.payments {
		if prop, ok := m.s.properties[p.PropertyID]; ok && prop.CreatedBy == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m memPayments) TotalAmount(ctx context.Context) (float64, error) {
	var sum float64
	for _, p := range m.s.payments {
		sum += p.Amount
	}
	return sum, nil
}

type memMessages struct{ s *memStore }

func (m memMessages) Create(ctx context.Context, msg domain.Message) error {
	m.s.messages = append(m.s.messages, msg)
	return nil
}
func (m memMessages) ForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, msg := range m.s.messages {
		if msg.SenderID == userID || msg.ReceiverID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type memCache struct{ s *memStore }

func (m memCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := m.s.cache[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (m memCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.s.cache[key] = b
	return nil
}
func (m memCache) Del(ctx context.Context, key string) error {
	delete(m.s.cache, key)
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()
	store := newMemStore()
	cache := memCache{store}

	bookings := app.NewBookingService(memBookings{store}, memProperties{store}, cache, time.Minute)
	applications := app.NewApplicationService(memApplications{store}, memProperties{store})
	properties := app.NewPropertyService(memProperties{store}, cache, time.Minute)
	payments := app.NewPaymentService(memPayments{store}, memBookings{store})
	messages := app.NewMessageService(memMessages{store})
	admin := app.NewAdminService(memUsers{store}, memProperties{store}, memBookings{store}, memApplications{store}, memPayments{store}, cache)

	srv := httpserver.New(0)
	srv.MountHandlers(
		httpserver.NewHandlers(bookings, applications, properties, payments, messages, admin),
		httpserver.RequireAuth(testSecret),
	)

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts, store
}

func doJSON(t *testing.T, method, url, bearer string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()
	var v T
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestAuthRequired(t *testing.T) {
	ts, _ := newTestServer(t)

	res := doJSON(t, http.MethodPost, ts.URL+"/api/bookings/", "", map[string]any{})
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}

	res = doJSON(t, http.MethodPost, ts.URL+"/api/bookings/", "not-a-jwt", map[string]any{})
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", res.StatusCode)
	}
}

func TestRoleGates(t *testing.T) {
	ts, _ := newTestServer(t)
	tenant := token(t, "tenant-1", domain.RoleTenant)
	admin := token(t, "admin-1", domain.RoleAdmin)

	// Only landlords create properties; admin does not bypass the gate.
	for _, tok := range []string{tenant, admin} {
		res := doJSON(t, http.MethodPost, ts.URL+"/api/properties/", tok, map[string]any{
			"title": "Flat", "price": 900, "location": "York",
		})
		res.Body.Close()
		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", res.StatusCode)
		}
	}

	// Admin surface rejects non-admin callers.
	res := doJSON(t, http.MethodGet, ts.URL+"/api/admin/analytics", tenant, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("analytics status = %d, want 403", res.StatusCode)
	}
}

func TestBookingFlow(t *testing.T) {
	ts, store := newTestServer(t)
	landlord := token(t, "landlord-1", domain.RoleLandlord)
	tenantA := token(t, "tenant-a", domain.RoleTenant)
	tenantB := token(t, "tenant-b", domain.RoleTenant)

	res := doJSON(t, http.MethodPost, ts.URL+"/api/properties/", landlord, map[string]any{
		"title": "Seaside cottage", "price": 120, "location": "Whitby",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create property status = %d", res.StatusCode)
	}
	prop := decode[domain.Property](t, res)

	res = doJSON(t, http.MethodPost, ts.URL+"/api/bookings/", tenantA, map[string]any{
		"propertyId": prop.ID, "startDate": "2024-01-01", "endDate": "2024-01-03", "totalPrice": 240,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create booking status = %d", res.StatusCode)
	}
	booking := decode[domain.Booking](t, res)
	if booking.Status != domain.BookingPending {
		t.Fatalf("status = %s, want pending", booking.Status)
	}

	// Landlord confirms their own booking.
	res = doJSON(t, http.MethodPut, ts.URL+"/api/bookings/"+booking.ID, landlord, map[string]any{"status": "confirmed"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("confirm status = %d", res.StatusCode)
	}
	res.Body.Close()

	// A stranger cannot touch it.
	res = doJSON(t, http.MethodPut, ts.URL+"/api/bookings/"+booking.ID, tenantB, map[string]any{"status": "cancelled"})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("stranger update status = %d, want 403", res.StatusCode)
	}
	res.Body.Close()

	// Overlapping request now conflicts.
	res = doJSON(t, http.MethodPost, ts.URL+"/api/bookings/", tenantB, map[string]any{
		"propertyId": prop.ID, "startDate": "2024-01-02", "endDate": "2024-01-04",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("conflict status = %d, want 400", res.StatusCode)
	}
	res.Body.Close()
	if len(store.bookings) != 1 {
		t.Fatalf("stored %d bookings, want 1", len(store.bookings))
	}

	// Public calendar, no auth.
	res = doJSON(t, http.MethodGet, ts.URL+"/api/bookings/property/"+prop.ID+"/dates", "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("dates status = %d", res.StatusCode)
	}
	etag := res.Header.Get("ETag")
	dates := decode[[]string](t, res)
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if len(dates) != len(want) {
		t.Fatalf("got %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("got %v, want %v", dates, want)
		}
	}

	// Conditional re-read short-circuits on the ETag.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/bookings/property/"+prop.ID+"/dates", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("conditional status = %d, want 304", res2.StatusCode)
	}
}

func TestApplicationFlow(t *testing.T) {
	ts, _ := newTestServer(t)
	landlord := token(t, "landlord-1", domain.RoleLandlord)
	tenant := token(t, "tenant-1", domain.RoleTenant)

	res := doJSON(t, http.MethodPost, ts.URL+"/api/properties/", landlord, map[string]any{
		"title": "City flat", "price": 800, "location": "Leeds",
	})
	prop := decode[domain.Property](t, res)

	res = doJSON(t, http.MethodPost, ts.URL+"/api/applications/"+prop.ID+"/apply", tenant, map[string]any{"message": "hello"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("apply status = %d, want 201", res.StatusCode)
	}
	first := decode[struct {
		Message     string             `json:"message"`
		Application domain.Application `json:"application"`
	}](t, res)

	// Double apply while pending is rejected.
	res = doJSON(t, http.MethodPost, ts.URL+"/api/applications/"+prop.ID+"/apply", tenant, map[string]any{"message": "again"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("double apply status = %d, want 400", res.StatusCode)
	}
	res.Body.Close()

	// Landlord-only routes reject the tenant.
	res = doJSON(t, http.MethodPut, ts.URL+"/api/applications/"+first.Application.ID+"/reject", tenant, nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("tenant reject status = %d, want 403", res.StatusCode)
	}
	res.Body.Close()

	res = doJSON(t, http.MethodPut, ts.URL+"/api/applications/"+first.Application.ID+"/reject", landlord, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("reject status = %d", res.StatusCode)
	}
	res.Body.Close()

	// Re-apply after rejection revives the same record with a 200.
	res = doJSON(t, http.MethodPost, ts.URL+"/api/applications/"+prop.ID+"/apply", tenant, map[string]any{"message": "take two"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("re-apply status = %d, want 200", res.StatusCode)
	}
	second := decode[struct {
		Message     string             `json:"message"`
		Application domain.Application `json:"application"`
	}](t, res)
	if second.Application.ID != first.Application.ID {
		t.Fatalf("revived id = %s, want %s", second.Application.ID, first.Application.ID)
	}

	res = doJSON(t, http.MethodGet, ts.URL+"/api/applications/status/"+prop.ID, tenant, nil)
	status := decode[map[string]string](t, res)
	if status["status"] != "pending" {
		t.Fatalf("status = %q, want pending", status["status"])
	}
}

func TestNotFoundMapping(t *testing.T) {
	ts, _ := newTestServer(t)

	res := doJSON(t, http.MethodGet, ts.URL+"/api/properties/nope", "", nil)
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type = %q, want problem+json", ct)
	}
	var p struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
	}
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if p.Status != http.StatusNotFound {
		t.Fatalf("problem status = %d, want 404", p.Status)
	}
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)
	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}
