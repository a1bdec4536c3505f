package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"regdesk/internal/proof"
	"regdesk/internal/registration/models"
	"regdesk/internal/registration/service"
	"regdesk/internal/registration/store"
)

func newRegistrationRouter(t *testing.T, st *store.InMemory) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	proofs, err := proof.NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("proof storage: %v", err)
	}
	svc := service.New(st, proofs, nil, logger, nil)
	h := New(svc, logger)

	r := chi.NewRouter()
	r.Group(h.Register)
	r.Route("/admin", h.RegisterAdmin)
	return r
}

func checkUser(t *testing.T, router chi.Router, email string) (int, models.Resolution) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email})
	req := httptest.NewRequest(http.MethodPost, "/check-user", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res models.Resolution
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode check-user response: %v", err)
		}
	}
	return rec.Code, res
}

func submitReceipt(t *testing.T, router chi.Router, email, regType string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("nom", "Haddad")
	_ = mw.WriteField("prenom", "Karim")
	_ = mw.WriteField("email", email)
	_ = mw.WriteField("type", regType)
	if file != nil {
		part, err := mw.CreateFormFile("receipt", "receipt.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(file); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/send-receipt", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jpegBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	return data
}

func TestCheckUser(t *testing.T) {
	st := store.NewInMemory()
	st.Seed([]models.WhitelistEntry{
		{LastName: "Benali", FirstName: "Sara", Email: "sara@example.com"},
	})
	router := newRegistrationRouter(t, st)

	code, res := checkUser(t, router, "nobody@example.com")
	if code != http.StatusOK {
		t.Fatalf("expected 200 for unknown email, got %d", code)
	}
	if res.Exists {
		t.Fatalf("expected exists=false for unknown email")
	}

	code, res = checkUser(t, router, "sara@example.com")
	if code != http.StatusOK {
		t.Fatalf("expected 200 for whitelisted email, got %d", code)
	}
	if !res.Exists || res.Status != models.StatusValidated {
		t.Fatalf("expected validated resolution, got %+v", res)
	}
	if res.User == nil || res.User.LastName != "Benali" {
		t.Fatalf("expected userData from whitelist, got %+v", res.User)
	}
}

func TestCheckUser_BadRequests(t *testing.T) {
	router := newRegistrationRouter(t, store.NewInMemory())

	req := httptest.NewRequest(http.MethodPost, "/check-user", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}

	if code, _ := checkUser(t, router, "not-an-email"); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", code)
	}
}

func TestSendReceipt(t *testing.T) {
	st := store.NewInMemory()
	router := newRegistrationRouter(t, st)

	rec := submitReceipt(t, router, "karim@example.com", "CCP", jpegBytes(1<<20))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.ID == "" {
		t.Fatalf("expected success with id, got %+v", resp)
	}

	code, res := checkUser(t, router, "karim@example.com")
	if code != http.StatusOK || res.Status != models.StatusPending {
		t.Fatalf("expected pending resolution after submission, got %d %+v", code, res)
	}
}

func TestSendReceipt_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		regType  string
		file     []byte
		wantCode int
	}{
		{"missing file", "a@example.com", "CCP", nil, http.StatusBadRequest},
		{"unsupported media type", "a@example.com", "CCP", []byte("just some text"), http.StatusUnsupportedMediaType},
		{"oversize file", "a@example.com", "CCP", jpegBytes(6 << 20), http.StatusRequestEntityTooLarge},
		{"unknown type", "a@example.com", "VIP", jpegBytes(64), http.StatusBadRequest},
		{"invalid email", "nope", "CCP", jpegBytes(64), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewInMemory()
			router := newRegistrationRouter(t, st)

			rec := submitReceipt(t, router, tt.email, tt.regType, tt.file)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}

			records, err := st.ListRegistrations(context.Background())
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(records) != 0 {
				t.Fatalf("rejected submission must not leave a record, got %d", len(records))
			}
		})
	}
}

func TestValidateFlow(t *testing.T) {
	st := store.NewInMemory()
	router := newRegistrationRouter(t, st)

	rec := submitReceipt(t, router, "karim@example.com", "CCP", jpegBytes(64))
	if rec.Code != http.StatusOK {
		t.Fatalf("submit failed: %d", rec.Code)
	}
	var submitted struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&submitted); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}

	validateReq := httptest.NewRequest(http.MethodPost, "/admin/validate/"+submitted.ID, nil)
	validateRec := httptest.NewRecorder()
	router.ServeHTTP(validateRec, validateReq)
	if validateRec.Code != http.StatusOK {
		t.Fatalf("expected 200 validating, got %d: %s", validateRec.Code, validateRec.Body.String())
	}

	var resp validateResponse
	if err := json.NewDecoder(validateRec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode validate response: %v", err)
	}
	if !resp.Success || resp.Registration.Status != models.StatusValidated {
		t.Fatalf("expected validated registration, got %+v", resp)
	}

	// Validating twice conflicts.
	again := httptest.NewRecorder()
	router.ServeHTTP(again, httptest.NewRequest(http.MethodPost, "/admin/validate/"+submitted.ID, nil))
	if again.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second validation, got %d", again.Code)
	}

	code, res := checkUser(t, router, "karim@example.com")
	if code != http.StatusOK || res.Status != models.StatusValidated {
		t.Fatalf("expected validated resolution, got %d %+v", code, res)
	}
}

func TestValidate_NotFound(t *testing.T) {
	router := newRegistrationRouter(t, store.NewInMemory())

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/validate/"+id, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %q, got %d", id, rec.Code)
		}
	}
}

func TestListRegistrations(t *testing.T) {
	st := store.NewInMemory()
	router := newRegistrationRouter(t, st)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/registrations", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := bytes.TrimSpace(rec.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("expected empty array for no registrations, got %s", body)
	}

	for _, addr := range []string{"first@example.com", "second@example.com"} {
		if r := submitReceipt(t, router, addr, "KAIZEN", jpegBytes(64)); r.Code != http.StatusOK {
			t.Fatalf("submit %s failed: %d", addr, r.Code)
		}
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/registrations", nil))
	var records []*models.Record
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].User.Email != "second@example.com" {
		t.Fatalf("expected newest first, got %s", records[0].User.Email)
	}
}
