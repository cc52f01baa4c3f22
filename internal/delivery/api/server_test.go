package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"bdgaraj/config"
	"bdgaraj/internal/delivery/api/middleware"
	"bdgaraj/internal/delivery/api/router"
	"bdgaraj/internal/delivery/api/router/handler"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/infra/auth"
	"bdgaraj/internal/infra/blob"
	"bdgaraj/internal/infra/notification"
	"bdgaraj/internal/infra/persistence/document"
	"bdgaraj/internal/infra/persistence/memory"
	"bdgaraj/internal/infra/qrcode"
	"bdgaraj/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	_ "gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	t    *testing.T
	echo *echo.Echo
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.APIPrefix = "/api"
	cfg.HTTP.MaxRequestBodySize = "10M"
	cfg.SecretKey.Access = "integration-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour}
	cfg.Seed = &config.SeedConfig{Enabled: true, AdminUsername: "admin", AdminPassword: "admin123"}
	cfg.Notification = &config.NotificationConfig{Provider: config.NotificationProviderLog}
	cfg.Uploads = &config.UploadsConfig{
		BucketURL:    "mem://",
		PublicPrefix: "/uploads",
		MaxSizeBytes: 1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}

	return cfg
}

// newTestServer wires the whole API over the in-memory store, seeded the way
// a fresh deployment is.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctx := context.Background()
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	store := memory.New()
	admins := document.NewAdminRepository(store)
	appointments := document.NewAppointmentRepository(store)
	services := document.NewServiceRepository(store)
	features := document.NewFeatureRepository(store)
	testimonials := document.NewTestimonialRepository(store)
	faqs := document.NewFAQRepository(store)
	contactInfo := document.NewContactInfoRepository(store)
	ctaSection := document.NewCTASectionRepository(store)
	comments := document.NewCommentRepository(store)

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	notifier, err := notification.NewNotifier(notification.NotifierParams{Lc: lc, Ctx: ctx, Config: cfg, Logger: logger})
	require.NoError(t, err)

	blobs, err := blob.New(blob.Params{Lifecycle: lc, Ctx: ctx, Config: cfg, Logger: logger})
	require.NoError(t, err)

	seeder := impl.NewSeedService(impl.SeedServiceParams{
		Config:       cfg,
		Admins:       admins,
		Hasher:       hasher,
		Services:     services,
		Features:     features,
		Testimonials: testimonials,
		FAQs:         faqs,
		ContactInfo:  contactInfo,
		CTASection:   ctaSection,
		Logger:       logger,
	})
	require.NoError(t, seeder.Seed(ctx))

	authUC := impl.NewAuthService(admins, hasher, tokens, logger)
	appointmentUC := impl.NewAppointmentService(impl.AppointmentServiceParams{
		Lc:       lc,
		Repo:     appointments,
		Notifier: notifier,
		Logger:   logger,
	})
	serviceUC := impl.NewServiceService(services, logger)
	uploadUC := impl.NewUploadService(blobs, logger)

	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	routerParams := router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(authUC),
		AppointmentHandler: handler.NewAppointmentHandler(appointmentUC),
		BlogPostHandler:    handler.NewBlogPostHandler(impl.NewBlogPostService(document.NewBlogPostRepository(store), logger)),
		ServiceHandler:     handler.NewServiceHandler(serviceUC),
		FeatureHandler:     handler.NewFeatureHandler(impl.NewFeatureService(features, logger)),
		TestimonialHandler: handler.NewTestimonialHandler(impl.NewTestimonialService(testimonials, logger)),
		FAQHandler:         handler.NewFAQHandler(impl.NewFAQService(faqs, logger)),
		ProductHandler:     handler.NewProductHandler(impl.NewProductService(document.NewProductRepository(store), logger)),
		ContactInfoHandler: handler.NewContactInfoHandler(impl.NewContactInfoService(contactInfo, qrcode.NewQRCodeService(cfg), logger)),
		CTASectionHandler:  handler.NewCTASectionHandler(impl.NewCTASectionService(ctaSection, logger)),
		CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{
			CommentUC: impl.NewCommentService(comments, services, logger),
			Logger:    logger,
		}),
		UploadHandler: handler.NewUploadHandler(handler.UploadHandlerParams{
			UploadUC: uploadUC,
			Config:   cfg,
			Logger:   logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(authUC),
		Config:         cfg,
	}

	return &testServer{t: t, echo: newEcho(cfg, logger, routerParams)}
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) login() string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"}, "")
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(s.t, rec, &out)
	require.NotEmpty(s.t, out.AccessToken)
	require.Equal(s.t, "bearer", out.TokenType)

	return out.AccessToken
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, rec, &body)

	return body.Error.Code
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/api/"} {
		rec := srv.do(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		decode(t, rec, &body)
		assert.Equal(t, "ok", body["status"])
	}
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)

	t.Run("wrong password is rejected", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
	})

	t.Run("verify needs a token", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/auth/verify", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = srv.do(http.MethodGet, "/api/auth/verify", nil, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verify with a valid token", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/auth/verify", nil, srv.login())
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Username string `json:"username"`
			Valid    bool   `json:"valid"`
		}
		decode(t, rec, &body)
		assert.Equal(t, "admin", body.Username)
		assert.True(t, body.Valid)
	})

	t.Run("register rejects a taken username", func(t *testing.T) {
		token := srv.login()

		rec := srv.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "editor", "password": "secret1"}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "password")

		rec = srv.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "editor", "password": "secret1"}, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "USERNAME_TAKEN", errorCode(t, rec))
	})
}

func TestAppointments(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login()

	valid := map[string]string{
		"customer_name": "Ayşe Yılmaz",
		"phone":         "+905551112233",
		"email":         "ayse@example.com",
		"service":       "Periyodik Bakım",
		"date":          "2026-11-02",
		"time":          "10:30",
	}

	t.Run("invalid email persists nothing", func(t *testing.T) {
		invalid := map[string]string{}
		for k, v := range valid {
			invalid[k] = v
		}
		invalid["email"] = "not-an-email"

		rec := srv.do(http.MethodPost, "/api/appointments", invalid, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = srv.do(http.MethodGet, "/api/appointments", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("listing needs an admin", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/appointments", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("public booking then confirmation", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/appointments", valid, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var created entity.Appointment
		decode(t, rec, &created)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, entity.AppointmentPending, created.Status)

		rec = srv.do(http.MethodPut, "/api/appointments/"+created.ID, map[string]string{"status": "confirmed"}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated entity.Appointment
		decode(t, rec, &updated)
		assert.Equal(t, entity.AppointmentConfirmed, updated.Status)
		assert.Equal(t, created.Email, updated.Email)

		rec = srv.do(http.MethodPut, "/api/appointments/"+created.ID, map[string]string{"status": "done"}, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = srv.do(http.MethodDelete, "/api/appointments/"+created.ID, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Appointment deleted successfully"}`, rec.Body.String())

		rec = srv.do(http.MethodGet, "/api/appointments/"+created.ID, nil, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "APPOINTMENT_NOT_FOUND", errorCode(t, rec))
	})
}

func TestProducts(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login()

	create := func(body map[string]any) entity.Product {
		t.Helper()

		rec := srv.do(http.MethodPost, "/api/products", body, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var product entity.Product
		decode(t, rec, &product)

		return product
	}

	car := create(map[string]any{"category": "car", "title": "Fiat Egea", "price": 450000, "status": "active"})
	create(map[string]any{"category": "car", "title": "Renault Clio", "price": 380000, "status": "sold"})
	create(map[string]any{"category": "part", "title": "Fren Balatası", "price": 1200})

	t.Run("defaults are filled", func(t *testing.T) {
		assert.Equal(t, "TRY", car.Currency)
		assert.Equal(t, []string{}, car.Images)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/products/"+car.ID, map[string]any{"price": 425000}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated entity.Product
		decode(t, rec, &updated)
		assert.InDelta(t, 425000, updated.Price, 0.001)
		assert.Equal(t, car.Title, updated.Title)
		assert.Equal(t, car.Category, updated.Category)
		assert.Equal(t, car.Status, updated.Status)
		assert.True(t, car.CreatedAt.Equal(updated.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(car.UpdatedAt))
	})

	t.Run("empty collections clear the stored ones", func(t *testing.T) {
		listed := create(map[string]any{
			"category": "car",
			"title":    "Toyota Corolla",
			"status":   "sold",
			"images":   []string{"/uploads/products/a.png"},
			"specs":    map[string]string{"km": "120000"},
		})
		require.Len(t, listed.Images, 1)

		rec := srv.do(http.MethodPut, "/api/products/"+listed.ID, map[string]any{
			"images": []string{},
			"specs":  map[string]string{"km": "125000"},
		}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated entity.Product
		decode(t, rec, &updated)
		assert.Empty(t, updated.Images)
		assert.Equal(t, map[string]string{"km": "125000"}, updated.Specs)
		assert.Equal(t, listed.Title, updated.Title)
	})

	t.Run("filters by category and status", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/products?category=car&status=active", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var listed []entity.Product
		decode(t, rec, &listed)
		require.Len(t, listed, 1)
		assert.Equal(t, car.ID, listed[0].ID)

		rec = srv.do(http.MethodGet, "/api/products?category=part", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		decode(t, rec, &listed)
		assert.Len(t, listed, 1)
	})

	t.Run("writes need an admin", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/products", map[string]any{"category": "car", "title": "x"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestComments(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login()

	rec := srv.do(http.MethodGet, "/api/services", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var services []entity.Service
	decode(t, rec, &services)
	require.NotEmpty(t, services)
	serviceID := services[0].ID

	comment := map[string]any{
		"service_id":   serviceID,
		"user_name":    "Mehmet",
		"user_email":   "mehmet@example.com",
		"comment_text": "Çok memnun kaldım",
		"rating":       5,
	}

	t.Run("unknown service is rejected", func(t *testing.T) {
		unknown := map[string]any{}
		for k, v := range comment {
			unknown[k] = v
		}
		unknown["service_id"] = "missing"

		rec := srv.do(http.MethodPost, "/api/comments", unknown, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("moderation flow", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/comments", comment, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var created entity.Comment
		decode(t, rec, &created)
		assert.Equal(t, entity.CommentPending, created.Status)

		rec = srv.do(http.MethodGet, "/api/comments?service_id="+serviceID, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())

		rec = srv.do(http.MethodPut, "/api/comments/"+created.ID+"/status", map[string]string{"status": "published"}, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_COMMENT_STATUS", errorCode(t, rec))

		rec = srv.do(http.MethodPut, "/api/comments/"+created.ID+"/status", map[string]string{"status": "approved"}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = srv.do(http.MethodGet, "/api/comments?service_id="+serviceID, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var approved []entity.Comment
		decode(t, rec, &approved)
		require.Len(t, approved, 1)
		assert.Equal(t, created.ID, approved[0].ID)

		rec = srv.do(http.MethodGet, "/api/comments/admin", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = srv.do(http.MethodDelete, "/api/comments/"+created.ID, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("supplied status is ignored on create", func(t *testing.T) {
		approved := map[string]any{"status": "approved"}
		for k, v := range comment {
			approved[k] = v
		}

		rec := srv.do(http.MethodPost, "/api/comments", approved, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var created entity.Comment
		decode(t, rec, &created)
		assert.Equal(t, entity.CommentPending, created.Status)

		rec = srv.do(http.MethodGet, "/api/comments?service_id="+serviceID, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())

		rec = srv.do(http.MethodDelete, "/api/comments/"+created.ID, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejected comments stay hidden", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/comments", comment, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var created entity.Comment
		decode(t, rec, &created)

		rec = srv.do(http.MethodPut, "/api/comments/"+created.ID+"/status", map[string]string{"status": "rejected"}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var rejected entity.Comment
		decode(t, rec, &rejected)
		assert.Equal(t, entity.CommentRejected, rejected.Status)

		for _, path := range []string{"/api/comments", "/api/comments?service_id=" + serviceID} {
			rec = srv.do(http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, "[]", rec.Body.String(), path)
		}

		rec = srv.do(http.MethodGet, "/api/comments/admin?status=rejected", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var listed []entity.Comment
		decode(t, rec, &listed)
		require.Len(t, listed, 1)
		assert.Equal(t, created.ID, listed[0].ID)
	})
}

func TestSeededContent(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/contact-info", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info entity.ContactInfo
	decode(t, rec, &info)
	assert.Equal(t, entity.ContactInfoID, info.ID)
	assert.NotEmpty(t, info.WhatsApp)

	rec = srv.do(http.MethodGet, "/api/contact-info/whatsapp-qr", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = srv.do(http.MethodGet, "/api/cta-section", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cta entity.CTASection
	decode(t, rec, &cta)
	assert.Equal(t, "Hemen Randevu Al", cta.ButtonText)

	rec = srv.do(http.MethodGet, "/api/faqs", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var faqs []entity.FAQ
	decode(t, rec, &faqs)
	assert.Len(t, faqs, 4)
}

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func (s *testServer) upload(path, contentType string, data []byte, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(s.t, err)
	_, err = part.Write(data)
	require.NoError(s.t, err)
	require.NoError(s.t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestUploads(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login()

	t.Run("requires an admin", func(t *testing.T) {
		rec := srv.upload("/api/upload/service-image", "image/png", pngHeader, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("plain text is rejected", func(t *testing.T) {
		rec := srv.upload("/api/upload/product-image", "text/plain", []byte("hello"), token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "UNSUPPORTED_FILE_TYPE", errorCode(t, rec))
	})

	t.Run("stored image is served back", func(t *testing.T) {
		rec := srv.upload("/api/upload/product-image", "image/png", pngHeader, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out handler.UploadResponse
		decode(t, rec, &out)
		require.Contains(t, out.ImageURL, "/uploads/products/")

		rec = srv.do(http.MethodGet, out.ImageURL, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, pngHeader, rec.Body.Bytes())
	})

	t.Run("missing upload is not found", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/uploads/products/missing.png", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
