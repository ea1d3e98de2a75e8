package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/mock"
	"github.com/MKhiriev/perf-dashboard/internal/service"
	"github.com/MKhiriev/perf-dashboard/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	auth     *mock.MockAuthService
	accounts *mock.MockAccountService
	intake   *mock.MockFileIntakeService
	registry *mock.MockFileRegistryService
	datasets *mock.MockDatasetService
	appInfo  *mock.MockAppInfoService

	uploadsDir string
}

// newTestHandler builds a Handler whose services are all gomock mocks and
// whose uploads directory is a fresh temp dir.
func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := testDeps{
		auth:       mock.NewMockAuthService(ctrl),
		accounts:   mock.NewMockAccountService(ctrl),
		intake:     mock.NewMockFileIntakeService(ctrl),
		registry:   mock.NewMockFileRegistryService(ctrl),
		datasets:   mock.NewMockDatasetService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
		uploadsDir: t.TempDir(),
	}

	svcs := &service.Services{
		AuthService:         d.auth,
		AccountService:      d.accounts,
		FileIntakeService:   d.intake,
		FileRegistryService: d.registry,
		DatasetService:      d.datasets,
		AppInfoService:      d.appInfo,
		ImagePolicy:         models.ImagePolicy(d.uploadsDir),
		DatasetPolicy:       models.DatasetPolicy(d.uploadsDir),
	}

	var cfg config.StructuredConfig
	cfg.Storage.Files.UploadsDir = d.uploadsDir

	return NewHandler(svcs, cfg, logger.Nop()), d
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withToken makes token resolve to the given caller and sets the header.
func withToken(d testDeps, req *http.Request, userID int64, role models.Role) *http.Request {
	token := fmt.Sprintf("token-%d-%s", userID, role)
	d.auth.EXPECT().ParseToken(gomock.Any(), token).Return(models.Token{UserID: userID, Role: role}, nil).AnyTimes()
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formFile struct {
	field       string
	filename    string
	contentType string
	content     string
}

// multipartRequest encodes fields and files like a browser form post.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Message
}

// readAll drains an IncomingFile so assertions can look at its bytes.
func readAll(t *testing.T, f models.IncomingFile) string {
	t.Helper()
	b, err := io.ReadAll(f.Content)
	require.NoError(t, err)
	return string(b)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	var cfg config.StructuredConfig
	cfg.Storage.Files.UploadsDir = "uploads"
	cfg.Server.RequestTimeout = 0

	h := NewHandler(svcs, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, "uploads", h.uploadsDir)
	assert.NotNil(t, h.metrics)
	assert.NotSame(t, h.metrics, NewHandler(svcs, cfg, logger.Nop()).metrics, "each handler owns its registry")
}
