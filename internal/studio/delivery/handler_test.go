package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	creditdomain "sellshot-backend/internal/credits/domain"
	studiodomain "sellshot-backend/internal/studio/domain"
	"sellshot-backend/pkg/ai"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransformUsecase struct {
	state *studiodomain.TransformSession
	err   error

	gotFilename    string
	gotContentType string
}

func (s *stubTransformUsecase) Upload(ctx context.Context, userID, filename, contentType string, file io.Reader) (*studiodomain.TransformSession, error) {
	s.gotFilename = filename
	s.gotContentType = contentType
	return s.state, s.err
}

func (s *stubTransformUsecase) Transform(ctx context.Context, userID, prompt string) (*studiodomain.TransformSession, error) {
	return s.state, s.err
}

func (s *stubTransformUsecase) Refine(ctx context.Context, userID, prompt string) (*studiodomain.TransformSession, error) {
	return s.state, s.err
}

func (s *stubTransformUsecase) Reset(userID string) *studiodomain.TransformSession {
	return s.state
}

func (s *stubTransformUsecase) State(userID string) *studiodomain.TransformSession {
	return s.state
}

type stubGenerateUsecase struct {
	state *studiodomain.GenerateSession
	err   error
}

func (s *stubGenerateUsecase) Generate(ctx context.Context, userID, prompt string) (*studiodomain.GenerateSession, error) {
	return s.state, s.err
}

func (s *stubGenerateUsecase) Refine(ctx context.Context, userID, prompt string) (*studiodomain.GenerateSession, error) {
	return s.state, s.err
}

func (s *stubGenerateUsecase) Reset(userID string) *studiodomain.GenerateSession {
	return s.state
}

func (s *stubGenerateUsecase) State(userID string) *studiodomain.GenerateSession {
	return s.state
}

func newTestServer(transform *stubTransformUsecase, generate *stubGenerateUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
	})

	h := NewStudioHandler(transform, generate)
	r.POST("/api/studio/upload", h.Upload)
	r.POST("/api/studio/transform", h.Transform)
	r.POST("/api/studio/refine", h.RefineTransform)
	r.POST("/api/generate", h.Generate)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTransform_InsufficientCreditsStatus(t *testing.T) {
	transform := &stubTransformUsecase{
		state: studiodomain.NewTransformSession(0),
		err:   creditdomain.ErrInsufficientCredits,
	}
	r := newTestServer(transform, &stubGenerateUsecase{state: studiodomain.NewGenerateSession(0)})

	w := postJSON(r, "/api/studio/transform", `{"prompt":"white background"}`)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "upgrade_required", body["code"])
}

func TestTransform_BusyStatus(t *testing.T) {
	transform := &stubTransformUsecase{
		state: studiodomain.NewTransformSession(0),
		err:   studiodomain.ErrBusy,
	}
	r := newTestServer(transform, &stubGenerateUsecase{state: studiodomain.NewGenerateSession(0)})

	w := postJSON(r, "/api/studio/transform", `{"prompt":"white background"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTransform_ServiceErrorStatus(t *testing.T) {
	transform := &stubTransformUsecase{
		state: studiodomain.NewTransformSession(0),
		err:   ai.NewServiceError("edit", "model overloaded"),
	}
	r := newTestServer(transform, &stubGenerateUsecase{state: studiodomain.NewGenerateSession(0)})

	w := postJSON(r, "/api/studio/transform", `{"prompt":"white background"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "model overloaded", body["error"])
}

func TestTransform_ServiceUnavailableStatus(t *testing.T) {
	transform := &stubTransformUsecase{
		state: studiodomain.NewTransformSession(0),
		err:   studiodomain.ErrServiceUnavailable,
	}
	r := newTestServer(transform, &stubGenerateUsecase{state: studiodomain.NewGenerateSession(0)})

	w := postJSON(r, "/api/studio/transform", `{"prompt":"white background"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGenerate_EmptyPromptStatus(t *testing.T) {
	generate := &stubGenerateUsecase{
		state: studiodomain.NewGenerateSession(0),
		err:   studiodomain.ErrEmptyPrompt,
	}
	r := newTestServer(&stubTransformUsecase{state: studiodomain.NewTransformSession(0)}, generate)

	w := postJSON(r, "/api/generate", `{"prompt":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_PassesFileMetadata(t *testing.T) {
	sess := studiodomain.NewTransformSession(0)
	sess.Step = studiodomain.TransformStepEdit
	transform := &stubTransformUsecase{state: sess}
	r := newTestServer(transform, &stubGenerateUsecase{state: studiodomain.NewGenerateSession(0)})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="product.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/studio/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "product.png", transform.gotFilename)
	assert.Equal(t, "image/png", transform.gotContentType)

	body := decodeBody(t, w)
	assert.Equal(t, "edit", body["step"])
}

func TestUpload_MissingFile(t *testing.T) {
	r := newTestServer(
		&stubTransformUsecase{state: studiodomain.NewTransformSession(0)},
		&stubGenerateUsecase{state: studiodomain.NewGenerateSession(0)},
	)

	w := postJSON(r, "/api/studio/upload", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
