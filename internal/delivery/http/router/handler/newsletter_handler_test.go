package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	mockusecase "dealdigest/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newsletterFixture() *entity.Newsletter {
	return &entity.Newsletter{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Frequency:   entity.FrequencyDaily,
		Greeting:    "Good morning!",
		Closing:     "Bye.",
	}
}

func TestNewsletterHandler_Generate(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("Generate", mock.Anything, mock.Anything).Return(newsletterFixture(), nil)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodPost, "/newsletter", `{"frequency":"daily"}`)

	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"generatedAt"`)
	assert.Contains(t, body, `"processingTimeMs"`)
}

func TestNewsletterHandler_Generate_InvalidFrequency(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("Generate", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidFrequency)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodPost, "/newsletter", `{"frequency":"hourly"}`)

	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid frequency. Must be 'daily' or 'weekly'."}`, rec.Body.String())
}

func TestNewsletterHandler_Generate_MalformedStoreIDs(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)

	h := NewNewsletterHandler(uc, discardLogger())
	// storeIds as a string fails binding; the usecase is never invoked.
	c, rec := newTestContext(http.MethodPost, "/newsletter", `{"storeIds":"sobeys"}`)

	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"storeIds must be an array of strings."}`, rec.Body.String())
}

func TestNewsletterHandler_Retrieve_UnknownID(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("GetByID", mock.Anything, "unknown-id").Return(nil, domainerrors.ErrNewsletterNotFound)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodGet, "/newsletter?id=unknown-id", "")

	require.NoError(t, h.Retrieve(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Newsletter not found."}`, rec.Body.String())
}

func TestNewsletterHandler_Retrieve_LatestEmpty(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("Latest", mock.Anything).Return(nil, nil)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodGet, "/newsletter?latest=true", "")

	require.NoError(t, h.Retrieve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"newsletter":null`)
}

func TestNewsletterHandler_Retrieve_TextFormat(t *testing.T) {
	n := newsletterFixture()
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("GetByID", mock.Anything, n.ID.String()).Return(n, nil)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodGet, "/newsletter?id="+n.ID.String()+"&format=text", "")

	require.NoError(t, h.Retrieve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "newsletter-"+n.ID.String()+".txt")
	assert.Contains(t, rec.Body.String(), "Good morning!")
}

func TestNewsletterHandler_Retrieve_UnknownFormat(t *testing.T) {
	n := newsletterFixture()
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("GetByID", mock.Anything, n.ID.String()).Return(n, nil)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodGet, "/newsletter?id="+n.ID.String()+"&format=pdf", "")

	require.NoError(t, h.Retrieve(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsletterHandler_Retrieve_List(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("List", mock.Anything, 5).
		Return([]*entity.Newsletter{newsletterFixture()}, int64(12), nil)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodGet, "/newsletter?limit=5", "")

	require.NoError(t, h.Retrieve(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"total":12`)
	assert.Contains(t, body, `"limit":5`)
}

func TestNewsletterHandler_Retrieve_ListCapsLimit(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("List", mock.Anything, 30).Return([]*entity.Newsletter{}, int64(0), nil)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodGet, "/newsletter?limit=500", "")

	require.NoError(t, h.Retrieve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"limit":30`)
}

func TestNewsletterHandler_Delete_MissingID(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodDelete, "/newsletter", "")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Newsletter ID is required."}`, rec.Body.String())
}

func TestNewsletterHandler_Delete_NotFound(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("Delete", mock.Anything, "missing").Return(domainerrors.ErrNewsletterNotFound)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodDelete, "/newsletter?id=missing", "")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Newsletter not found."}`, rec.Body.String())
}

func TestNewsletterHandler_Delete_Success(t *testing.T) {
	uc := mockusecase.NewMockNewsletterUsecase(t)
	uc.On("Delete", mock.Anything, "some-id").Return(nil)

	h := NewNewsletterHandler(uc, discardLogger())
	c, rec := newTestContext(http.MethodDelete, "/newsletter?id=some-id", "")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
