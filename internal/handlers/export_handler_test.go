// internal/handlers/export_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vocaaid/internal/config"
	"vocaaid/internal/handlers"
	"vocaaid/internal/model"
	"vocaaid/internal/service"
	"vocaaid/internal/service/mocks"
)

func TestExportHandler_Export(t *testing.T) {
	mockSvc := mocks.NewMockDatasetService(t)
	mockSvc.On("GetData", mock.Anything).Return(&model.Dataset{
		Folders: []model.Folder{{ID: "f1", Name: "<b>TOEIC</b>"}},
		Words:   []model.Word{{ID: "w1", English: "apple", Korean: "사과"}},
	}, nil).Once()

	h := handlers.NewExportHandler(mockSvc, service.NewExportService(), testLogger())
	router := chi.NewRouter()
	router.Post("/api/v1/export", h.Export)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/export", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	wantName := fmt.Sprintf("vocab_data_%s.json", time.Now().Format("2006-01-02"))
	assert.Equal(t, fmt.Sprintf(`attachment; filename="%s"`, wantName),
		rr.Header().Get("Content-Disposition"))

	var doc model.ExportDocument
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, config.ExportVersion, doc.Version)
	assert.Equal(t, config.ExportSource, doc.Source)
	require.Len(t, doc.Folders, 1)
	assert.Equal(t, "bTOEIC/b", doc.Folders[0].Name)
	require.Len(t, doc.Words, 1)
	assert.Equal(t, "apple", doc.Words[0].English)
}
