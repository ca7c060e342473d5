// internal/handlers/study_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vocaaid/internal/handlers"
	"vocaaid/internal/model"
	"vocaaid/internal/service/mocks"
)

func newStudyRouter(svc *mocks.MockStudyService) *chi.Mux {
	h := handlers.NewStudyHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Get("/api/v1/study", h.GetState)
	r.Post("/api/v1/study/start", h.Start)
	r.Post("/api/v1/study/reveal", h.Reveal)
	r.Post("/api/v1/study/advance", h.Advance)
	r.Post("/api/v1/study/flip", h.Flip)
	r.Post("/api/v1/study/star", h.ToggleStar)
	r.Post("/api/v1/study/reset", h.Reset)
	r.Post("/api/v1/study/retry", h.Retry)
	return r
}

func TestStudyHandler_Start(t *testing.T) {
	inProgress := &model.StudyState{Phase: model.PhaseInProgress, Total: 3, Current: &model.Word{ID: "w1"}}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mocks.MockStudyService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 全単語で開始",
			body: map[string]interface{}{"selection": map[string]interface{}{"mode": "all"}},
			setupMock: func(svc *mocks.MockStudyService) {
				svc.On("Start", mock.Anything, model.Selection{Mode: model.SelectionAll}).
					Return(inProgress, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 合致する単語が無い",
			body: map[string]interface{}{"selection": map[string]interface{}{"mode": "starred"}},
			setupMock: func(svc *mocks.MockStudyService) {
				svc.On("Start", mock.Anything, model.Selection{Mode: model.SelectionStarred}).
					Return(nil, model.ErrEmptySelection).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "EMPTY_SELECTION",
		},
		{
			name:           "異常系: 不正なモードはバリデーションで弾く",
			body:           map[string]interface{}{"selection": map[string]interface{}{"mode": "bogus"}},
			setupMock:      func(svc *mocks.MockStudyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: フォルダ指定なのにIDが無い",
			body:           map[string]interface{}{"selection": map[string]interface{}{"mode": "folder"}},
			setupMock:      func(svc *mocks.MockStudyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := mocks.NewMockStudyService(t)
			tc.setupMock(mockSvc)
			router := newStudyRouter(mockSvc)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/study/start", tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr.Body.Bytes())
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
			}
		})
	}
}

func TestStudyHandler_RevealとAdvance(t *testing.T) {
	t.Run("正常系: Reveal", func(t *testing.T) {
		mockSvc := mocks.NewMockStudyService(t)
		mockSvc.On("Reveal", mock.Anything).
			Return(&model.StudyState{Phase: model.PhaseInProgress, IsRevealed: true}, nil).Once()
		router := newStudyRouter(mockSvc)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/study/reveal", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var state model.StudyState
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
		assert.True(t, state.IsRevealed)
	})

	t.Run("異常系: 不正な遷移は409", func(t *testing.T) {
		mockSvc := mocks.NewMockStudyService(t)
		mockSvc.On("Advance", mock.Anything).Return(nil, model.ErrInvalidTransition).Once()
		router := newStudyRouter(mockSvc)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/study/advance", nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "INVALID_TRANSITION", errResp.Error.Code)
	})
}

func TestStudyHandler_ToggleStar(t *testing.T) {
	t.Run("正常系: 別印の切り替え", func(t *testing.T) {
		mockSvc := mocks.NewMockStudyService(t)
		mockSvc.On("ToggleStar", mock.Anything, "w1").
			Return(&model.StudyState{Phase: model.PhaseInProgress}, nil).Once()
		router := newStudyRouter(mockSvc)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/study/star",
			map[string]interface{}{"wordId": "w1"}))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: wordIdが無い", func(t *testing.T) {
		mockSvc := mocks.NewMockStudyService(t)
		router := newStudyRouter(mockSvc)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/study/star",
			map[string]interface{}{}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("異常系: スナップショットに無い単語は404", func(t *testing.T) {
		mockSvc := mocks.NewMockStudyService(t)
		mockSvc.On("ToggleStar", mock.Anything, "no-such-id").
			Return(nil, model.ErrNotFound).Once()
		router := newStudyRouter(mockSvc)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/study/star",
			map[string]interface{}{"wordId": "no-such-id"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestStudyHandler_GetState(t *testing.T) {
	mockSvc := mocks.NewMockStudyService(t)
	mockSvc.On("State", mock.Anything).
		Return(&model.StudyState{Phase: model.PhaseNotStarted}).Once()
	router := newStudyRouter(mockSvc)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, createRequest(t, "GET", "/api/v1/study", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var state model.StudyState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, model.PhaseNotStarted, state.Phase)
}
