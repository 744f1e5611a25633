package recommend_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/musicmentor/music-mentor-api/internal/app/services/generate"
	apprecommend "github.com/musicmentor/music-mentor-api/internal/app/services/recommend"
	handler "github.com/musicmentor/music-mentor-api/internal/infra/http/handlers/recommend"
	"github.com/musicmentor/music-mentor-api/internal/infra/http/handlers/recommend/mocks"
	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestRecommendHandler_Statuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		userID         string
		expectedReq    *apprecommend.Request
		serviceResult  []music.Seed
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			body: `{"prompt": "spiritual jazz", "desiredCount": 5}`,
			expectedReq: &apprecommend.Request{
				Prompt:       "spiritual jazz",
				DesiredCount: 5,
			},
			serviceResult:  []music.Seed{{Title: "Karma", Artist: "Pharoah Sanders"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "identity and library forwarded",
			body:   `{"prompt": "jazz", "libraryAlbums": [{"title": "Kind of Blue", "artist": "Miles Davis", "rating": 5}], "excludeAlbums": [{"title": "Blue Train", "artist": "John Coltrane"}], "desiredCount": 5}`,
			userID: "user-1",
			expectedReq: &apprecommend.Request{
				Identity:     "user-1",
				Prompt:       "jazz",
				Library:      []music.LibraryAlbum{{Title: "Kind of Blue", Artist: "Miles Davis", Rating: 5}},
				Exclude:      []music.Seed{{Title: "Blue Train", Artist: "John Coltrane"}},
				DesiredCount: 5,
			},
			serviceResult:  []music.Seed{{Title: "Karma", Artist: "Pharoah Sanders"}},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing count defaults to five",
			body: `{"prompt": "jazz"}`,
			expectedReq: &apprecommend.Request{
				Prompt:       "jazz",
				DesiredCount: 5,
			},
			serviceResult:  []music.Seed{{Title: "Karma", Artist: "Pharoah Sanders"}},
			expectedStatus: http.StatusOK,
		},
		{
			name: "count clamped to the upper bound",
			body: `{"prompt": "jazz", "desiredCount": 100}`,
			expectedReq: &apprecommend.Request{
				Prompt:       "jazz",
				DesiredCount: 10,
			},
			serviceResult:  []music.Seed{{Title: "Karma", Artist: "Pharoah Sanders"}},
			expectedStatus: http.StatusOK,
		},
		{
			name: "count clamped to the lower bound",
			body: `{"prompt": "jazz", "desiredCount": 1}`,
			expectedReq: &apprecommend.Request{
				Prompt:       "jazz",
				DesiredCount: 3,
			},
			serviceResult:  []music.Seed{{Title: "Karma", Artist: "Pharoah Sanders"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid body",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "blank prompt",
			body:           `{"prompt": "   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "prompt is required",
		},
		{
			name: "invalid model response",
			body: `{"prompt": "jazz", "desiredCount": 5}`,
			expectedReq: &apprecommend.Request{
				Prompt:       "jazz",
				DesiredCount: 5,
			},
			serviceErr:     fmt.Errorf("%w: not an array", generate.ErrInvalidResponse),
			expectedStatus: http.StatusBadGateway,
			expectedError:  "album generation failed",
		},
		{
			name: "nothing verified",
			body: `{"prompt": "jazz", "desiredCount": 5}`,
			expectedReq: &apprecommend.Request{
				Prompt:       "jazz",
				DesiredCount: 5,
			},
			serviceErr:     apprecommend.ErrNoAlbumsVerified,
			expectedStatus: http.StatusNotFound,
			expectedError:  "no albums could be verified",
		},
		{
			name: "unexpected error",
			body: `{"prompt": "jazz", "desiredCount": 5}`,
			expectedReq: &apprecommend.Request{
				Prompt:       "jazz",
				DesiredCount: 5,
			},
			serviceErr:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			ctx.Request = req

			mockService := &mocks.MockRecommendService{}
			t.Cleanup(func() {
				mockService.AssertExpectations(t)
			})

			if tt.expectedReq != nil {
				call := mockService.On("Recommend", mock.Anything, *tt.expectedReq)
				if tt.serviceErr != nil {
					call.Return(nil, tt.serviceErr).Once()
				} else {
					call.Return(tt.serviceResult, nil).Once()
				}
			}

			h := handler.New(otel.Tracer("test"), mockService)
			h.Recommend(ctx)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				var payload struct {
					Albums []music.Seed `json:"albums"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
				assert.Equal(t, tt.serviceResult, payload.Albums)
				return
			}

			var payload map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tt.expectedError, payload["error"])
		})
	}
}
