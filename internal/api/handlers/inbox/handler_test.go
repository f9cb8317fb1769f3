package inbox

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/rental-notifier/internal/mocks/api/handlers/inbox"
	"github.com/aliskhannn/rental-notifier/internal/model"
)

func get(h *Handler, userID, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/notifications"+query, nil)
	c.Params = gin.Params{{Key: "id", Value: userID}}

	h.List(c)

	return w
}

func TestHandler_List_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockinboxRepository(ctrl)
	h := NewHandler(repo)

	repo.EXPECT().ListByUser(gomock.Any(), "u1", defaultLimit).Return([]model.Notification{
		{UserID: "u1", Title: "Booking Confirmed!", Type: model.TypeBookingConfirmed},
	}, nil)

	w := get(h, "u1", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result []model.Notification `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Result, 1)
	assert.Equal(t, "Booking Confirmed!", resp.Result[0].Title)
}

func TestHandler_List_CustomLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockinboxRepository(ctrl)
	h := NewHandler(repo)

	repo.EXPECT().ListByUser(gomock.Any(), "u1", 5).Return(nil, nil)

	w := get(h, "u1", "?limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_List_Errors(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		query  string
		repo   error
		status int
	}{
		{name: "missing user", userID: "", status: http.StatusBadRequest},
		{name: "bad limit", userID: "u1", query: "?limit=abc", status: http.StatusBadRequest},
		{name: "limit too large", userID: "u1", query: "?limit=1000", status: http.StatusBadRequest},
		{name: "repository error", userID: "u1", repo: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockinboxRepository(ctrl)
			if tt.repo != nil {
				repo.EXPECT().ListByUser(gomock.Any(), tt.userID, defaultLimit).Return(nil, tt.repo)
			}

			w := get(NewHandler(repo), tt.userID, tt.query)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
