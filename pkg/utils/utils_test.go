package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/nextgencars/backend/internal/domain/audit"
	"github.com/nextgencars/backend/internal/repository/mock"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseIDParam(t *testing.T) {
	c := newTestContext("/work-orders/12")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.Params = gin.Params{{Key: "id", Value: "-1"}}
	_, err = ParseIDParam(c, "id")
	assert.Error(t, err)
}

func TestParseQueryParams(t *testing.T) {
	c := newTestContext("/x?skip=5&client_id=3&bad=x")

	skip, err := ParseQueryIntParam(c, "skip")
	require.NoError(t, err)
	assert.Equal(t, 5, *skip)

	take, err := ParseQueryIntParam(c, "take")
	require.NoError(t, err)
	assert.Nil(t, take)

	_, err = ParseQueryIntParam(c, "bad")
	assert.Error(t, err)

	id, err := ParseQueryUintParam(c, "client_id")
	require.NoError(t, err)
	assert.Equal(t, uint(3), id)

	_, err = ParseQueryUintParam(c, "vehicle_id")
	assert.ErrorIs(t, err, ErrEmptyParameter)
}

func TestGetClaims(t *testing.T) {
	c := newTestContext("/")
	assert.Nil(t, GetClaims(c))
	_, err := GetUserIDFromContext(c)
	assert.Error(t, err)

	c.Set(ClaimsKey, &types.Claims{UserID: 4, Role: "admin"})
	require.NotNil(t, GetClaims(c))
	uid, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, uint(4), uid)
}

func TestLogAudit_RecordsMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepo(ctrl)

	meta := RequestMeta{IP: "10.0.0.1", UserAgent: "curl"}
	repo.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *audit.AuditLog) error {
			assert.Equal(t, uint(2), e.UserID)
			assert.Equal(t, "update", e.Action)
			assert.Equal(t, "work_order", e.ResourceType)
			assert.Equal(t, "10.0.0.1", e.IPAddress)
			assert.JSONEq(t, `{"a":1}`, string(e.OldData))
			assert.Nil(t, e.NewData)
			return nil
		})

	err := LogAudit(context.Background(), repo, 2, meta, "update", "work_order", "work_order_id=1", map[string]int{"a": 1}, nil, "")
	assert.NoError(t, err)
}

func TestLogAuditAsync_SurvivesCanceledRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepo(ctrl)

	done := make(chan struct{})
	repo.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e *audit.AuditLog) error {
			defer close(done)
			assert.NoError(t, ctx.Err())
			assert.Equal(t, "req-ua", e.UserAgent)
			return errors.New("db down")
		})

	ctx, cancel := context.WithCancel(WithRequestMeta(context.Background(), RequestMeta{UserAgent: "req-ua"}))
	cancel()
	LogAuditAsync(ctx, repo, 1, "delete", "work_order", "work_order_id=9", nil, nil, "")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was not written")
	}
}
