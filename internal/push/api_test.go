package push_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/dormlife/community-api/internal/model"
	"github.com/dormlife/community-api/internal/push"
	sharedContext "github.com/dormlife/community-api/internal/shared/context"
	sharedError "github.com/dormlife/community-api/internal/shared/error"
	"github.com/dormlife/community-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment wires the push handler behind a fake authentication step
func setupTestEnvironment(t *testing.T, memberID uint32) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	pushHandler := push.NewPushHandler(push.NewPushService(db, push.NewPushRepository()))

	router := testutil.SetupTestRouter()
	router.Use(func(c *gin.Context) {
		sharedContext.SetMemberID(c, strconv.FormatUint(uint64(memberID), 10))
	})
	router.GET("/api/v1/push", pushHandler.List)
	router.PUT("/api/v1/push/check", pushHandler.Check)

	return router, db
}

func createNotification(t *testing.T, db *gorm.DB, memberID uint32, title string) model.PushNotification {
	t.Helper()

	n := model.PushNotification{MemberID: memberID, Title: title, Body: title + " body"}
	require.NoError(t, db.Create(&n).Error)
	return n
}

func TestList_NewestFirst(t *testing.T) {
	router, db := setupTestEnvironment(t, 1)

	createNotification(t, db, 1, "first")
	createNotification(t, db, 1, "second")
	createNotification(t, db, 2, "someone else")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/push",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response push.ListResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Notifications, 2)
	assert.Equal(t, "second", response.Notifications[0].Title)
	assert.Equal(t, "first", response.Notifications[1].Title)
	assert.Equal(t, 2, response.Unchecked)
}

func TestCheck_MarksOwnNotifications(t *testing.T) {
	router, db := setupTestEnvironment(t, 1)

	first := createNotification(t, db, 1, "first")
	second := createNotification(t, db, 1, "second")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/push/check",
		Body:   push.CheckRequest{PushIDs: []uint32{first.ID, first.ID}},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var stored []model.PushNotification
	require.NoError(t, db.Order("id ASC").Find(&stored).Error)
	assert.True(t, stored[0].IsChecked)
	assert.False(t, stored[1].IsChecked)
	assert.Equal(t, second.ID, stored[1].ID)
}

func TestCheck_ForeignNotificationChangesNothing(t *testing.T) {
	router, db := setupTestEnvironment(t, 1)

	own := createNotification(t, db, 1, "mine")
	foreign := createNotification(t, db, 2, "theirs")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/push/check",
		Body:   push.CheckRequest{PushIDs: []uint32{own.ID, foreign.ID}},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "PUSH-001", errorResponse.Code)

	var checked int64
	require.NoError(t, db.Model(&model.PushNotification{}).Where("is_checked = ?", true).Count(&checked).Error)
	assert.Zero(t, checked)
}

func TestCheck_ValidationError(t *testing.T) {
	router, _ := setupTestEnvironment(t, 1)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/push/check",
		Body:   map[string]any{"pushIds": []uint32{}},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
