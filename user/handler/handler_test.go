package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lenon-studio/Lenon-Chat/standing"
	"github.com/Lenon-studio/Lenon-Chat/user/repo"
	"github.com/Lenon-studio/Lenon-Chat/user/repo/model"
	"github.com/Lenon-studio/Lenon-Chat/user/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	h := NewUserHandler(service.NewUserService(repo.NewUserRepo(db), nil, standing.NewGuard(db), "test-secret"))
	r := gin.New()
	r.PUT("/account/devicemode", h.UpdateDeviceMode)
	return r, db
}

func putJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// 客户端只有桌面和手机两种形态
func TestUpdateDeviceModeEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&model.User{
		ID:           "alice",
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "x",
	}).Error)

	w := putJSON(r, "/account/devicemode", `{"userId":"alice","mode":"phone"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, db.Where("id = ?", "alice").First(&user).Error)
	require.Equal(t, "phone", user.DeviceMode)

	w = putJSON(r, "/account/devicemode", `{"userId":"alice","mode":"desktop"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 不在枚举里的值直接被参数校验挡下
	w = putJSON(r, "/account/devicemode", `{"userId":"alice","mode":"tablet"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
