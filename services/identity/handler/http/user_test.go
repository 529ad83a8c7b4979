package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
	"github.com/rajatks/sevakart/services/identity/mocks"
)

func TestUserHandler_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	handler := NewUserHandler(mockUC)

	mockUC.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "9876543210", user.Phone)
			assert.Equal(t, "Asha Verma", user.FullName)
			return nil
		})

	rec := performJSON(t, handler.CreateUser, `{"phone":"9876543210","fullname":"Asha Verma"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "User created successfully", resp.Message)
}

func TestUserHandler_CreateUser_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	handler := NewUserHandler(mockUC)

	mockUC.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(errs.ErrInvalidInput)

	rec := performJSON(t, handler.CreateUser, `{"phone":"12345"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_GetUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	handler := NewUserHandler(mockUC)

	id := uuid.New()
	mockUC.EXPECT().
		GetUserByID(gomock.Any(), id.String()).
		Return(&models.User{ID: id, Phone: "919876543210", FullName: "Asha Verma"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	handler := NewUserHandler(mockUC)

	mockUC.EXPECT().
		GetUserByID(gomock.Any(), "unknown").
		Return(nil, errs.ErrAccountNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
