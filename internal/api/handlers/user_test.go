package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"apollo-survey-backend/internal/api/handlers"
	"apollo-survey-backend/internal/database/models"
	apperrors "apollo-survey-backend/internal/errors"
	"apollo-survey-backend/internal/mocks"
	"apollo-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/users", suite.handler.ListUsers)
	suite.router.GET("/users/me", suite.handler.GetUserInfo)
	suite.router.GET("/users/search", suite.handler.SearchUsers)
	suite.router.GET("/users/:id", suite.handler.GetUser)
	suite.router.POST("/users", suite.handler.CreateUser)
	suite.router.PUT("/users/:id", suite.handler.UpdateUser)
	suite.router.DELETE("/users/:id", suite.handler.DeleteUser)
	suite.router.POST("/users/:id/roles/:roleId", suite.handler.AddUserRole)
	suite.router.DELETE("/users/:id/roles/:roleId", suite.handler.DeleteUserRole)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestGetUser() {
	user := &models.User{ID: 4, Username: "cinnamon", PrimaryEmail: "cinnamon@apollo.local"}
	suite.mockService.EXPECT().FindByID(uint(4)).Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/4", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got models.User
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("cinnamon", got.Username)
}

func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	suite.mockService.EXPECT().FindByID(uint(99)).Return(nil, apperrors.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/99", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUserInvalidID() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/abc", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestSearchUsersRequiresQuery() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/search", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestSearchUsers() {
	users := []models.User{{ID: 3, Username: "barnbarn"}}
	suite.mockService.EXPECT().FindByNameContaining("barn").Return(users, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/search?q=barn", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser() {
	body := service.SaveUserRequest{Username: "puttat", PrimaryEmail: "puttat@apollo.local", RoleIDs: []uint{2}}
	created := &models.User{ID: 5, Username: "puttat", PrimaryEmail: "puttat@apollo.local"}
	suite.mockService.EXPECT().Save(gomock.Any()).DoAndReturn(func(req *service.SaveUserRequest) (*models.User, error) {
		suite.Zero(req.ID)
		suite.Equal("puttat", req.Username)
		return created, nil
	})

	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
}

// TestCreateUserIgnoresSubmittedID tests that a client-supplied ID never
// turns a create into an update
func (suite *UserHandlerTestSuite) TestCreateUserIgnoresSubmittedID() {
	suite.mockService.EXPECT().Save(gomock.Any()).DoAndReturn(func(req *service.SaveUserRequest) (*models.User, error) {
		suite.Zero(req.ID)
		return &models.User{ID: 8, Username: "misskitty"}, nil
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(`{"id":42,"username":"misskitty","primary_email":"misskitty@apollo.local"}`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUserUnknownRole() {
	suite.mockService.EXPECT().Save(gomock.Any()).Return(nil, apperrors.ErrRoleNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(`{"username":"puttat","primary_email":"puttat@apollo.local","role_ids":[77]}`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// TestUpdateUserResolvesPrincipal tests that the X-Username header is resolved
// and passed through to the permission check
func (suite *UserHandlerTestSuite) TestUpdateUserResolvesPrincipal() {
	principal := &models.User{ID: 1, Username: "admin"}
	updated := &models.User{ID: 4, Username: "cinnamon"}
	suite.mockService.EXPECT().FindByName("admin").Return(principal, nil)
	suite.mockService.EXPECT().Update(gomock.Any(), uint(4), principal).Return(updated, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/4", bytes.NewBufferString(`{"username":"cinnamon","primary_email":"cinnamon@apollo.local"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", "admin")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

// TestUpdateUserNoHeader tests that a missing header yields a nil principal
// and the denial surfaces as 403
func (suite *UserHandlerTestSuite) TestUpdateUserNoHeader() {
	suite.mockService.EXPECT().Update(gomock.Any(), uint(4), nil).Return(nil, apperrors.ErrNotOwnerNorAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/4", bytes.NewBufferString(`{"username":"cinnamon","primary_email":"cinnamon@apollo.local"}`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

// TestUpdateUserUnknownPrincipal tests that an unresolvable header behaves
// like no header at all
func (suite *UserHandlerTestSuite) TestUpdateUserUnknownPrincipal() {
	suite.mockService.EXPECT().FindByName("ghost").Return(nil, apperrors.ErrUserNotFound)
	suite.mockService.EXPECT().Update(gomock.Any(), uint(4), nil).Return(nil, apperrors.ErrNotOwnerNorAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/4", bytes.NewBufferString(`{"username":"cinnamon","primary_email":"cinnamon@apollo.local"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Username", "ghost")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	suite.mockService.EXPECT().Delete(uint(4)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/4", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUserNotFound() {
	suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/99", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestAddUserRole() {
	suite.mockService.EXPECT().AddUserRole(uint(4), uint(2)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/4/roles/2", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUserRoleMissingPair() {
	suite.mockService.EXPECT().DeleteUserRole(uint(4), uint(2)).Return(apperrors.ErrUserRoleNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/4/roles/2", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUserInfo() {
	user := &models.User{ID: 1, Username: "admin"}
	suite.mockService.EXPECT().FindByName("admin").Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/me", nil)
	req.Header.Set("X-Username", "admin")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUserInfoMissingHeader() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/me", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
