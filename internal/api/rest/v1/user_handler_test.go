//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/param-vault/param-vault/internal/domain/identity"
)

func TestUserHandler_Create_Success(t *testing.T) {
	mockDirectory := new(MockUserDirectory)

	handler := NewUserHandler(mockDirectory)

	mockDirectory.On("Create", mock.Anything, mock.AnythingOfType("*identity.UserAccount")).Return(nil)

	requestBody := `{"email": "admin@example.net", "mailbox": true}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.net")
	mockDirectory.AssertExpectations(t)
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	mockDirectory := new(MockUserDirectory)

	handler := NewUserHandler(mockDirectory)

	requestBody := `{"email": "not-an-email"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockDirectory.AssertNotCalled(t, "Create")
}

func TestUserHandler_Create_DirectoryError(t *testing.T) {
	mockDirectory := new(MockUserDirectory)

	handler := NewUserHandler(mockDirectory)

	mockDirectory.On("Create", mock.Anything, mock.AnythingOfType("*identity.UserAccount")).
		Return(errors.New("UNIQUE constraint failed"))

	requestBody := `{"email": "admin@example.net"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockDirectory.AssertExpectations(t)
}

func TestUserHandler_List_Success(t *testing.T) {
	mockDirectory := new(MockUserDirectory)

	handler := NewUserHandler(mockDirectory)

	account := testAccount()
	mockDirectory.On("List", mock.Anything).Return([]*identity.UserAccount{account}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), account.Email)
	mockDirectory.AssertExpectations(t)
}

func TestUserHandler_GetByID_Success(t *testing.T) {
	mockDirectory := new(MockUserDirectory)

	handler := NewUserHandler(mockDirectory)

	account := testAccount()
	mockDirectory.On("GetByID", mock.Anything, account.ID).Return(account, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/"+account.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: account.ID}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), account.ID)
	mockDirectory.AssertExpectations(t)
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	mockDirectory := new(MockUserDirectory)

	handler := NewUserHandler(mockDirectory)

	mockDirectory.On("GetByID", mock.Anything, "missing-id").Return(nil, identity.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockDirectory.AssertExpectations(t)
}
