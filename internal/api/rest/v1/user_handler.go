package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/param-vault/param-vault/internal/domain/identity"
)

// UserHandler defines the interface for handling user account operations
type UserHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

// UserHandler struct holds the services
type userHandler struct {
	userDirectory identity.Directory
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userDirectory identity.Directory) UserHandler {
	return &userHandler{
		userDirectory: userDirectory,
	}
}

// Create handles the POST request to register a user account
// @Summary Register a user account
// @Description Create a user account that user-level parameter overrides can be scoped to.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body CreateUserRequest true "User Account Data"
// @Success 201 {object} UserAccountResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (handler *userHandler) Create(ctx *gin.Context) {

	var request CreateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	account := &identity.UserAccount{
		ID:              uuid.New().String(),
		Email:           request.Email,
		Mailbox:         request.Mailbox,
		DateTimeCreated: time.Now(),
	}

	if err := handler.userDirectory.Create(ctx, account); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating user: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newUserAccountResponse(account))
}

// List handles the GET request to list registered user accounts
// @Summary List user accounts
// @Description Fetch every registered user account ordered by email address.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {array} UserAccountResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (handler *userHandler) List(ctx *gin.Context) {
	accounts, err := handler.userDirectory.List(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing users: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []UserAccountResponse{}
	for _, account := range accounts {
		listResponse = append(listResponse, newUserAccountResponse(account))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a user account by ID
// @Summary Retrieve a user account by ID
// @Description Fetch a registered user account, including whether it owns a mailbox.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserAccountResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [get]
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID := ctx.Param("id")

	account, err := handler.userDirectory.GetByID(ctx, userID)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, identity.ErrUserNotFound) {
			errorResponse.Message = fmt.Sprintf("user with id %s not found", userID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error fetching user with id %s: %v", userID, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newUserAccountResponse(account))
}
