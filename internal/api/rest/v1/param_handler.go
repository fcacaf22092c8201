package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/domain/params"
)

// ParamHandler defines the interface for handling parameter resolution operations
type ParamHandler interface {
	ListAdmin(ctx *gin.Context)
	GetAdmin(ctx *gin.Context)
	SaveAdmin(ctx *gin.Context)
	ListForUser(ctx *gin.Context)
	GetForUser(ctx *gin.Context)
	SaveForUser(ctx *gin.Context)
}

// ParamHandler struct holds the services
type paramHandler struct {
	adminParamService params.AdminParamService
	userParamService  params.UserParamService
	userDirectory     identity.Directory
}

// NewParamHandler creates a new ParamHandler
func NewParamHandler(adminParamService params.AdminParamService, userParamService params.UserParamService, userDirectory identity.Directory) ParamHandler {
	return &paramHandler{
		adminParamService: adminParamService,
		userParamService:  userParamService,
		userDirectory:     userDirectory,
	}
}

// ListAdmin handles the GET request to resolve all admin-level parameters
// @Summary List all admin-level parameters grouped by namespace
// @Description Resolve every registered admin-level parameter to its effective value, including namespaces without admin parameters.
// @Tags Parameter
// @Accept json
// @Produce json
// @Success 200 {array} NamespaceParamsResponse
// @Failure 500 {object} ErrorResponse
// @Router /parameters/admin [get]
func (handler *paramHandler) ListAdmin(ctx *gin.Context) {
	namespaces, err := handler.adminParamService.List(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing parameters: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newNamespaceParamsResponse(namespaces))
}

// GetAdmin handles the GET request to resolve one admin-level parameter
// @Summary Retrieve the effective value of an admin-level parameter
// @Description Fetch the stored override of an admin-level parameter, falling back to its declared default.
// @Tags Parameter
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace"
// @Param name path string true "Parameter Name"
// @Success 200 {object} ValueResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /parameters/admin/{namespace}/{name} [get]
func (handler *paramHandler) GetAdmin(ctx *gin.Context) {
	namespace := ctx.Param("namespace")
	name := ctx.Param("name")

	value, err := handler.adminParamService.Get(ctx, namespace, name)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		if params.IsNotDefined(err) {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	valueResponse := ValueResponse{
		Namespace: namespace,
		Name:      name,
		Value:     value,
	}

	ctx.JSON(http.StatusOK, valueResponse)
}

// SaveAdmin handles the PUT request to persist an admin-level parameter value
// @Summary Set the value of an admin-level parameter
// @Description Persist a new value for an admin-level parameter, firing its change callback when the value changes.
// @Tags Parameter
// @Accept json
// @Produce json
// @Param namespace path string true "Namespace"
// @Param name path string true "Parameter Name"
// @Param requestBody body SaveParameterRequest true "Parameter Value"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /parameters/admin/{namespace}/{name} [put]
func (handler *paramHandler) SaveAdmin(ctx *gin.Context) {
	namespace := ctx.Param("namespace")
	name := ctx.Param("name")

	var request SaveParameterRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid parameter data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := handler.adminParamService.Save(ctx, namespace, name, request.Value); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		if params.IsNotDefined(err) {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("saved parameter %s", params.FullName(namespace, name))
	ctx.JSON(http.StatusOK, infoResponse)
}

// ListForUser handles the GET request to resolve a user's parameters
// @Summary List the user-level parameters visible to a user
// @Description Resolve every user-level parameter for the given account, skipping namespaces without user parameters and namespaces requiring a mailbox the user does not own.
// @Tags Parameter
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} NamespaceParamsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id}/parameters [get]
func (handler *paramHandler) ListForUser(ctx *gin.Context) {
	account, ok := handler.lookupUser(ctx)
	if !ok {
		return
	}

	namespaces, err := handler.userParamService.List(ctx, account)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing parameters: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newNamespaceParamsResponse(namespaces))
}

// GetForUser handles the GET request to resolve one user-level parameter
// @Summary Retrieve the effective value of a user-level parameter
// @Description Fetch the user's stored override of a user-level parameter, falling back to its declared default.
// @Tags Parameter
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param namespace path string true "Namespace"
// @Param name path string true "Parameter Name"
// @Success 200 {object} ValueResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id}/parameters/{namespace}/{name} [get]
func (handler *paramHandler) GetForUser(ctx *gin.Context) {
	namespace := ctx.Param("namespace")
	name := ctx.Param("name")

	account, ok := handler.lookupUser(ctx)
	if !ok {
		return
	}

	value, err := handler.userParamService.Get(ctx, account, namespace, name)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		if params.IsNotDefined(err) {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	valueResponse := ValueResponse{
		Namespace: namespace,
		Name:      name,
		Value:     value,
	}

	ctx.JSON(http.StatusOK, valueResponse)
}

// SaveForUser handles the PUT request to persist a user-level parameter value
// @Summary Set the value of a user-level parameter for a user
// @Description Persist a new value for a user-level parameter scoped to the given account, firing its change callback when the value changes.
// @Tags Parameter
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param namespace path string true "Namespace"
// @Param name path string true "Parameter Name"
// @Param requestBody body SaveParameterRequest true "Parameter Value"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id}/parameters/{namespace}/{name} [put]
func (handler *paramHandler) SaveForUser(ctx *gin.Context) {
	namespace := ctx.Param("namespace")
	name := ctx.Param("name")

	var request SaveParameterRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid parameter data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	account, ok := handler.lookupUser(ctx)
	if !ok {
		return
	}

	if err := handler.userParamService.Save(ctx, account, namespace, name, request.Value); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		if params.IsNotDefined(err) {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("saved parameter %s for user %s", params.FullName(namespace, name), account.ID)
	ctx.JSON(http.StatusOK, infoResponse)
}

// lookupUser resolves the account addressed by the id path parameter. It
// writes the error response itself and reports whether the caller may proceed.
func (handler *paramHandler) lookupUser(ctx *gin.Context) (*identity.UserAccount, bool) {
	userID := ctx.Param("id")

	account, err := handler.userDirectory.GetByID(ctx, userID)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, identity.ErrUserNotFound) {
			errorResponse.Message = fmt.Sprintf("user with id %s not found", userID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return nil, false
		}
		errorResponse.Message = fmt.Sprintf("error fetching user with id %s: %v", userID, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return nil, false
	}

	return account, true
}
