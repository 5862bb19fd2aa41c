package handler

import (
	"log/slog"
	"net/http"

	"store/internal/delivery/api/response"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// AccountRequest represents the request body for creating or updating an account
type AccountRequest struct {
	Nickname  string `json:"nickname" validate:"required,max=50"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

func (r *AccountRequest) toInput() *usecase.AccountInput {
	return &usecase.AccountInput{
		Nickname:  r.Nickname,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// GetAccounts handles listing every account
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts, err := h.accountUC.GetAccounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accounts)
}

// GetAccount handles retrieving an account by ID
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// GetAccountByNickname handles retrieving an account by nickname
func (h *AccountHandler) GetAccountByNickname(c echo.Context) error {
	account, err := h.accountUC.GetAccountByNickname(c.Request().Context(), c.Param("nickname"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// CreateAccount handles account creation
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req AccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	account, err := h.accountUC.CreateAccount(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, account)
}

// UpdateAccount handles replacing an existing account
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req AccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// DeleteAccount handles removing an account with its orders
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
