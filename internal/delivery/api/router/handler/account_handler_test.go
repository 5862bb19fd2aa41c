package handler

import (
	"net/http"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	mockUsecase "store/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockAccountUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC})

	e := newTestEcho()
	e.POST("/api/accounts", h.CreateAccount)
	e.GET("/api/accounts/nickname/:nickname", h.GetAccountByNickname)
	e.DELETE("/api/accounts/:id", h.DeleteAccount)

	return e, accountUC
}

func TestAccountHandler_CreateAccount_InvalidEmail(t *testing.T) {
	e, _ := createTestAccountHandler(t)

	rec := serve(e, http.MethodPost, "/api/accounts",
		`{"nickname":"jane","firstName":"Jane","lastName":"Doe","email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"email": "email"}, decodeError(t, rec).Details)
}

func TestAccountHandler_CreateAccount_Conflict(t *testing.T) {
	e, accountUC := createTestAccountHandler(t)

	accountUC.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAccountAlreadyExists)

	rec := serve(e, http.MethodPost, "/api/accounts",
		`{"nickname":"jane","firstName":"Jane","lastName":"Doe","email":"jane@example.com"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", decodeError(t, rec).Code)
}

func TestAccountHandler_GetAccountByNickname(t *testing.T) {
	e, accountUC := createTestAccountHandler(t)

	accountUC.EXPECT().GetAccountByNickname(mock.Anything, "jane").
		Return(&entity.Account{ID: 1, Nickname: "jane", Email: "jane@example.com"}, nil)

	rec := serve(e, http.MethodGet, "/api/accounts/nickname/jane", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nickname":"jane"`)
}

func TestAccountHandler_GetAccountByNickname_IncludesOrders(t *testing.T) {
	e, accountUC := createTestAccountHandler(t)

	accountUC.EXPECT().GetAccountByNickname(mock.Anything, "jane").
		Return(&entity.Account{ID: 1, Nickname: "jane", Orders: []*entity.Order{{ID: 7, AccountID: 1}}}, nil)

	rec := serve(e, http.MethodGet, "/api/accounts/nickname/jane", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orders":[{"id":7`)
}

func TestAccountHandler_DeleteAccount_NotFound(t *testing.T) {
	e, accountUC := createTestAccountHandler(t)

	accountUC.EXPECT().DeleteAccount(mock.Anything, int64(3)).Return(domainerrors.ErrAccountNotFound)

	rec := serve(e, http.MethodDelete, "/api/accounts/3", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
