package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ultimatebank/account-service/internal/middleware"
	"github.com/ultimatebank/account-service/internal/models"
	"go.uber.org/zap"
)

// AccountReader defines the read operations used by AccountHandler.
type AccountReader interface {
	ReadAccounts(ctx context.Context) ([]models.Account, error)
	ReadAccount(ctx context.Context, id uint64) (*models.Account, error)
}

// AccountCreator defines the write operation used by AccountHandler.
type AccountCreator interface {
	CreateAccount(ctx context.Context, account models.Account) (*models.Account, error)
}

// AccountService is everything AccountHandler needs.
type AccountService interface {
	AccountReader
	AccountCreator
}

// AccountHandler handles account-related HTTP requests. Every method takes
// the caller's resolved identity; routes reach them through
// middleware.Authorized only.
type AccountHandler struct {
	accounts AccountService
	logger   *zap.Logger
}

func NewAccountHandler(accounts AccountService, logger *zap.Logger) *AccountHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountHandler{accounts: accounts, logger: logger}
}

func (h *AccountHandler) ListAccounts(c *gin.Context, _ models.User) {
	accounts, err := h.accounts.ReadAccounts(c.Request.Context())
	if err != nil {
		h.respondWithServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(c *gin.Context, _ models.User) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, err := h.accounts.ReadAccount(c.Request.Context(), id)
	if err != nil {
		h.respondWithServiceError(c, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) CreateAccount(c *gin.Context, user models.User) {
	var req models.Account
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.accounts.CreateAccount(c.Request.Context(), req)
	if err != nil {
		h.respondWithServiceError(c, err, "Failed to create account")
		return
	}

	h.logger.Info("account created",
		zap.Uint64("account_id", account.ID),
		zap.String("user", user.Name),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	c.JSON(http.StatusCreated, account)
}
