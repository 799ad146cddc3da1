package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyobegeorge57/falcon-finance/models"
)

// Transactions returns the current user's payments newest-first along
// with the total paid.
func (e *Env) Transactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/index")
		c.Abort()
		return
	}

	txns, total, err := models.HistoryByUser(e.DB, userID)
	if err != nil {
		slog.Error("could not load transaction history", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not load transactions"})
		c.Abort()
		return
	}

	history := HistorySchema{
		Transactions: make([]TransactionSchema, 0, len(txns)),
		TotalPaid:    total,
	}
	for _, txn := range txns {
		history.Transactions = append(history.Transactions, TransactionSchema{
			ID:            txn.ID,
			Amount:        txn.Amount,
			SubmittedAt:   txn.SubmittedAt,
			PaymentMethod: txn.PaymentMethod,
			TxnID:         txn.TxnID,
			Receipt:       txn.Receipt,
		})
	}
	c.JSON(http.StatusOK, history)
}

// Homepage returns the current user's profile summary.
func (e *Env) Homepage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/index")
		c.Abort()
		return
	}

	user, err := models.GetUserByID(e.DB, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.Redirect(http.StatusFound, "/index")
			c.Abort()
			return
		}
		slog.Error("could not load profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not load profile"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": ProfileSchema{
			Name:         user.Name,
			Contact:      user.Contact,
			Username:     user.Username,
			ProfileImage: user.ProfileImage,
		},
		"flash": popFlash(c),
	})
}
