package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kyobegeorge57/falcon-finance/models"
)

// SubmitPayment records a payment for the current user. The amount
// arrives as form text and must parse as a non-negative decimal. The
// receipt file is written before the insert; a failed insert can at
// worst orphan a file, a record never references a missing one.
func (e *Env) SubmitPayment(c *gin.Context) {
	amountText := c.PostForm("amount")
	paymentMethod := c.PostForm("payment_method")
	txnID := c.PostForm("txn_id")
	if paymentMethod == "" || txnID == "" {
		flashAndRedirect(c, "Payment method and transaction ID are required", "/homepage")
		return
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil || amount.IsNegative() {
		flashAndRedirect(c, "Invalid amount", "/homepage")
		return
	}

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
		slog.Error("could not look up user", "error", err)
		flashAndRedirect(c, "Could not submit payment", "/homepage")
		return
	}

	receipt := ""
	if fileHeader, fileErr := c.FormFile("receipt"); fileErr == nil {
		data, readErr := readUpload(fileHeader)
		if readErr != nil {
			slog.Error("could not read receipt", "error", readErr)
			flashAndRedirect(c, "Could not save receipt", "/homepage")
			return
		}
		ref, saveErr := e.Uploads.Save("receipts", fmt.Sprint(user.ID), data, fileHeader.Filename)
		if saveErr != nil {
			slog.Error("could not store receipt", "error", saveErr)
			flashAndRedirect(c, "Could not save receipt", "/homepage")
			return
		}
		receipt = ref
	}

	txn := models.Transaction{
		UserID:        user.ID,
		Amount:        amount,
		SubmittedAt:   time.Now(),
		PaymentMethod: paymentMethod,
		TxnID:         txnID,
		Receipt:       receipt,
	}
	if err := txn.Create(e.DB); err != nil {
		slog.Error("could not create transaction", "error", err, "user_id", user.ID)
		flashAndRedirect(c, "Could not submit payment", "/homepage")
		return
	}

	flashAndRedirect(c, "Payment submitted successfully!", "/homepage")
}

// currentUserID reads the identity set by the session middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	userID, ok := raw.(uint)
	return userID, ok
}
