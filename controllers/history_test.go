package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyobegeorge57/falcon-finance/controllers"
)

const selectHistorySQL = `SELECT \* FROM "transactions" WHERE user_id = \$1 ORDER BY submitted_at desc`

func transactionColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "amount", "submitted_at", "payment_method", "txn_id", "receipt"})
}

func TestTransactions(t *testing.T) {
	sqlDB, db, mock := DbMock(t)
	defer sqlDB.Close()
	env := testEnv(t, db)
	gin.SetMode(gin.TestMode)

	t.Run("History is newest-first and totals the returned amounts", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(selectHistorySQL).
			WithArgs(1).
			WillReturnRows(transactionColumns().
				AddRow(3, 1, "30.00", now, "card", "TX-3", "").
				AddRow(2, 1, "20.00", now.Add(-time.Hour), "mpesa", "TX-2", "").
				AddRow(1, 1, "10.00", now.Add(-2*time.Hour), "card", "TX-1", ""))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/transactions", nil)
		c.Set("user_id", uint(1))

		env.Transactions(c)

		require.Equal(t, http.StatusOK, w.Code)
		var history controllers.HistorySchema
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))

		require.Len(t, history.Transactions, 3)
		assert.Equal(t, "TX-3", history.Transactions[0].TxnID)
		assert.Equal(t, "TX-2", history.Transactions[1].TxnID)
		assert.Equal(t, "TX-1", history.Transactions[2].TxnID)
		assert.True(t, history.Transactions[0].Amount.Equal(decimal.NewFromInt(30)))
		assert.True(t, history.TotalPaid.Equal(decimal.NewFromInt(60)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty history totals zero", func(t *testing.T) {
		mock.ExpectQuery(selectHistorySQL).
			WithArgs(1).
			WillReturnRows(transactionColumns())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/transactions", nil)
		c.Set("user_id", uint(1))

		env.Transactions(c)

		require.Equal(t, http.StatusOK, w.Code)
		var history controllers.HistorySchema
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
		assert.Len(t, history.Transactions, 0)
		assert.True(t, history.TotalPaid.IsZero())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHomepage(t *testing.T) {
	sqlDB, db, mock := DbMock(t)
	defer sqlDB.Close()
	env := testEnv(t, db)
	gin.SetMode(gin.TestMode)

	t.Run("Returns the profile summary without the password hash", func(t *testing.T) {
		mock.ExpectQuery(selectUserByIDSQL).
			WithArgs(1, 1).
			WillReturnRows(userColumns().
				AddRow(1, "Jane Doe", "jane@example.com", "jane", "not-shown", "static/dp/jane.png", time.Now()))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/homepage", nil)
		c.Set("user_id", uint(1))

		env.Homepage(c)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Profile controllers.ProfileSchema `json:"profile"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Jane Doe", body.Profile.Name)
		assert.Equal(t, "jane@example.com", body.Profile.Contact)
		assert.Equal(t, "jane", body.Profile.Username)
		assert.Equal(t, "static/dp/jane.png", body.Profile.ProfileImage)
		assert.NotContains(t, w.Body.String(), "not-shown")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
