package controllers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kyobegeorge57/falcon-finance/models"
)

// Read-only admin views over the two tables. Password hashes are
// never included in responses.

type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	TotalRows   int64       `json:"totalRows"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	PageSize    int         `json:"pageSize"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.Query("pageSize"))
	switch {
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	case pageSize <= 0:
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// paginate is a GORM scope applying offset and limit from the "page"
// and "pageSize" query parameters.
func paginate(c *gin.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, pageSize := pageParams(c)
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

func paginatedResponse(c *gin.Context, data interface{}, totalRows int64) PaginatedResponse {
	page, pageSize := pageParams(c)
	totalPages := 0
	if totalRows > 0 {
		totalPages = int(math.Ceil(float64(totalRows) / float64(pageSize)))
	}
	return PaginatedResponse{
		Data:        data,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}

func (e *Env) AdminListUsers(c *gin.Context) {
	var totalRows int64
	if err := e.DB.Model(&models.User{}).Count(&totalRows).Error; err != nil {
		slog.Error("could not count users", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not fetch users"})
		return
	}

	var users []models.User
	if err := e.DB.Order("id asc").Scopes(paginate(c)).Find(&users).Error; err != nil {
		slog.Error("could not fetch users", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not fetch users"})
		return
	}

	data := make([]AdminUserSchema, 0, len(users))
	for _, user := range users {
		data = append(data, AdminUserSchema{
			ID:           user.ID,
			Name:         user.Name,
			Contact:      user.Contact,
			Username:     user.Username,
			ProfileImage: user.ProfileImage,
			CreatedAt:    user.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, paginatedResponse(c, data, totalRows))
}

func (e *Env) AdminListTransactions(c *gin.Context) {
	var totalRows int64
	if err := e.DB.Model(&models.Transaction{}).Count(&totalRows).Error; err != nil {
		slog.Error("could not count transactions", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not fetch transactions"})
		return
	}

	var txns []models.Transaction
	if err := e.DB.Order("id asc").Scopes(paginate(c)).Find(&txns).Error; err != nil {
		slog.Error("could not fetch transactions", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, paginatedResponse(c, txns, totalRows))
}
