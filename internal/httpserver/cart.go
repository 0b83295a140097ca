package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type cartModifyRequest struct {
	MovieID  int64 `json:"movieId" binding:"required"`
	Quantity int   `json:"quantity"`
}

func cartInsert(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartModifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, resultResponse{Result: resultBadRequest})
			return
		}
		p := currentPrincipal(c)
		if err := svc.Insert(c.Request.Context(), p.UserID, req.MovieID, req.Quantity); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resultResponse{Result: resultCartItemInserted})
	}
}

func cartUpdate(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartModifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, resultResponse{Result: resultBadRequest})
			return
		}
		p := currentPrincipal(c)
		if err := svc.Update(c.Request.Context(), p.UserID, req.MovieID, req.Quantity); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resultResponse{Result: resultCartItemUpdated})
	}
}

func cartDelete(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, resultResponse{Result: resultBadRequest})
			return
		}
		p := currentPrincipal(c)
		if err := svc.Delete(c.Request.Context(), p.UserID, movieID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resultResponse{Result: resultCartItemDeleted})
	}
}

func cartRetrieve(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentPrincipal(c)
		items, total, err := svc.Retrieve(c.Request.Context(), p.UserID, p.Premium)
		if err != nil {
			writeError(c, err)
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusOK, itemsResponse{Result: resultCartEmpty})
			return
		}
		c.JSON(http.StatusOK, itemsResponse{Result: resultCartRetrieved, Total: &total, Items: items})
	}
}

func cartClear(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentPrincipal(c)
		cleared, err := svc.Clear(c.Request.Context(), p.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		if cleared == 0 {
			c.JSON(http.StatusOK, resultResponse{Result: resultCartEmpty})
			return
		}
		c.JSON(http.StatusOK, resultResponse{Result: resultCartCleared})
	}
}
