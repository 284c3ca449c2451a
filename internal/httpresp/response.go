package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func newList[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Total: len(data)}
}

// List always renders data as an array, never null.
func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, newList(data))
}

func CreatedList[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusCreated, newList(data))
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
