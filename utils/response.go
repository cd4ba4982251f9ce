package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// {success, message?, data?, errors?, pagination?}.

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func SuccessMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func Paginated(c *gin.Context, status int, data interface{}, p Pagination) {
	c.JSON(status, gin.H{"success": true, "data": data, "pagination": p})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func ValidationError(c *gin.Context, message string, errs []string) {
	c.JSON(400, gin.H{"success": false, "message": message, "errors": errs})
}
