package adminController

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersHandler streams every order as an .xlsx download for the
// back office. Shipping details are read out of the JSON column; rows
// with unreadable shipping still export with the fields left blank.
func ExportOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to create Excel sheet")
			return
		}

		headers := []string{
			"ID", "OrderNumber", "Customer", "Email", "City",
			"Total", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			var shipping struct {
				FullName string `json:"fullName"`
				Email    string `json:"email"`
				City     string `json:"city"`
			}
			if len(o.Shipping) > 0 {
				_ = json.Unmarshal(o.Shipping, &shipping)
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(shipping.FullName)
			row.AddCell().SetValue(shipping.Email)
			row.AddCell().SetValue(shipping.City)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		filename := "orders-" + time.Now().Format("2006-01-02") + ".xlsx"
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to write Excel file")
			return
		}
	}
}
