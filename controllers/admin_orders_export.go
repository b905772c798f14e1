package controllers

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/curiokart/CurioKart/config"
	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
)

// ExportOrdersExcel downloads the orders for a period as an Excel workbook.
func ExportOrdersExcel(c *gin.Context) {
	utils.LogInfo("ExportOrdersExcel called")

	period := c.DefaultQuery("period", "day")
	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = startDate.Add(24 * time.Hour)
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
		startDate = endDate.AddDate(0, 0, -7)
	case "month":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
		startDate = endDate.AddDate(0, -1, 0)
	default:
		utils.LogError("Invalid export period: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var orders []models.Order
	if err := config.DB.Where("created_at >= ? AND created_at < ?", startDate, endDate).
		Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	utils.LogDebug("Exporting %d orders for period %s", len(orders), period)

	var totalRevenue, totalCollected int64
	var totalItems int
	for i := range orders {
		totalRevenue += orders[i].TotalAmount
		for _, item := range orders[i].Items {
			totalItems += item.Quantity
		}
		if orders[i].PaymentStatus == models.PaymentStatusPaid {
			totalCollected += orders[i].TotalAmount
		} else if orders[i].IsPartialCOD {
			totalCollected += utils.PartialCODDeposit
		}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	// Issuer block
	row := sheet.AddRow()
	row.AddCell().SetString(strings.ToUpper(utils.AppName) + " - Orders Report")
	row = sheet.AddRow()
	row.AddCell().SetString(utils.StoreAddress)
	row = sheet.AddRow()
	row.AddCell().SetString("Email: " + utils.StoreEmail + " | Phone: " + utils.StorePhone)
	row = sheet.AddRow()
	row.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " +
		startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow()

	// Summary
	row = sheet.AddRow()
	row.AddCell().SetString("Orders")
	row.AddCell().SetInt(len(orders))
	row = sheet.AddRow()
	row.AddCell().SetString("Items Sold")
	row.AddCell().SetInt(totalItems)
	row = sheet.AddRow()
	row.AddCell().SetString("Total Order Value (Rs)")
	row.AddCell().SetString(utils.FormatRupees(totalRevenue))
	row = sheet.AddRow()
	row.AddCell().SetString("Collected Online (Rs)")
	row.AddCell().SetString(utils.FormatRupees(totalCollected))
	sheet.AddRow()

	// Table headers
	headers := []string{"Order Ref", "Date", "Recipient", "Pincode", "Items", "Total (Rs)", "Payment Method", "Payment Status", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for i := range orders {
		order := &orders[i]
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		row = sheet.AddRow()
		row.AddCell().SetString(utils.ShortOrderID(order.ID))
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(order.Name)
		row.AddCell().SetString(order.Pincode)
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetString(utils.FormatRupees(order.TotalAmount))
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetString(order.PaymentStatus)
		row.AddCell().SetString(order.Status)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Orders report generated for period %s", period)

	filename := "orders-report-" + period + "-" + now.Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
