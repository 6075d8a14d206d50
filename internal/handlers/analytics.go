package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

const dueDateLayout = "2006-01-02"

type revenueRow struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type workloadRow struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Assigned   int    `json:"assigned"`
}

/*
GET /admin/api/analytics?timeframe=Daily|Weekly|Monthly
- revenue counts orders whose payment is Verified or COD Completed
- buckets are keyed on the order due date
*/
func GetAnalytics(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/analytics"

		timeframe, ok := parseTimeframe(c.Query("timeframe"))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "timeframe must be Daily, Weekly or Monthly")
			return
		}

		orders := st.Orders()
		rows := revenueRows(orders, timeframe, time.Now())

		var total float64
		for _, row := range rows {
			total += row.Revenue
		}

		active := 0
		for _, o := range orders {
			if o.Status != models.StatusCompleted && o.Status != models.StatusDelivered {
				active++
			}
		}

		employees := st.Employees()
		workload := make([]workloadRow, 0, len(employees))
		for _, emp := range employees {
			assigned := 0
			for _, o := range orders {
				if o.AssignedEmployeeID == emp.ID {
					assigned++
				}
			}
			workload = append(workload, workloadRow{EmployeeID: emp.ID, Name: emp.Name, Assigned: assigned})
		}

		c.JSON(http.StatusOK, gin.H{
			"timeframe":    timeframe,
			"totalRevenue": total,
			"activeOrders": active,
			"revenue":      rows,
			"workload":     workload,
		})
	}
}

// ExportRevenueCSV streams the revenue rows as a CSV download.
func ExportRevenueCSV(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/analytics/export"

		timeframe, ok := parseTimeframe(c.Query("timeframe"))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "timeframe must be Daily, Weekly or Monthly")
			return
		}

		rows := revenueRows(st.Orders(), timeframe, time.Now())

		var b strings.Builder
		b.WriteString("Timeframe,Revenue\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "%s,%.2f\n", row.Name, row.Revenue)
		}

		filename := fmt.Sprintf("revenue_%s.csv", strings.ToLower(timeframe))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", []byte(b.String()))
	}
}

func parseTimeframe(value string) (string, bool) {
	switch strings.TrimSpace(value) {
	case "", "Daily":
		return "Daily", true
	case "Weekly":
		return "Weekly", true
	case "Monthly":
		return "Monthly", true
	}
	return "", false
}

// revenueRows buckets paid orders by due date. Daily covers the last 7
// days, Weekly the last 4 calendar weeks, Monthly the last 6 months.
// Orders with unparseable due dates are skipped.
func revenueRows(orders []models.Order, timeframe string, now time.Time) []revenueRow {
	type bucket struct {
		name  string
		start time.Time
		end   time.Time
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var buckets []bucket

	switch timeframe {
	case "Daily":
		for i := 6; i >= 0; i-- {
			day := today.AddDate(0, 0, -i)
			buckets = append(buckets, bucket{
				name:  day.Weekday().String()[:3],
				start: day,
				end:   day.AddDate(0, 0, 1),
			})
		}
	case "Weekly":
		for i := 3; i >= 0; i-- {
			end := today.AddDate(0, 0, -7*i+1)
			buckets = append(buckets, bucket{
				name:  fmt.Sprintf("Week %d", 4-i),
				start: end.AddDate(0, 0, -7),
				end:   end,
			})
		}
	case "Monthly":
		for i := 5; i >= 0; i-- {
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
			buckets = append(buckets, bucket{
				name:  monthStart.Month().String()[:3],
				start: monthStart,
				end:   monthStart.AddDate(0, 1, 0),
			})
		}
	}

	rows := make([]revenueRow, len(buckets))
	for i, b := range buckets {
		rows[i] = revenueRow{Name: b.name}
	}

	for _, o := range orders {
		if !o.PaymentStatus.Paid() {
			continue
		}
		due, err := time.ParseInLocation(dueDateLayout, o.DueDate, now.Location())
		if err != nil {
			continue
		}
		for i, b := range buckets {
			if !due.Before(b.start) && due.Before(b.end) {
				rows[i].Revenue += o.TotalAmount
				break
			}
		}
	}

	return rows
}
