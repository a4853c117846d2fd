package app

import (
	"time"

	"go-staffdesk/internal/attendance"
	"go-staffdesk/internal/department"
	"go-staffdesk/internal/employee"
	"go-staffdesk/internal/messaging/kafka"
	"go-staffdesk/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func registerModules(
	router *gin.Engine,
	repo employee.Repository,
	rdb *redis.Client,
	outbox kafka.OutboxRepository,
	now func() time.Time,
) {
	// --- Services ---
	employeeService := employee.NewService(repo, rdb, now)
	attendanceService := attendance.NewServiceWithOutbox(repo, outbox, now)
	departmentService := department.NewService(repo)
	payrollService := payroll.NewServiceWithOutbox(repo, outbox, now)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	departmentHandler := department.NewHandler(departmentService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		department.RegisterRoutes(api, departmentHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}
}
