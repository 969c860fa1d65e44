package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/worktrack/attendance-backend-go/internal/config"
	"github.com/worktrack/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/worktrack/attendance-backend-go/internal/handler/http"
	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
	"github.com/worktrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/worktrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worktrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/worktrack/attendance-backend-go/internal/service/auth"
	employeeService "github.com/worktrack/attendance-backend-go/internal/service/employee"
	reportService "github.com/worktrack/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if password := os.Getenv("DEFAULT_ADMIN_PASSWORD"); password != "" {
		if err := fixtures.EnsureDefaultAdmin(context.Background(), db, password); err != nil {
			log.Fatal("Failed to seed default admin:", err)
		}
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Location())
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
