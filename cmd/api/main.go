package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/absensi-app/absensi-backend-go/internal/config"
	appHTTP "github.com/absensi-app/absensi-backend-go/internal/handler/http"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/jwt"
	"github.com/absensi-app/absensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/absensi-app/absensi-backend-go/internal/service/attendance"
	authService "github.com/absensi-app/absensi-backend-go/internal/service/auth"
	employeeService "github.com/absensi-app/absensi-backend-go/internal/service/employee"
	reportService "github.com/absensi-app/absensi-backend-go/internal/service/report"
	roleService "github.com/absensi-app/absensi-backend-go/internal/service/role"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, loc)
	reportSvc := reportService.NewReportService(reportRepo, loc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, roleRepo)
	roleSvc := roleService.NewRoleService(db, roleRepo, employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, roleRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	roleHandler := appHTTP.NewRoleHandler(roleSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		attendanceHandler,
		reportHandler,
		employeeHandler,
		roleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
