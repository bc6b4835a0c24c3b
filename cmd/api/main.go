package main

import (
	"fmt"
	"net/http"

	"github.com/stafftrack/staffing-backend-go/internal/config"
	appHTTP "github.com/stafftrack/staffing-backend-go/internal/handler/http"
	"github.com/stafftrack/staffing-backend-go/internal/pkg/database"
	"github.com/stafftrack/staffing-backend-go/internal/repository/postgresql"
	reportService "github.com/stafftrack/staffing-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	scheduleRepo := postgresql.NewScheduleRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db, cfg.Report.WorkDayHours)

	reportSvc := reportService.NewReportService(
		scheduleRepo,
		calendarRepo,
		int32(cfg.Report.Precision),
		cfg.Report.AbsenceLabel,
	)

	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg.App.Env, cfg.App.FrontendURL, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
