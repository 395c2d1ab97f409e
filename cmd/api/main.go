package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/attendance-portal-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-portal-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-portal-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-portal-go/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/attendance-portal-go/internal/service/leave"
	scheduleService "github.com/cmlabs-hris/attendance-portal-go/internal/service/schedule"
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

	dayRecordRepo := postgresql.NewDayRecordRepository(db)
	workShiftRepo := postgresql.NewWorkShiftRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	quotaPolicyRepo := postgresql.NewQuotaPolicyRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	hub := sse.NewHub()
	notifier := leaveService.NewSSENotifier(hub, slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	attendanceSvc := attendanceService.NewAttendanceService(dayRecordRepo, workShiftRepo, cfg.Attendance)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, quotaPolicyRepo, notifier)
	scheduleSvc := scheduleService.NewScheduleService(workShiftRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		leaveHandler,
		scheduleHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
