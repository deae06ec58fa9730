package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/leave-calendar-go/internal/config"
	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	appHTTP "github.com/cmlabs-hris/leave-calendar-go/internal/handler/http"
	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/database"
	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/leave-calendar-go/internal/repository/leaveapi"
	"github.com/cmlabs-hris/leave-calendar-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/leave-calendar-go/internal/service/approval"
	"github.com/cmlabs-hris/leave-calendar-go/internal/service/calendar"
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

	var snapshotRepo leave.SnapshotRepository
	switch cfg.Snapshot.Source {
	case "api":
		snapshotRepo = leaveapi.NewClient(cfg.Snapshot.BaseURL, cfg.Snapshot.APIKey)
	default:
		snapshotRepo = postgresql.NewLeaveSnapshotRepository(db)
	}
	approverRepo := postgresql.NewApproverRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calendarService := calendar.NewService(snapshotRepo)
	approvalService := approval.NewService(approverRepo)

	calendarHandler := appHTTP.NewCalendarHandler(calendarService)
	approvalHandler := appHTTP.NewApprovalHandler(approvalService)

	router := appHTTP.NewRouter(JWTService, calendarHandler, approvalHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
