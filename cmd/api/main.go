package main

import (
	"fmt"
	"net/http"

	"github.com/storelinehq/admin-gateway-go/internal/config"
	appHTTP "github.com/storelinehq/admin-gateway-go/internal/handler/http"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/jwt"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
	attendanceService "github.com/storelinehq/admin-gateway-go/internal/service/attendance"
	leaveService "github.com/storelinehq/admin-gateway-go/internal/service/leave"
	masterService "github.com/storelinehq/admin-gateway-go/internal/service/master"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	hrClient, err := upstream.NewClient(cfg.Upstream)
	if err != nil {
		fmt.Println("Error creating HR API client:", err)
		return
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	payCalculator := attendanceService.NewPayCalculator(cfg.Pay)
	rosterService := attendanceService.NewRosterService(hrClient, payCalculator, cfg.Pay, cfg.Search.DebounceWindow)
	defer rosterService.Stop()

	dailyLeaveService := leaveService.NewDailyService(hrClient)
	monthlyLeaveService := leaveService.NewMonthlyService(hrClient)
	branchService := masterService.NewMasterService(hrClient)

	attendanceHandler := appHTTP.NewAttendanceHandler(rosterService)
	leaveHandler := appHTTP.NewLeaveHandler(dailyLeaveService, monthlyLeaveService)
	masterHandler := appHTTP.NewMasterHandler(branchService)
	navigationHandler := appHTTP.NewNavigationHandler()

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		attendanceHandler,
		leaveHandler,
		masterHandler,
		navigationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
