package attendance

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/storelinehq/admin-gateway-go/internal/config"
	"github.com/storelinehq/admin-gateway-go/internal/domain/attendance"
	"github.com/storelinehq/admin-gateway-go/internal/domain/master/branch"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/debounce"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
)

type RosterServiceImpl struct {
	client *upstream.Client
	calc   *PayCalculator
	policy config.PayPolicy
	search *debounce.Input

	// gen guards against stale responses: a fetch whose generation is no
	// longer the latest issued must not overwrite fresher state.
	gen uint64

	mu      sync.Mutex
	rows    []attendance.AttendanceRecord
	current attendance.RosterPage
	filter  attendance.RosterFilter
	lastErr string
}

func NewRosterService(client *upstream.Client, calc *PayCalculator, policy config.PayPolicy, debounceWindow time.Duration) *RosterServiceImpl {
	s := &RosterServiceImpl{
		client: client,
		calc:   calc,
		policy: policy,
		filter: attendance.RosterFilter{Page: 1},
	}
	s.search = debounce.NewInput(debounceWindow, s.applySearch)
	return s
}

// Search implements attendance.RosterService.
func (s *RosterServiceImpl) Search(query string) {
	s.search.Set(query)
}

// applySearch is the debounce flush: the coalesced text becomes the effective
// search and the view restarts from the first page.
func (s *RosterServiceImpl) applySearch(query string) {
	s.mu.Lock()
	filter := s.filter
	filter.Search = query
	filter.Page = 1
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, _ = s.List(ctx, filter)
}

// List implements attendance.RosterService.
func (s *RosterServiceImpl) List(ctx context.Context, filter attendance.RosterFilter) (attendance.RosterPage, error) {
	if err := filter.Validate(); err != nil {
		return attendance.RosterPage{}, err
	}

	gen := atomic.AddUint64(&s.gen, 1)

	branchID := filter.BranchID
	if branchID == branch.AllBranchesID {
		branchID = ""
	}

	page, err := s.client.ListEmployees(ctx, filter.Page, filter.Search, branchID)
	if err != nil {
		s.mu.Lock()
		if gen == atomic.LoadUint64(&s.gen) {
			s.lastErr = err.Error()
			s.rows = nil
			s.current = attendance.RosterPage{Page: filter.Page}
			s.filter = filter
		}
		s.mu.Unlock()
		return attendance.RosterPage{}, fmt.Errorf("%w: %v", attendance.ErrRosterUnavailable, err)
	}

	rows := make([]attendance.AttendanceRecord, 0, len(page.Employees))
	for _, emp := range page.Employees {
		rows = append(rows, s.buildRow(emp))
	}

	result := attendance.RosterPage{
		Rows:        rows,
		TotalCount:  page.Count,
		Page:        filter.Page,
		HasNext:     page.Next != nil,
		HasPrevious: page.Previous != nil,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != atomic.LoadUint64(&s.gen) {
		// A newer fetch was issued while this one was in flight; serve the
		// fresher held state instead.
		return s.current, nil
	}

	s.rows = rows
	s.current = result
	s.filter = filter
	s.lastErr = ""
	return result, nil
}

// buildRow seeds an attendance row from a raw employee record. Status is
// always reset to absent regardless of any server-side attendance state; this
// view tracks check-ins locally only.
func (s *RosterServiceImpl) buildRow(emp upstream.Employee) attendance.AttendanceRecord {
	rates := s.calc.Rates(emp.BaseSalary)

	return attendance.AttendanceRecord{
		EmployeeID:       emp.ID.String(),
		Name:             emp.Name,
		Role:             emp.Role,
		BranchName:       emp.BranchName,
		Avatar:           emp.Avatar,
		ExpectedCheckIn:  s.policy.ExpectedClockIn,
		ExpectedCheckOut: s.policy.ExpectedClockOut,
		BaseSalary:       emp.BaseSalary,
		DailySalary:      rates.DailySalary,
		HourlySalary:     rates.HourlySalary,
		OvertimeRate:     rates.OvertimeRate,
		Status:           attendance.StatusAbsent,
	}
}

// CheckIn implements attendance.RosterService.
func (s *RosterServiceImpl) CheckIn(employeeID string) (attendance.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.findRowLocked(employeeID)
	if row == nil {
		return attendance.AttendanceRecord{}, attendance.ErrEmployeeNotFound
	}

	switch row.Status {
	case attendance.StatusPresent:
		return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
	case attendance.StatusCompleted:
		return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedOut
	}

	now := time.Now().Format(clockLayout)
	row.CheckInTime = &now
	row.IsLate = s.calc.IsLate(now)
	row.Status = attendance.StatusPresent

	return *row, nil
}

// CheckOut implements attendance.RosterService.
func (s *RosterServiceImpl) CheckOut(employeeID string) (attendance.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.findRowLocked(employeeID)
	if row == nil {
		return attendance.AttendanceRecord{}, attendance.ErrEmployeeNotFound
	}

	switch row.Status {
	case attendance.StatusAbsent:
		return attendance.AttendanceRecord{}, attendance.ErrNotCheckedIn
	case attendance.StatusCompleted:
		return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedOut
	}

	now := time.Now().Format(clockLayout)
	row.CheckOutTime = &now
	row.Status = attendance.StatusCompleted
	row.WorkingHours = s.calc.WorkingHours(*row.CheckInTime, now)
	row.OvertimeHours = s.calc.OvertimeHours(row.WorkingHours)
	row.DailyEarnings = s.calc.DailyEarnings(row.WorkingHours, row.OvertimeHours, row.DailySalary, row.OvertimeRate)

	return *row, nil
}

// LastError implements attendance.RosterService.
func (s *RosterServiceImpl) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Stop cancels any pending debounced search.
func (s *RosterServiceImpl) Stop() {
	s.search.Stop()
}

func (s *RosterServiceImpl) findRowLocked(employeeID string) *attendance.AttendanceRecord {
	for i := range s.rows {
		if s.rows[i].EmployeeID == employeeID {
			return &s.rows[i]
		}
	}
	return nil
}
