package service

import (
	"context"
	"sort"
	"time"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CategoryTotal is one slice of the dashboard's expense breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Dashboard summarizes the calendar month containing "now".
type Dashboard struct {
	TotalIncome        float64         `json:"totalIncome"`
	TotalExpenses      float64         `json:"totalExpenses"`
	Balance            float64         `json:"balance"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	Budget             *models.Budget  `json:"budget"`
	Goals              []models.Goal   `json:"goals"`
}

// MonthlyFlow is one YYYY-MM bucket of the income-vs-expenses trend.
type MonthlyFlow struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// VarianceRow compares one budget's plan against actual spend for its
// calendar month. Positive variance means under budget.
type VarianceRow struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	TotalBudget    float64 `json:"total_budget"`
	ActualExpenses float64 `json:"actual_expenses"`
	Variance       float64 `json:"variance"`
}

// ProgressRow reports one goal's savings progress.
type ProgressRow struct {
	GoalName           string  `json:"goal_name"`
	TargetAmount       float64 `json:"target_amount"`
	CurrentAmount      float64 `json:"current_amount"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// Reports bundles the three historical aggregates.
type Reports struct {
	IncomeVsExpenses []MonthlyFlow `json:"incomeVsExpenses"`
	BudgetVariance   []VarianceRow `json:"budgetVariance"`
	SavingsProgress  []ProgressRow `json:"savingsProgress"`
}

// ReportService computes the dashboard summary and historical reports.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// Dashboard gathers the current-month summary. The five reads are
// independent and run concurrently; the first failure cancels the rest
// and fails the whole response.
func (s *ReportService) Dashboard(ctx context.Context, userID uint, now time.Time) (*Dashboard, error) {
	start, end := monthRange(now.Year(), int(now.Month()))

	dash := &Dashboard{
		ExpensesByCategory: make([]CategoryTotal, 0),
		Goals:              make([]models.Goal, 0),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&models.Income{}).
			Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&dash.TotalIncome).Error
	})

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&models.Expense{}).
			Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&dash.TotalExpenses).Error
	})

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&models.Expense{}).
			Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
			Select("category, COALESCE(SUM(amount), 0) AS total").
			Group("category").
			Scan(&dash.ExpensesByCategory).Error
	})

	g.Go(func() error {
		var budget models.Budget
		err := s.DB.WithContext(gctx).
			Where("user_id = ? AND month = ? AND year = ?", userID, int(now.Month()), now.Year()).
			First(&budget).Error
		if err == gorm.ErrRecordNotFound {
			return nil // no budget for this month is not an error
		}
		if err != nil {
			return err
		}
		dash.Budget = &budget
		return nil
	})

	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("user_id = ?", userID).
			Find(&dash.Goals).Error
	})

	if err := g.Wait(); err != nil {
		return nil, storage(err)
	}

	dash.Balance = dash.TotalIncome - dash.TotalExpenses
	return dash, nil
}

// Reports gathers the three aggregates over the inclusive
// [startDate, endDate] range. Dates must be YYYY-MM-DD; budgets match
// at month granularity.
func (s *ReportService) Reports(ctx context.Context, userID uint, startDate, endDate string) (*Reports, error) {
	out := &Reports{
		IncomeVsExpenses: make([]MonthlyFlow, 0),
		BudgetVariance:   make([]VarianceRow, 0),
		SavingsProgress:  make([]ProgressRow, 0),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		flows, err := s.incomeVsExpenses(gctx, userID, startDate, endDate)
		if err != nil {
			return err
		}
		out.IncomeVsExpenses = flows
		return nil
	})

	g.Go(func() error {
		rows, err := s.budgetVariance(gctx, userID, startDate[:7], endDate[:7])
		if err != nil {
			return err
		}
		out.BudgetVariance = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.savingsProgress(gctx, userID)
		if err != nil {
			return err
		}
		out.SavingsProgress = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, storage(err)
	}
	return out, nil
}

type datedAmount struct {
	Date   string
	Amount float64
}

// incomeVsExpenses buckets both ledgers by calendar month and sums
// each side per bucket, ascending by month.
func (s *ReportService) incomeVsExpenses(ctx context.Context, userID uint, startDate, endDate string) ([]MonthlyFlow, error) {
	var incomeRows, expenseRows []datedAmount

	if err := s.DB.WithContext(ctx).Model(&models.Income{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Select("date, amount").
		Scan(&incomeRows).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Select("date, amount").
		Scan(&expenseRows).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthlyFlow)
	bucket := func(date string) *MonthlyFlow {
		key := date[:7]
		f, ok := buckets[key]
		if !ok {
			f = &MonthlyFlow{Month: key}
			buckets[key] = f
		}
		return f
	}
	for _, r := range incomeRows {
		bucket(r.Date).Income += r.Amount
	}
	for _, r := range expenseRows {
		bucket(r.Date).Expenses += r.Amount
	}

	flows := make([]MonthlyFlow, 0, len(buckets))
	for _, f := range buckets {
		flows = append(flows, *f)
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].Month < flows[j].Month })
	return flows, nil
}

// budgetVariance reports plan-vs-actual for every budget whose month
// falls in [startMonth, endMonth]. Actual spend covers the budget's
// whole calendar month, not just the report's day range.
func (s *ReportService) budgetVariance(ctx context.Context, userID uint, startMonth, endMonth string) ([]VarianceRow, error) {
	var budgets []models.Budget
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}

	inRange := budgets[:0]
	minStart, maxEnd := "", ""
	for _, b := range budgets {
		key := monthKey(b.Year, b.Month)
		if key < startMonth || key > endMonth {
			continue
		}
		inRange = append(inRange, b)
		mStart, mEnd := monthRange(b.Year, b.Month)
		if minStart == "" || mStart < minStart {
			minStart = mStart
		}
		if mEnd > maxEnd {
			maxEnd = mEnd
		}
	}

	rows := make([]VarianceRow, 0, len(inRange))
	if len(inRange) == 0 {
		return rows, nil
	}

	// one pass over the covered expenses, summed per YYYY-MM bucket
	var expenseRows []datedAmount
	if err := s.DB.WithContext(ctx).Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, minStart, maxEnd).
		Select("date, amount").
		Scan(&expenseRows).Error; err != nil {
		return nil, err
	}
	sums := make(map[string]float64)
	for _, r := range expenseRows {
		sums[r.Date[:7]] += r.Amount
	}

	for _, b := range inRange {
		actual := sums[monthKey(b.Year, b.Month)]
		rows = append(rows, VarianceRow{
			Month:          b.Month,
			Year:           b.Year,
			TotalBudget:    b.TotalBudget,
			ActualExpenses: actual,
			Variance:       b.TotalBudget - actual,
		})
	}
	return rows, nil
}

// savingsProgress reports every goal's progress percentage. Creation
// rejects zero targets, but any legacy zero-target row reports 0
// rather than dividing by zero. Progress is not clamped at 100.
func (s *ReportService) savingsProgress(ctx context.Context, userID uint) ([]ProgressRow, error) {
	var goals []models.Goal
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&goals).Error; err != nil {
		return nil, err
	}

	rows := make([]ProgressRow, 0, len(goals))
	for _, g := range goals {
		progress := 0.0
		if g.TargetAmount != 0 {
			progress = g.CurrentAmount / g.TargetAmount * 100
		}
		rows = append(rows, ProgressRow{
			GoalName:           g.GoalName,
			TargetAmount:       g.TargetAmount,
			CurrentAmount:      g.CurrentAmount,
			ProgressPercentage: progress,
		})
	}
	return rows, nil
}
