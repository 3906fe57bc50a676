package services

import (
	"time"

	"household-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	minMonthlyExpenses = 8
	maxMonthlyExpenses = 20
	salaryDayMax       = 5
	bonusChance        = 0.15
	memoChance         = 0.4
)

var categoryAmountRanges = map[string][2]float64{
	"Groceries":     {15, 180},
	"Rent":          {650, 1400},
	"Utilities":     {40, 220},
	"Transport":     {5, 90},
	"Dining":        {8, 95},
	"Health":        {10, 250},
	"Entertainment": {6, 80},
	"Clothing":      {20, 200},
	"Education":     {15, 300},
	"Gifts":         {10, 150},
	"Salary":        {1800, 4200},
	"Bonus":         {200, 1500},
	"Freelance":     {150, 900},
	"Interest":      {1, 40},
	"Refund":        {5, 120},
}

type sampleDataGenerator struct {
	faker *gofakeit.Faker
}

// NewSampleDataGenerator creates a generator. A zero seed picks a random one.
func NewSampleDataGenerator(seed uint64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		faker: gofakeit.New(seed),
	}
}

// GenerateYear produces a plausible household year: monthly salary and rent
// plus a spread of everyday expenses.
func (g *sampleDataGenerator) GenerateYear(userID string, year int, loc *time.Location) []models.CreateTransactionParams {
	var params []models.CreateTransactionParams
	for month := 1; month <= 12; month++ {
		params = append(params, g.GenerateMonth(userID, year, month, loc)...)
	}
	return params
}

func (g *sampleDataGenerator) GenerateMonth(userID string, year, month int, loc *time.Location) []models.CreateTransactionParams {
	if loc == nil {
		loc = time.UTC
	}
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, loc).Day()

	params := []models.CreateTransactionParams{
		g.entry(userID, models.TransactionTypeIncome, "Salary", g.date(year, month, g.faker.IntRange(1, salaryDayMax), loc)),
		g.entry(userID, models.TransactionTypeExpense, "Rent", g.date(year, month, 1, loc)),
	}

	if g.faker.Float64Range(0, 1) < bonusChance {
		extra := g.faker.RandomString([]string{"Bonus", "Freelance", "Interest", "Refund"})
		params = append(params, g.entry(userID, models.TransactionTypeIncome, extra, g.date(year, month, g.faker.IntRange(1, daysInMonth), loc)))
	}

	count := g.faker.IntRange(minMonthlyExpenses, maxMonthlyExpenses)
	for i := 0; i < count; i++ {
		category := g.faker.RandomString(models.SampleExpenseCategories)
		if category == "Rent" {
			category = "Groceries"
		}
		params = append(params, g.entry(userID, models.TransactionTypeExpense, category, g.date(year, month, g.faker.IntRange(1, daysInMonth), loc)))
	}

	return params
}

func (g *sampleDataGenerator) entry(userID, txType, category string, date time.Time) models.CreateTransactionParams {
	params := models.CreateTransactionParams{
		UserID:   userID,
		Type:     txType,
		Amount:   g.amount(category),
		Category: category,
		Date:     date,
	}
	if g.faker.Float64Range(0, 1) < memoChance {
		memo := g.faker.Company()
		params.Memo = &memo
	}
	return params
}

func (g *sampleDataGenerator) amount(category string) decimal.Decimal {
	r, ok := categoryAmountRanges[category]
	if !ok {
		r = [2]float64{10, 100}
	}
	return decimal.NewFromFloat(g.faker.Float64Range(r[0], r[1])).Round(2)
}

func (g *sampleDataGenerator) date(year, month, day int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}
