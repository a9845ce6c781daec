package core

import "errors"

type (
	// PasswordHash is a salted one-way hash of a user's password. Plaintext
	// never crosses the auth package boundary; everything past it carries
	// this type.
	PasswordHash string

	User struct {
		ID          int64
		Username    string
		Password    PasswordHash
		EstIncome   float64
		SavingsGoal float64
	}

	// Settings is the user-facing projection of a User row.
	Settings struct {
		Username    string  `json:"username"`
		EstIncome   float64 `json:"est_income"`
		SavingsGoal float64 `json:"savings_goal"`
	}

	// Transaction is a single income/expense record. Amount sign, type
	// vocabulary and date format are stored exactly as submitted.
	Transaction struct {
		ID          int64   `json:"-"`
		UserID      int64   `json:"-"`
		Amount      float64 `json:"amount"`
		Type        string  `json:"type"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
	}

	// MonthEntry is the projection returned by month-filtered listings and
	// consumed by the CSV export. It carries no description.
	MonthEntry struct {
		Amount   float64 `json:"amount"`
		Type     string  `json:"type"`
		Category string  `json:"category"`
		Date     string  `json:"date"`
	}
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoTransactions     = errors.New("no transactions for month")
)

// String keeps password hashes out of logs and error messages.
func (PasswordHash) String() string {
	return "<redacted>"
}

var monthNames = map[string]string{
	"01": "January",
	"02": "February",
	"03": "March",
	"04": "April",
	"05": "May",
	"06": "June",
	"07": "July",
	"08": "August",
	"09": "September",
	"10": "October",
	"11": "November",
	"12": "December",
}

// MonthName maps a two-digit month code to its display name. Codes outside
// 01-12 fall back to a placeholder rather than failing.
func MonthName(code string) string {
	if name, ok := monthNames[code]; ok {
		return name
	}
	return "Unknown"
}
