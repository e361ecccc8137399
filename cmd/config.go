package cmd

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	envDevelopment = "development"

	defaultReportDir = "reports"
)

// Config holds the raw settings read from the environment. Empty values fall back
// to the defaults documented on each accessor.
type Config struct {
	HTTPPort string
	AppEnv   string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string

	KafkaHost              string
	KafkaOrderChangedTopic string

	ReportDir      string
	ReportSchedule string

	DefaultCustomerID string
	DefaultProductID  string
	DefaultQuantity   string
	DefaultUnitPrice  string

	ActivationMaxDays  string
	BusinessHoursStart string
	BusinessHoursEnd   string
	BusinessTimezone   string
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, envDevelopment)
}

// ReportDirectory defaults to "reports".
func (c Config) ReportDirectory() string {
	if c.ReportDir == "" {
		return defaultReportDir
	}
	return c.ReportDir
}

// OrderDefaults returns the values substituted for omitted order fields. Each defaults to 1.
func (c Config) OrderDefaults() (order.Defaults, error) {
	defaults := order.StandardDefaults()

	customerID, err := parseInt64("ORDER_DEFAULT_CUSTOMER_ID", c.DefaultCustomerID, defaults.CustomerID)
	if err != nil {
		return order.Defaults{}, err
	}
	productID, err := parseInt64("ORDER_DEFAULT_PRODUCT_ID", c.DefaultProductID, defaults.ProductID)
	if err != nil {
		return order.Defaults{}, err
	}
	quantity, err := parseInt("ORDER_DEFAULT_QUANTITY", c.DefaultQuantity, defaults.Quantity)
	if err != nil {
		return order.Defaults{}, err
	}

	unitPrice := defaults.UnitPrice
	if c.DefaultUnitPrice != "" {
		amount, parseErr := decimal.NewFromString(c.DefaultUnitPrice)
		if parseErr != nil {
			return order.Defaults{}, fmt.Errorf("ORDER_DEFAULT_UNIT_PRICE: %w", parseErr)
		}
		if unitPrice, err = kernel.NewMoney(amount); err != nil {
			return order.Defaults{}, fmt.Errorf("ORDER_DEFAULT_UNIT_PRICE: %w", err)
		}
	}

	if customerID <= 0 || productID <= 0 || quantity <= 0 {
		return order.Defaults{}, fmt.Errorf("order defaults must be positive")
	}

	return order.Defaults{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	}, nil
}

// TransitionPolicy builds the status transition policy.
// Defaults: 30 days, business hours 8 to 18, local time zone.
func (c Config) TransitionPolicy() (order.TransitionPolicy, error) {
	cfg := order.DefaultPolicyConfig()

	var err error
	if cfg.MaxDaysForActivation, err = parseInt("ACTIVATION_MAX_DAYS", c.ActivationMaxDays, cfg.MaxDaysForActivation); err != nil {
		return order.TransitionPolicy{}, err
	}
	if cfg.BusinessHoursStart, err = parseInt("BUSINESS_HOURS_START", c.BusinessHoursStart, cfg.BusinessHoursStart); err != nil {
		return order.TransitionPolicy{}, err
	}
	if cfg.BusinessHoursEnd, err = parseInt("BUSINESS_HOURS_END", c.BusinessHoursEnd, cfg.BusinessHoursEnd); err != nil {
		return order.TransitionPolicy{}, err
	}
	if c.BusinessTimezone != "" {
		if cfg.Location, err = time.LoadLocation(c.BusinessTimezone); err != nil {
			return order.TransitionPolicy{}, fmt.Errorf("BUSINESS_TIMEZONE: %w", err)
		}
	}

	return order.NewTransitionPolicy(cfg)
}

// Dialector picks the GORM driver for DB_DRIVER (postgres when empty).
func (c Config) Dialector() (gorm.Dialector, error) {
	switch strings.ToLower(c.DBDriver) {
	case "", DriverPostgres:
		dsn, err := c.PostgresDSN()
		if err != nil {
			return nil, err
		}
		return gormpostgres.Open(dsn), nil
	case DriverMySQL:
		dsn, err := c.MySQLDSN()
		if err != nil {
			return nil, err
		}
		return gormmysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

// PostgresDSN converts DATABASE_URL into a key/value DSN, or assembles one from the DB_* settings.
func (c Config) PostgresDSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode), nil
}

// MySQLDSN builds a go-sql-driver DSN. Rows are reported as found rather than changed,
// so an update that writes identical values still counts as a hit.
func (c Config) MySQLDSN() (string, error) {
	cfg := mysqldriver.NewConfig()
	if c.DatabaseURL != "" {
		parsed, err := mysqldriver.ParseDSN(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		cfg = parsed
	} else {
		cfg.User = c.DBUser
		cfg.Passwd = c.DBPassword
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
		cfg.DBName = c.DBName
	}

	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true

	return cfg.FormatDSN(), nil
}

func parseInt(key, raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func parseInt64(key, raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
