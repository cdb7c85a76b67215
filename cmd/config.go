package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"deliveryorders/internal/core/domain/model/kernel"
	"deliveryorders/internal/pkg/errs"
)

// Argument keys. Every argument is passed as key=value.
const (
	ArgCityDistrict          = "_cityDistrict"
	ArgFirstDeliveryDateTime = "_firstDeliveryDateTime"
	ArgDeliveryLog           = "_deliveryLog"
	ArgDeliveryOrder         = "_deliveryOrder"
	ArgOrdersFile            = "_ordersFile"
	ArgDatabaseDSN           = "_databaseDSN"
	ArgVerbose               = "_verbose"
)

// Environment keys for the optional settings.
const (
	EnvOrdersFile  = "DELIVERY_ORDERS_FILE"
	EnvDatabaseDSN = "DELIVERY_DATABASE_DSN"
	EnvVerbose     = "DELIVERY_VERBOSE"
)

const DefaultOrdersFile = "orders.csv"

type Config struct {
	CityDistrict          string
	FirstDeliveryDateTime time.Time
	DeliveryLog           string
	DeliveryOrder         string
	OrdersFile            string
	// DatabaseDSN is empty when match export is disabled.
	DatabaseDSN string
	Verbose     bool
}

// Defaults holds the values optional arguments fall back to.
type Defaults struct {
	OrdersFile  string
	DatabaseDSN string
	Verbose     bool
}

// DefaultsFromEnv reads Defaults through getenv. Unset or unparsable values
// keep the built-in defaults.
func DefaultsFromEnv(getenv func(string) string) Defaults {
	d := Defaults{OrdersFile: DefaultOrdersFile}
	if v := getenv(EnvOrdersFile); v != "" {
		d.OrdersFile = v
	}
	d.DatabaseDSN = getenv(EnvDatabaseDSN)
	if v, err := strconv.ParseBool(getenv(EnvVerbose)); err == nil {
		d.Verbose = v
	}
	return d
}

// ParseArgs builds a Config from key=value arguments. Keys may come in any
// order, the value is everything after the first '=', the first occurrence of
// a key wins and unknown keys are ignored. Every invalid required argument is
// reported, joined into one error.
func ParseArgs(args []string, defaults Defaults) (Config, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		if _, seen := values[key]; !seen {
			values[key] = value
		}
	}

	cfg := Config{
		CityDistrict:  values[ArgCityDistrict],
		DeliveryLog:   values[ArgDeliveryLog],
		DeliveryOrder: values[ArgDeliveryOrder],
		OrdersFile:    defaults.OrdersFile,
		DatabaseDSN:   defaults.DatabaseDSN,
		Verbose:       defaults.Verbose,
	}

	var problems []error
	if cfg.CityDistrict == "" {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause(ArgCityDistrict,
			errors.New("delivery district is not specified")))
	}

	switch raw, ok := values[ArgFirstDeliveryDateTime]; {
	case !ok || raw == "":
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause(ArgFirstDeliveryDateTime,
			errors.New("first delivery time is not specified")))
	default:
		first, err := kernel.ParseTimestamp(raw)
		switch {
		case err != nil:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(ArgFirstDeliveryDateTime,
				fmt.Errorf("first delivery time must match yyyy-MM-dd HH:mm:ss: %w", err)))
		case first.IsZero():
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(ArgFirstDeliveryDateTime,
				fmt.Errorf("first delivery time %q is the zero time", raw)))
		}
		cfg.FirstDeliveryDateTime = first
	}

	if cfg.DeliveryLog == "" {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause(ArgDeliveryLog,
			errors.New("log file path is not specified")))
	}
	if cfg.DeliveryOrder == "" {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause(ArgDeliveryOrder,
			errors.New("result file path is not specified")))
	}

	if v, ok := values[ArgOrdersFile]; ok {
		if v == "" {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(ArgOrdersFile,
				errors.New("orders file path is empty")))
		}
		cfg.OrdersFile = v
	}
	if v, ok := values[ArgDatabaseDSN]; ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := values[ArgVerbose]; ok {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(ArgVerbose, err))
		}
		cfg.Verbose = verbose
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
