package commands

import (
	"context"
	"errors"
	"fmt"

	"deliveryorders/internal/core/domain/model/kernel"
	"deliveryorders/internal/core/domain/services"
	"deliveryorders/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrLoadOrders   = errors.New("orders could not be loaded")
	ErrWriteOrders  = errors.New("result file could not be written")
	ErrStoreMatches = errors.New("matches could not be exported")
)

// FilterOrdersResult summarises a finished run.
type FilterOrdersResult struct {
	RunID   uuid.UUID
	Loaded  int
	Matched int
	// Written is set once the result file is in place.
	Written bool
}

// FilterOrdersCommandHandler runs the Loader -> Filter -> Writer pipeline.
//
// Outcomes:
//   - load failure: ErrLoadOrders, the writer is never called
//   - empty file or no match: warning logged, no result file, nil error
//   - write failure: ErrWriteOrders, no result file at the destination
//   - export failure: ErrStoreMatches, the result file is already written
//
// Example:
//
//	handler := NewFilterOrdersCommandHandler(reader, writer, nil, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrLoadOrders) {
//	    // the input file is missing or malformed
//	}
type FilterOrdersCommandHandler struct {
	reader ports.OrderReader
	writer ports.OrderWriter
	// store is nil when match export is disabled.
	store  ports.MatchStore
	filter services.OrderFilter
	logger *zap.Logger
}

// NewFilterOrdersCommandHandler creates a handler. store may be nil.
func NewFilterOrdersCommandHandler(
	reader ports.OrderReader,
	writer ports.OrderWriter,
	store ports.MatchStore,
	logger *zap.Logger,
) FilterOrdersCommandHandler {
	return FilterOrdersCommandHandler{
		reader: reader,
		writer: writer,
		store:  store,
		filter: services.NewOrderFilter(),
		logger: logger.With(zap.String("component", "filter_orders")),
	}
}

// Handle executes one run. Every log entry of the run carries its run_id.
func (h *FilterOrdersCommandHandler) Handle(ctx context.Context, cmd FilterOrdersCommand) (FilterOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return FilterOrdersResult{}, err
	}

	result := FilterOrdersResult{RunID: uuid.New()}
	log := h.logger.With(zap.String("run_id", result.RunID.String()))
	criteria := []zap.Field{
		zap.String("district", cmd.District()),
		zap.String("window_start", kernel.FormatTimestamp(cmd.Window().Start())),
		zap.String("window_end", kernel.FormatTimestamp(cmd.Window().End())),
	}

	log.Info("Delivery filter run started", append(criteria,
		zap.String("orders_file", cmd.InputPath()),
		zap.String("result_file", cmd.OutputPath()),
	)...)
	defer log.Info("Delivery filter run finished")

	orders, err := h.reader.Load(ctx, cmd.InputPath())
	if err != nil {
		log.Error("Failed to load orders", zap.String("orders_file", cmd.InputPath()), zap.Error(err))
		return result, fmt.Errorf("%w: %w", ErrLoadOrders, err)
	}

	result.Loaded = len(orders)
	if len(orders) == 0 {
		log.Warn("No orders were loaded", zap.String("orders_file", cmd.InputPath()))
		return result, nil
	}

	log.Info("Orders loaded", zap.Int("count", len(orders)))
	for _, c := range services.CountByDistrict(orders) {
		log.Info("District order count", zap.String("district", c.District), zap.Int("orders", c.Orders))
	}

	if log.Core().Enabled(zapcore.DebugLevel) {
		for _, o := range orders {
			log.Debug("Order compared",
				zap.String("order_id", o.ID()),
				zap.String("order_district", o.District()),
				zap.String("delivery_time", kernel.FormatTimestamp(o.DeliveryTime())),
				zap.Bool("matched", h.filter.Matches(o, cmd.District(), cmd.Window())),
			)
		}
	}

	matched := h.filter.Filter(orders, cmd.District(), cmd.Window())
	result.Matched = len(matched)
	if len(matched) == 0 {
		log.Warn("No orders found for district in delivery window", criteria...)
		return result, nil
	}

	if err = h.writer.Write(ctx, matched, cmd.OutputPath()); err != nil {
		log.Error("Failed to write result file", zap.String("result_file", cmd.OutputPath()), zap.Error(err))
		return result, fmt.Errorf("%w: %w", ErrWriteOrders, err)
	}
	result.Written = true
	log.Info("Result file written", zap.String("result_file", cmd.OutputPath()), zap.Int("count", len(matched)))

	if h.store != nil {
		batch := ports.MatchBatch{
			RunID:    result.RunID,
			District: cmd.District(),
			Window:   cmd.Window(),
			Orders:   matched,
		}
		if err = h.store.SaveMatches(ctx, batch); err != nil {
			log.Error("Failed to export matches", zap.Error(err))
			return result, fmt.Errorf("%w: %w", ErrStoreMatches, err)
		}
		log.Info("Matches exported", zap.Int("count", len(matched)))
	}

	log.Info("Orders found for district in delivery window", append(criteria, zap.Int("count", len(matched)))...)
	return result, nil
}
